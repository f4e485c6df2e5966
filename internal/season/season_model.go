// season/model.go
package season

// Transition actions. Anything else is ignored by the engine (a logged
// no-op), matching the historical behavior of the rollover tool.
const (
	ActionArchive = "archive"
	ActionPromote = "promote"
)

// TransitionInstruction describes one end-of-season change. Promotions
// reference the team by its current display name and category; the new name
// is derived by substituting the category inside the old name.
type TransitionInstruction struct {
	TeamID          uint   `json:"team_id" binding:"required"`
	CurrentName     string `json:"current_name"`
	CurrentCategory string `json:"current_category"`
	TargetCategory  string `json:"target_category"`
	Action          string `json:"action" binding:"required"`
}

// TransitionResult reports how many documents a transition touched.
type TransitionResult struct {
	UpdatedTeams   int `json:"updated_teams"`
	UpdatedMembers int `json:"updated_members"`
	ArchivedTeams  int `json:"archived_teams"`
}

// TeamMutation is a staged field update against one team record.
type TeamMutation struct {
	TeamID uint
	Fields map[string]interface{}
}

// MemberMutation is a staged field update against one member record. Two
// mutations for the same member apply in staging order; the later one wins
// per field, exactly as the underlying batch write would behave.
type MemberMutation struct {
	MemberID uint
	Fields   map[string]interface{}
}
