package season

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/clubhaus-app/clubhaus/internal/member"
	"github.com/clubhaus-app/clubhaus/internal/models"
	"github.com/clubhaus-app/clubhaus/internal/team"
	"github.com/clubhaus-app/clubhaus/pkg/mailer"
)

// Engine applies a batch of end-of-season team changes as one all-or-nothing
// operation: archive a team, or promote it to a new category under a renamed
// identity and propagate the rename to every rostered member.
//
// The engine reads the member set exactly once, up front. Every instruction
// matches members against that original snapshot using its own current team
// name; a member whose list contains a name only because an earlier
// instruction renamed it is NOT matched by a later instruction. Rollover
// scripts written against the old behavior depend on this, so keep it unless
// the matching model is deliberately redesigned.
type Engine struct {
	repo       SeasonRepository
	mail       mailer.Mailer
	adminEmail string
}

// NewEngine creates a transition engine. mail may be nil; adminEmail may be
// empty, in which case no summary mail is attempted.
func NewEngine(repo SeasonRepository, mail mailer.Mailer, adminEmail string) *Engine {
	return &Engine{repo: repo, mail: mail, adminEmail: adminEmail}
}

// Run executes the instructions in input order, with no reordering or
// deduplication, and commits all staged mutations atomically. On any failure
// it returns zero counts: a read failure wraps ErrStorageUnavailable, a
// commit failure wraps ErrStorageCommitFailed.
func (e *Engine) Run(ctx context.Context, instructions []TransitionInstruction) (TransitionResult, error) {
	if len(instructions) == 0 {
		return TransitionResult{}, nil
	}

	// One full scan. Membership is a denormalized name list on each member
	// record, not queryable by containment, so this is O(members) per run.
	members, err := e.repo.ListMembers(ctx)
	if err != nil {
		return TransitionResult{}, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}

	var teamMutations []TeamMutation
	var memberMutations []MemberMutation
	var result TransitionResult

	for _, inst := range instructions {
		switch inst.Action {
		case ActionArchive:
			teamMutations = append(teamMutations, TeamMutation{
				TeamID: inst.TeamID,
				Fields: map[string]interface{}{"status": team.StatusArchived},
			})
			result.ArchivedTeams++

		case ActionPromote:
			// Literal, first-occurrence substitution: "FC Sample A1" with
			// category A1 -> A2 becomes "FC Sample A2".
			newName := strings.Replace(inst.CurrentName, inst.CurrentCategory, inst.TargetCategory, 1)
			teamMutations = append(teamMutations, TeamMutation{
				TeamID: inst.TeamID,
				Fields: map[string]interface{}{"name": newName, "category": inst.TargetCategory},
			})
			result.UpdatedTeams++

			for i := range members {
				m := &members[i]
				if !m.Teams.Contains(inst.CurrentName) {
					continue
				}
				memberMutations = append(memberMutations, e.stageMemberRename(m, inst.CurrentName, newName))
				result.UpdatedMembers++
			}

		default:
			log.Printf("season: ignoring transition instruction with unknown action %q (team %d)", inst.Action, inst.TeamID)
		}
	}

	if err := e.repo.CommitTransition(ctx, teamMutations, memberMutations); err != nil {
		return TransitionResult{}, fmt.Errorf("%w: %v", ErrStorageCommitFailed, err)
	}

	e.notify(ctx, result)
	return result, nil
}

// stageMemberRename computes a member mutation from the snapshot state:
// every occurrence of oldName in the team list becomes newName, and the
// legacy single-team column is reset to the new first element.
func (e *Engine) stageMemberRename(m *member.Member, oldName, newName string) MemberMutation {
	newTeams := make(models.StringSlice, len(m.Teams))
	for i, name := range m.Teams {
		if name == oldName {
			newTeams[i] = newName
		} else {
			newTeams[i] = name
		}
	}

	primary := member.NoTeam
	if len(newTeams) > 0 {
		primary = newTeams[0]
	}

	return MemberMutation{
		MemberID: m.ID,
		Fields: map[string]interface{}{
			"teams": newTeams,
			"team":  primary,
		},
	}
}

// notify sends a best-effort summary mail to the configured admin address.
func (e *Engine) notify(ctx context.Context, result TransitionResult) {
	if e.mail == nil || e.adminEmail == "" {
		return
	}
	html := fmt.Sprintf(
		"<p>Saisonwechsel abgeschlossen.</p><ul><li>Teams aktualisiert: %d</li><li>Mitglieder aktualisiert: %d</li><li>Teams archiviert: %d</li></ul>",
		result.UpdatedTeams, result.UpdatedMembers, result.ArchivedTeams,
	)
	e.mail.SendBestEffort(ctx, []string{e.adminEmail}, "Saisonwechsel abgeschlossen", html)
}
