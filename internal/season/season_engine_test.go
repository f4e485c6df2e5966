package season

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clubhaus-app/clubhaus/internal/member"
	"github.com/clubhaus-app/clubhaus/internal/models"
)

type stubSeasonRepository struct {
	members   []member.Member
	listErr   error
	commitErr error

	committedTeams   []TeamMutation
	committedMembers []MemberMutation
	commitCalls      int
}

func (s *stubSeasonRepository) ListMembers(ctx context.Context) ([]member.Member, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.members, nil
}

func (s *stubSeasonRepository) CommitTransition(ctx context.Context, teamMutations []TeamMutation, memberMutations []MemberMutation) error {
	s.commitCalls++
	if s.commitErr != nil {
		return s.commitErr
	}
	s.committedTeams = teamMutations
	s.committedMembers = memberMutations
	return nil
}

func newMember(id uint, teams ...string) member.Member {
	m := member.Member{Teams: models.StringSlice(teams)}
	m.ID = id
	m.SyncTeamMirror()
	return m
}

func TestRunEmptyInstructions(t *testing.T) {
	repo := &stubSeasonRepository{}
	engine := NewEngine(repo, nil, "")

	result, err := engine.Run(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, TransitionResult{}, result)
	assert.Equal(t, 0, repo.commitCalls)
}

func TestRunArchive(t *testing.T) {
	repo := &stubSeasonRepository{members: []member.Member{
		newMember(1, "FC Sample A1"),
	}}
	engine := NewEngine(repo, nil, "")

	result, err := engine.Run(context.Background(), []TransitionInstruction{
		{TeamID: 7, CurrentName: "FC Sample A1", Action: ActionArchive},
	})

	require.NoError(t, err)
	assert.Equal(t, TransitionResult{ArchivedTeams: 1}, result)

	require.Len(t, repo.committedTeams, 1)
	assert.Equal(t, uint(7), repo.committedTeams[0].TeamID)
	assert.Equal(t, "Archiviert", repo.committedTeams[0].Fields["status"])

	// Archiving never touches member rosters.
	assert.Empty(t, repo.committedMembers)

	// Re-running the same instruction reports the same counts: the result
	// counts staged intents, not state changes.
	again, err := engine.Run(context.Background(), []TransitionInstruction{
		{TeamID: 7, CurrentName: "FC Sample A1", Action: ActionArchive},
	})
	require.NoError(t, err)
	assert.Equal(t, TransitionResult{ArchivedTeams: 1}, again)
}

func TestRunPromoteRenamesTeamAndMembers(t *testing.T) {
	repo := &stubSeasonRepository{members: []member.Member{
		newMember(1, "FC Sample A1"),
		newMember(2, "FC Sample B1"),
		newMember(3, "FC Other", "FC Sample A1"),
	}}
	engine := NewEngine(repo, nil, "")

	result, err := engine.Run(context.Background(), []TransitionInstruction{
		{TeamID: 7, CurrentName: "FC Sample A1", CurrentCategory: "A1", TargetCategory: "A2", Action: ActionPromote},
	})

	require.NoError(t, err)
	assert.Equal(t, TransitionResult{UpdatedTeams: 1, UpdatedMembers: 2}, result)

	require.Len(t, repo.committedTeams, 1)
	assert.Equal(t, "FC Sample A2", repo.committedTeams[0].Fields["name"])
	assert.Equal(t, "A2", repo.committedTeams[0].Fields["category"])

	require.Len(t, repo.committedMembers, 2)

	first := repo.committedMembers[0]
	assert.Equal(t, uint(1), first.MemberID)
	assert.Equal(t, models.StringSlice{"FC Sample A2"}, first.Fields["teams"])
	assert.Equal(t, "FC Sample A2", first.Fields["team"])

	// Member 3 keeps its roster order; only the matching entry is renamed and
	// the legacy column mirrors the (unchanged) first entry.
	second := repo.committedMembers[1]
	assert.Equal(t, uint(3), second.MemberID)
	assert.Equal(t, models.StringSlice{"FC Other", "FC Sample A2"}, second.Fields["teams"])
	assert.Equal(t, "FC Other", second.Fields["team"])
}

func TestRunPromoteMatchesSnapshotNotIntermediateState(t *testing.T) {
	repo := &stubSeasonRepository{members: []member.Member{
		newMember(1, "FC Sample A1"),
	}}
	engine := NewEngine(repo, nil, "")

	// The second instruction targets the name the first one produces. It must
	// not match member 1, whose snapshot still says "FC Sample A1".
	result, err := engine.Run(context.Background(), []TransitionInstruction{
		{TeamID: 7, CurrentName: "FC Sample A1", CurrentCategory: "A1", TargetCategory: "A2", Action: ActionPromote},
		{TeamID: 8, CurrentName: "FC Sample A2", CurrentCategory: "A2", TargetCategory: "A3", Action: ActionPromote},
	})

	require.NoError(t, err)
	assert.Equal(t, TransitionResult{UpdatedTeams: 2, UpdatedMembers: 1}, result)

	require.Len(t, repo.committedMembers, 1)
	assert.Equal(t, models.StringSlice{"FC Sample A2"}, repo.committedMembers[0].Fields["teams"])
}

func TestRunUnknownActionIgnored(t *testing.T) {
	repo := &stubSeasonRepository{members: []member.Member{
		newMember(1, "FC Sample A1"),
	}}
	engine := NewEngine(repo, nil, "")

	result, err := engine.Run(context.Background(), []TransitionInstruction{
		{TeamID: 7, CurrentName: "FC Sample A1", Action: "relegate"},
		{TeamID: 8, CurrentName: "FC Sample B1", Action: ActionArchive},
	})

	require.NoError(t, err)
	assert.Equal(t, TransitionResult{ArchivedTeams: 1}, result)
	assert.Len(t, repo.committedTeams, 1)
}

func TestRunMemberWithEmptyRosterGetsPlaceholder(t *testing.T) {
	// A roster that renames to nothing cannot happen through Run, but the
	// staging helper still guards the legacy column.
	engine := NewEngine(&stubSeasonRepository{}, nil, "")

	m := newMember(1)
	mut := engine.stageMemberRename(&m, "FC Sample A1", "FC Sample A2")

	assert.Equal(t, member.NoTeam, mut.Fields["team"])
	assert.Equal(t, models.StringSlice{}, mut.Fields["teams"])
}

func TestRunListFailure(t *testing.T) {
	repo := &stubSeasonRepository{listErr: errors.New("connection refused")}
	engine := NewEngine(repo, nil, "")

	result, err := engine.Run(context.Background(), []TransitionInstruction{
		{TeamID: 7, Action: ActionArchive},
	})

	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.Equal(t, TransitionResult{}, result)
	assert.Equal(t, 0, repo.commitCalls)
}

func TestRunCommitFailureReportsZeroCounts(t *testing.T) {
	repo := &stubSeasonRepository{
		members:   []member.Member{newMember(1, "FC Sample A1")},
		commitErr: errors.New("deadlock"),
	}
	engine := NewEngine(repo, nil, "")

	result, err := engine.Run(context.Background(), []TransitionInstruction{
		{TeamID: 7, CurrentName: "FC Sample A1", CurrentCategory: "A1", TargetCategory: "A2", Action: ActionPromote},
	})

	assert.ErrorIs(t, err, ErrStorageCommitFailed)
	assert.Equal(t, TransitionResult{}, result)

	// Nothing was recorded as committed.
	assert.Empty(t, repo.committedTeams)
	assert.Empty(t, repo.committedMembers)
}
