package season

import (
	"context"

	"github.com/clubhaus-app/clubhaus/internal/member"
	"github.com/clubhaus-app/clubhaus/internal/team"
	"gorm.io/gorm"
)

// SeasonRepository gives the transition engine its two storage primitives:
// one full member scan and one atomic commit of all staged mutations.
type SeasonRepository interface {
	ListMembers(ctx context.Context) ([]member.Member, error)
	// CommitTransition applies every staged mutation inside a single
	// database transaction. Either all of them apply or none do.
	CommitTransition(ctx context.Context, teamMutations []TeamMutation, memberMutations []MemberMutation) error
}

type seasonRepository struct {
	db      *gorm.DB
	members member.MemberRepository
}

// NewSeasonRepository creates a new instance of SeasonRepository.
func NewSeasonRepository(db *gorm.DB) SeasonRepository {
	return &seasonRepository{
		db:      db,
		members: member.NewMemberRepository(db),
	}
}

func (r *seasonRepository) ListMembers(ctx context.Context) ([]member.Member, error) {
	return r.members.ListAll(ctx)
}

func (r *seasonRepository) CommitTransition(ctx context.Context, teamMutations []TeamMutation, memberMutations []MemberMutation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, tm := range teamMutations {
			if err := tx.Model(&team.Team{}).Where("id = ?", tm.TeamID).Updates(tm.Fields).Error; err != nil {
				return err
			}
		}
		for _, mm := range memberMutations {
			if err := tx.Model(&member.Member{}).Where("id = ?", mm.MemberID).Updates(mm.Fields).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
