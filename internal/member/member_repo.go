package member

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// MemberRepository defines the interface for member data operations
type MemberRepository interface {
	CreateMember(member *Member) error
	GetMemberByID(id uint) (*Member, error)
	GetMemberByEmail(email string) (*Member, error)
	GetAllMembers(page, limit int, filters map[string]interface{}) ([]Member, int64, error)
	// ListAll fetches every member record in one unpaginated scan. Team
	// membership is a denormalized list on each record and cannot be queried
	// by containment, so the season transition pays O(members) per run.
	ListAll(ctx context.Context) ([]Member, error)
	UpdateMember(member *Member) error
	DeleteMember(id uint) error
}

type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new instance of MemberRepository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

func (r *memberRepository) CreateMember(member *Member) error {
	member.SyncTeamMirror()
	return r.db.Create(member).Error
}

func (r *memberRepository) GetMemberByID(id uint) (*Member, error) {
	var member Member
	if err := r.db.First(&member, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) GetMemberByEmail(email string) (*Member, error) {
	var member Member
	if err := r.db.Where("email = ?", email).First(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) GetAllMembers(page, limit int, filters map[string]interface{}) ([]Member, int64, error) {
	var members []Member
	var total int64

	query := r.db.Model(&Member{})

	if clubID, ok := filters["club_id"]; ok {
		query = query.Where("club_id = ?", clubID)
	}
	if teamName, ok := filters["team"]; ok {
		// Matches the legacy mirror column only; the full list is JSON.
		query = query.Where("team = ?", teamName)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("last_name ASC, first_name ASC").Offset(offset).Limit(limit).Find(&members).Error; err != nil {
		return nil, 0, err
	}
	return members, total, nil
}

func (r *memberRepository) ListAll(ctx context.Context) ([]Member, error) {
	var members []Member
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (r *memberRepository) UpdateMember(member *Member) error {
	member.SyncTeamMirror()
	return r.db.Save(member).Error
}

func (r *memberRepository) DeleteMember(id uint) error {
	return r.db.Delete(&Member{}, id).Error
}
