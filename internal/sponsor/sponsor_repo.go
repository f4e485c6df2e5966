package sponsor

import (
	"errors"

	"gorm.io/gorm"
)

// SponsorRepository defines the interface for sponsor data operations
type SponsorRepository interface {
	CreateSponsor(sponsor *Sponsor) error
	GetSponsorByID(id uint) (*Sponsor, error)
	GetSponsorByName(name string) (*Sponsor, error)
	GetAllSponsors(page, limit int, filters map[string]interface{}) ([]Sponsor, int64, error)
	UpdateSponsor(sponsor *Sponsor) error
	DeleteSponsor(id uint) error
}

type sponsorRepository struct {
	db *gorm.DB
}

// NewSponsorRepository creates a new instance of SponsorRepository
func NewSponsorRepository(db *gorm.DB) SponsorRepository {
	return &sponsorRepository{db: db}
}

func (r *sponsorRepository) CreateSponsor(sponsor *Sponsor) error {
	return r.db.Create(sponsor).Error
}

func (r *sponsorRepository) GetSponsorByID(id uint) (*Sponsor, error) {
	var sponsor Sponsor
	if err := r.db.First(&sponsor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sponsor, nil
}

func (r *sponsorRepository) GetSponsorByName(name string) (*Sponsor, error) {
	var sponsor Sponsor
	if err := r.db.Where("name = ?", name).First(&sponsor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sponsor, nil
}

func (r *sponsorRepository) GetAllSponsors(page, limit int, filters map[string]interface{}) ([]Sponsor, int64, error) {
	var sponsors []Sponsor
	var total int64

	query := r.db.Model(&Sponsor{})

	if tier, ok := filters["tier"]; ok {
		query = query.Where("tier = ?", tier)
	}
	if clubID, ok := filters["club_id"]; ok {
		query = query.Where("club_id = ?", clubID)
	}
	if active, ok := filters["active"]; ok {
		query = query.Where("active = ?", active)
	} else {
		query = query.Where("active = ?", true)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("name ASC").Offset(offset).Limit(limit).Find(&sponsors).Error; err != nil {
		return nil, 0, err
	}
	return sponsors, total, nil
}

func (r *sponsorRepository) UpdateSponsor(sponsor *Sponsor) error {
	return r.db.Save(sponsor).Error
}

func (r *sponsorRepository) DeleteSponsor(id uint) error {
	return r.db.Delete(&Sponsor{}, id).Error
}
