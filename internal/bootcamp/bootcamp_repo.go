package bootcamp

import (
	"errors"

	"gorm.io/gorm"
)

// BootcampRepository defines the interface for bootcamp data operations
type BootcampRepository interface {
	CreateBootcamp(bootcamp *Bootcamp) error
	GetBootcampByID(id uint) (*Bootcamp, error)
	GetAllBootcamps(page, limit int, providerID *uint) ([]Bootcamp, int64, error)
	UpdateBootcamp(bootcamp *Bootcamp) error
	DeleteBootcamp(id uint) error

	CreateBooking(booking *Booking) error
	GetBookingByID(id uint) (*Booking, error)
	GetBookingsByBootcampID(bootcampID uint, status string) ([]Booking, error)
	UpdateBooking(booking *Booking) error
}

type bootcampRepository struct {
	db *gorm.DB
}

// NewBootcampRepository creates a new instance of BootcampRepository
func NewBootcampRepository(db *gorm.DB) BootcampRepository {
	return &bootcampRepository{db: db}
}

func (r *bootcampRepository) CreateBootcamp(bootcamp *Bootcamp) error {
	return r.db.Create(bootcamp).Error
}

func (r *bootcampRepository) GetBootcampByID(id uint) (*Bootcamp, error) {
	var bootcamp Bootcamp
	if err := r.db.First(&bootcamp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bootcamp, nil
}

func (r *bootcampRepository) GetAllBootcamps(page, limit int, providerID *uint) ([]Bootcamp, int64, error) {
	var bootcamps []Bootcamp
	var total int64

	query := r.db.Model(&Bootcamp{})
	if providerID != nil {
		query = query.Where("provider_id = ?", *providerID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("start_date ASC").Offset(offset).Limit(limit).Find(&bootcamps).Error; err != nil {
		return nil, 0, err
	}
	return bootcamps, total, nil
}

func (r *bootcampRepository) UpdateBootcamp(bootcamp *Bootcamp) error {
	return r.db.Save(bootcamp).Error
}

func (r *bootcampRepository) DeleteBootcamp(id uint) error {
	return r.db.Delete(&Bootcamp{}, id).Error
}

func (r *bootcampRepository) CreateBooking(booking *Booking) error {
	return r.db.Create(booking).Error
}

func (r *bootcampRepository) GetBookingByID(id uint) (*Booking, error) {
	var booking Booking
	if err := r.db.First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &booking, nil
}

func (r *bootcampRepository) GetBookingsByBootcampID(bootcampID uint, status string) ([]Booking, error) {
	var bookings []Booking
	query := r.db.Where("bootcamp_id = ?", bootcampID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bootcampRepository) UpdateBooking(booking *Booking) error {
	return r.db.Save(booking).Error
}
