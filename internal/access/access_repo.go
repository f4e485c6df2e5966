package access

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AccessRepository persists the roles configuration document.
type AccessRepository interface {
	// LoadConfiguration returns the persisted mapping, or (nil, nil) when no
	// document has ever been saved.
	LoadConfiguration() (RolesConfiguration, error)
	// SaveConfiguration replaces the persisted document wholesale.
	SaveConfiguration(cfg RolesConfiguration) error
}

type accessRepository struct {
	db *gorm.DB
}

// NewAccessRepository creates a new instance of AccessRepository.
func NewAccessRepository(db *gorm.DB) AccessRepository {
	return &accessRepository{db: db}
}

func (r *accessRepository) LoadConfiguration() (RolesConfiguration, error) {
	var record RolesConfigurationRecord
	err := r.db.Where("key = ?", ConfigKey).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	return DecodeRolesConfiguration([]byte(record.Value)), nil
}

func (r *accessRepository) SaveConfiguration(cfg RolesConfiguration) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return err
	}

	record := RolesConfigurationRecord{Key: ConfigKey, Value: string(raw)}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&record).Error
}
