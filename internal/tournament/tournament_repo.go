package tournament

import (
	"errors"

	"gorm.io/gorm"
)

// TournamentRepository defines the interface for tournament data operations
type TournamentRepository interface {
	CreateTournament(tournament *Tournament) error
	GetTournamentByID(id uint) (*Tournament, error)
	GetTournamentByName(name string) (*Tournament, error)
	GetAllTournaments(page, limit int, filters map[string]interface{}) ([]Tournament, int64, error)
	UpdateTournament(tournament *Tournament) error
	DeleteTournament(id uint) error

	CreateEntry(entry *TournamentEntry) error
	GetEntries(tournamentID uint) ([]TournamentEntry, error)
	CountEntries(tournamentID uint) (int64, error)
	GetEntryByTeam(tournamentID, teamID uint) (*TournamentEntry, error)
	DeleteEntry(id uint) error
}

type tournamentRepository struct {
	db *gorm.DB
}

// NewTournamentRepository creates a new instance of TournamentRepository
func NewTournamentRepository(db *gorm.DB) TournamentRepository {
	return &tournamentRepository{db: db}
}

func (r *tournamentRepository) CreateTournament(tournament *Tournament) error {
	return r.db.Create(tournament).Error
}

func (r *tournamentRepository) GetTournamentByID(id uint) (*Tournament, error) {
	var tournament Tournament
	if err := r.db.First(&tournament, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tournament, nil
}

func (r *tournamentRepository) GetTournamentByName(name string) (*Tournament, error) {
	var tournament Tournament
	if err := r.db.Where("name = ?", name).First(&tournament).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &tournament, nil
}

func (r *tournamentRepository) GetAllTournaments(page, limit int, filters map[string]interface{}) ([]Tournament, int64, error) {
	var tournaments []Tournament
	var total int64

	query := r.db.Model(&Tournament{})

	if registration, ok := filters["registration"]; ok {
		query = query.Where("registration = ?", registration)
	}
	if organizerID, ok := filters["organizer_id"]; ok {
		query = query.Where("organizer_id = ?", organizerID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("start_date ASC").Offset(offset).Limit(limit).Find(&tournaments).Error; err != nil {
		return nil, 0, err
	}
	return tournaments, total, nil
}

func (r *tournamentRepository) UpdateTournament(tournament *Tournament) error {
	return r.db.Save(tournament).Error
}

func (r *tournamentRepository) DeleteTournament(id uint) error {
	return r.db.Delete(&Tournament{}, id).Error
}

func (r *tournamentRepository) CreateEntry(entry *TournamentEntry) error {
	return r.db.Create(entry).Error
}

func (r *tournamentRepository) GetEntries(tournamentID uint) ([]TournamentEntry, error) {
	var entries []TournamentEntry
	if err := r.db.Where("tournament_id = ?", tournamentID).Order("created_at ASC").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *tournamentRepository) CountEntries(tournamentID uint) (int64, error) {
	var count int64
	err := r.db.Model(&TournamentEntry{}).Where("tournament_id = ?", tournamentID).Count(&count).Error
	return count, err
}

func (r *tournamentRepository) GetEntryByTeam(tournamentID, teamID uint) (*TournamentEntry, error) {
	var entry TournamentEntry
	if err := r.db.Where("tournament_id = ? AND team_id = ?", tournamentID, teamID).First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (r *tournamentRepository) DeleteEntry(id uint) error {
	return r.db.Delete(&TournamentEntry{}, id).Error
}
