package season

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/clubhaus-app/clubhaus/internal/member"
	"github.com/clubhaus-app/clubhaus/internal/models"
	"github.com/clubhaus-app/clubhaus/internal/team"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&team.Team{}, &member.Member{}))
	return db
}

func TestCommitTransitionAppliesAllMutations(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSeasonRepository(db)

	tm := team.Team{Name: "FC Sample A1", Category: "A1", Status: team.StatusActive}
	require.NoError(t, db.Create(&tm).Error)

	m := member.Member{
		FirstName: "Anna", LastName: "Beispiel", Email: "anna@example.com",
		Teams: models.StringSlice{"FC Sample A1"}, Team: "FC Sample A1",
	}
	require.NoError(t, db.Create(&m).Error)

	err := repo.CommitTransition(context.Background(),
		[]TeamMutation{
			{TeamID: tm.ID, Fields: map[string]interface{}{"name": "FC Sample A2", "category": "A2"}},
		},
		[]MemberMutation{
			{MemberID: m.ID, Fields: map[string]interface{}{
				"teams": models.StringSlice{"FC Sample A2"},
				"team":  "FC Sample A2",
			}},
		},
	)
	require.NoError(t, err)

	var storedTeam team.Team
	require.NoError(t, db.First(&storedTeam, tm.ID).Error)
	assert.Equal(t, "FC Sample A2", storedTeam.Name)
	assert.Equal(t, "A2", storedTeam.Category)

	var storedMember member.Member
	require.NoError(t, db.First(&storedMember, m.ID).Error)
	assert.Equal(t, models.StringSlice{"FC Sample A2"}, storedMember.Teams)
	assert.Equal(t, "FC Sample A2", storedMember.Team)
}

func TestCommitTransitionRollsBackOnFailure(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSeasonRepository(db)

	tm := team.Team{Name: "FC Sample A1", Category: "A1", Status: team.StatusActive}
	require.NoError(t, db.Create(&tm).Error)

	err := repo.CommitTransition(context.Background(),
		[]TeamMutation{
			{TeamID: tm.ID, Fields: map[string]interface{}{"status": team.StatusArchived}},
			{TeamID: tm.ID, Fields: map[string]interface{}{"no_such_column": true}},
		},
		nil,
	)
	require.Error(t, err)

	// The first mutation was rolled back with the failing one.
	var storedTeam team.Team
	require.NoError(t, db.First(&storedTeam, tm.ID).Error)
	assert.Equal(t, team.StatusActive, storedTeam.Status)
}
