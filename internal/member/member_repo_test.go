package member

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/clubhaus-app/clubhaus/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&Member{}))
	return db
}

func TestCreateMemberSyncsLegacyTeamColumn(t *testing.T) {
	repo := NewMemberRepository(setupTestDB(t))

	m := &Member{
		FirstName: "Anna",
		LastName:  "Beispiel",
		Email:     "anna@example.com",
		Teams:     models.StringSlice{"FC Sample A1", "FC Sample B2"},
		Team:      "stale value",
	}
	require.NoError(t, repo.CreateMember(m))

	stored, err := repo.GetMemberByID(m.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "FC Sample A1", stored.Team)
	assert.Equal(t, models.StringSlice{"FC Sample A1", "FC Sample B2"}, stored.Teams)
}

func TestCreateMemberWithoutTeamsGetsPlaceholder(t *testing.T) {
	repo := NewMemberRepository(setupTestDB(t))

	m := &Member{FirstName: "Ben", LastName: "Beispiel", Email: "ben@example.com"}
	require.NoError(t, repo.CreateMember(m))

	stored, err := repo.GetMemberByID(m.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, NoTeam, stored.Team)
}

func TestUpdateMemberResyncsMirror(t *testing.T) {
	repo := NewMemberRepository(setupTestDB(t))

	m := &Member{
		FirstName: "Cara",
		LastName:  "Beispiel",
		Email:     "cara@example.com",
		Teams:     models.StringSlice{"FC Sample A1"},
	}
	require.NoError(t, repo.CreateMember(m))

	m.Teams = models.StringSlice{"FC Sample A2"}
	require.NoError(t, repo.UpdateMember(m))

	stored, err := repo.GetMemberByID(m.ID)
	require.NoError(t, err)
	assert.Equal(t, "FC Sample A2", stored.Team)
}

func TestGetMemberByEmailNotFound(t *testing.T) {
	repo := NewMemberRepository(setupTestDB(t))

	stored, err := repo.GetMemberByEmail("nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, stored)
}

func TestListAllReturnsEveryMemberInIDOrder(t *testing.T) {
	repo := NewMemberRepository(setupTestDB(t))

	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		require.NoError(t, repo.CreateMember(&Member{
			FirstName: "X", LastName: "Y", Email: email,
		}))
	}

	all, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Less(t, all[0].ID, all[1].ID)
	assert.Less(t, all[1].ID, all[2].ID)
}
