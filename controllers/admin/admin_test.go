package adminController

import (
	"testing"

	"github.com/gitmibrahim/soul/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Admin{}))
	return db
}

func TestCreateAdminRejectsDuplicates(t *testing.T) {
	db := setupTestDB(t)

	admin, err := CreateAdminRecord(db, "admin", "s3cret")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", admin.PasswordHash)

	_, err = CreateAdminRecord(db, "admin", "another")
	require.ErrorIs(t, err, models.ErrDuplicateAdmin)
}

func TestAuthenticate(t *testing.T) {
	db := setupTestDB(t)
	_, err := CreateAdminRecord(db, "admin", "s3cret")
	require.NoError(t, err)

	admin, err := Authenticate(db, "admin", "s3cret")
	require.NoError(t, err)
	require.NotNil(t, admin)
	require.Equal(t, "admin", admin.Username)

	admin, err = Authenticate(db, "admin", "wrong")
	require.NoError(t, err)
	require.Nil(t, admin)

	admin, err = Authenticate(db, "ghost", "s3cret")
	require.NoError(t, err)
	require.Nil(t, admin)
}
