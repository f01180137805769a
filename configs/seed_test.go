package configs

import (
	"fmt"
	"testing"

	"github.com/Zaara786/plush-palate/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, SetupDatabase(db))
	return db
}

func TestSeedAdmin(t *testing.T) {
	db := newTestDB(t)
	cfg := &Config{AdminUsername: "admin", AdminPassword: "s3cret"}

	require.NoError(t, SeedAdmin(db, cfg))

	var admin entity.Admin
	require.NoError(t, db.First(&admin).Error)
	assert.Equal(t, "admin", admin.Username)
	assert.Equal(t, "Restaurant Admin", admin.FullName)

	// hash only, and it verifies
	assert.NotEqual(t, "s3cret", admin.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("s3cret")))
}

func TestSeedAdminIdempotent(t *testing.T) {
	db := newTestDB(t)
	cfg := &Config{AdminUsername: "admin", AdminPassword: "s3cret"}

	require.NoError(t, SeedAdmin(db, cfg))
	require.NoError(t, SeedAdmin(db, cfg))

	var count int64
	require.NoError(t, db.Model(&entity.Admin{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSeedAdminGeneratesPassword(t *testing.T) {
	db := newTestDB(t)
	cfg := &Config{AdminUsername: "admin"} // no password configured

	require.NoError(t, SeedAdmin(db, cfg))

	var admin entity.Admin
	require.NoError(t, db.First(&admin).Error)
	// never blank, never plaintext-guessable
	assert.NotEmpty(t, admin.Password)
	assert.Error(t, bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte("")))
}

func TestSetupDatabaseIdempotent(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, SetupDatabase(db))
	require.NoError(t, SetupDatabase(db))
}
