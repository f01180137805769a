package services

import (
	"testing"
	"time"

	"github.com/Zaara786/plush-palate/entity"
	"github.com/Zaara786/plush-palate/pkg/apperr"
	"github.com/Zaara786/plush-palate/pkg/session"
	"github.com/Zaara786/plush-palate/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func newAuthService(t *testing.T) (*AuthService, *session.Store, *gorm.DB) {
	db := newTestDB(t)
	store := session.NewStore(time.Hour)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&entity.Admin{
		Username: "admin",
		Password: string(hash),
		FullName: "Restaurant Admin",
	}).Error)

	return NewAuthService(repository.NewAdminRepository(db), store), store, db
}

func TestLoginSuccess(t *testing.T) {
	svc, store, _ := newAuthService(t)

	token, sess, err := svc.Login("admin", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, "Restaurant Admin", sess.FullName)

	got, ok := store.Get(token)
	require.True(t, ok)
	assert.Equal(t, sess.AdminID, got.AdminID)
}

func TestLoginFailureIsIndistinguishable(t *testing.T) {
	svc, _, _ := newAuthService(t)

	_, _, wrongPass := svc.Login("admin", "nope")
	_, _, unknownUser := svc.Login("nobody", "s3cret")

	assert.ErrorIs(t, wrongPass, apperr.ErrInvalidCredentials)
	assert.ErrorIs(t, unknownUser, apperr.ErrInvalidCredentials)
	// exact same error value, nothing leaks which field was wrong
	assert.Equal(t, wrongPass, unknownUser)
}

func TestLogoutDestroysSession(t *testing.T) {
	svc, store, _ := newAuthService(t)

	token, _, err := svc.Login("admin", "s3cret")
	require.NoError(t, err)

	svc.Logout(token)

	_, ok := store.Get(token)
	assert.False(t, ok)

	// logging out twice is fine
	svc.Logout(token)
}
