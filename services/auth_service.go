package services

import (
	"errors"
	"strings"

	"github.com/Zaara786/plush-palate/pkg/apperr"
	"github.com/Zaara786/plush-palate/pkg/session"
	"github.com/Zaara786/plush-palate/repository"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles admin login/logout against the session store.
type AuthService struct {
	adminRepo *repository.AdminRepository
	sessions  *session.Store
}

func NewAuthService(repo *repository.AdminRepository, sessions *session.Store) *AuthService {
	return &AuthService{
		adminRepo: repo,
		sessions:  sessions,
	}
}

// Login verifies the credentials and issues a session token. Unknown
// username and wrong password both come back as ErrInvalidCredentials;
// the caller must not be able to tell which field was wrong.
func (s *AuthService) Login(username, password string) (string, session.Session, error) {
	username = strings.TrimSpace(username)

	admin, err := s.adminRepo.FindByUsername(username)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return "", session.Session{}, apperr.ErrInvalidCredentials
		}
		return "", session.Session{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return "", session.Session{}, apperr.ErrInvalidCredentials
	}

	token := s.sessions.Create(admin.ID, admin.FullName)
	sess, _ := s.sessions.Get(token)
	return token, sess, nil
}

// Logout destroys the session state unconditionally.
func (s *AuthService) Logout(token string) {
	s.sessions.Delete(token)
}
