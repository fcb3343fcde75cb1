package service

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"cafe-inventory/internal/apperror"
	"cafe-inventory/internal/model"
	"cafe-inventory/internal/repository"
	"cafe-inventory/pkg/jwt"
	"cafe-inventory/pkg/timestamp"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	// ErrInvalidCredentials is shared by unknown user and wrong password so
	// the login page never reveals which accounts exist.
	ErrInvalidCredentials = apperror.Authentication("invalid username or password")
	ErrSessionInvalid     = apperror.Authentication("session expired, please log in again")
)

type AuthService interface {
	Register(req *RegisterRequest) (*model.User, error)
	Login(username, password string) (*LoginResponse, error)
	Logout(userID uint) error
	Authenticate(token string) (*model.User, error)
	ResetPassword(username, newPassword string) error
}

// RegisterRequest is the registration form. Role is free-form.
type RegisterRequest struct {
	Username string `form:"username" validate:"notblank,max=80"`
	Password string `form:"password" validate:"required"`
	Role     string `form:"role" validate:"max=50"`
}

type LoginResponse struct {
	Token     string
	ExpiresAt time.Time
	User      *model.User
}

type authService struct {
	userRepo repository.UserRepository
	signer   *jwt.Signer
	loc      *time.Location
	now      func() time.Time
}

func NewAuthService(userRepo repository.UserRepository, signer *jwt.Signer, loc *time.Location) AuthService {
	return &authService{
		userRepo: userRepo,
		signer:   signer,
		loc:      loc,
		now:      time.Now,
	}
}

// Register creates the account. The caller stays logged out.
func (s *authService) Register(req *RegisterRequest) (*model.User, error) {
	if err := validationError(req); err != nil {
		return nil, err
	}
	username := strings.TrimSpace(req.Username)

	existing, err := s.userRepo.FindByUsername(username)
	if err == nil && existing != nil {
		return nil, apperror.Constraint("username %q is already taken", username)
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("register: %w", err)
	}

	user := &model.User{
		Username:  username,
		Role:      strings.TrimSpace(req.Role),
		CreatedOn: timestamp.Format(s.now(), s.loc),
	}
	if err := setPassword(user, req.Password); err != nil {
		return nil, err
	}
	user.RotateTokenVersion()

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("register: %w", apperror.FromDB(err, "username"))
	}

	log.Printf("user %d registered: %s", user.ID, user.Username)
	return user, nil
}

// setPassword hashes into user. bcrypt only reads the first 72 bytes, so
// longer passwords are rejected instead of silently truncated.
func setPassword(user *model.User, password string) error {
	if err := user.SetPassword(password); err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return apperror.Validation("password must be at most 72 bytes")
		}
		return fmt.Errorf("hash password: %w", err)
	}
	return nil
}

func (s *authService) Login(username, password string) (*LoginResponse, error) {
	// 1. Find user by username
	user, err := s.userRepo.FindByUsername(strings.TrimSpace(username))
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("login: %w", err)
		}
		user = nil
	}

	// 2. Verify password (a missing user still pays for one bcrypt compare)
	if !user.CheckPassword(password) {
		return nil, ErrInvalidCredentials
	}

	// 3. Single Session: Generate New Token Version
	version := uuid.NewString()
	if err := s.userRepo.UpdateTokenVersion(user.ID, version); err != nil {
		return nil, errors.New("failed to update session")
	}
	user.TokenVersion = version

	// 4. Sign the session token
	token, err := s.signer.GenerateToken(user.ID, user.Username, user.Role, version)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &LoginResponse{
		Token:     token,
		ExpiresAt: s.now().Add(s.signer.TTL()),
		User:      user,
	}, nil
}

// Logout revokes every outstanding token for the user.
func (s *authService) Logout(userID uint) error {
	return s.userRepo.UpdateTokenVersion(userID, uuid.NewString())
}

func (s *authService) Authenticate(token string) (*model.User, error) {
	claims, err := s.signer.ValidateToken(token)
	if err != nil {
		return nil, ErrSessionInvalid
	}
	userID, err := claims.UserID()
	if err != nil {
		return nil, ErrSessionInvalid
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, ErrSessionInvalid
	}

	// Check against DB for strict session (TokenVersion)
	if user.TokenVersion == "" || user.TokenVersion != claims.TokenVersion {
		return nil, ErrSessionInvalid
	}
	return user, nil
}

func (s *authService) ResetPassword(username, newPassword string) error {
	if newPassword == "" {
		return apperror.Validation("password is required")
	}

	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		return apperror.FromDB(err, "user")
	}

	if err := setPassword(user, newPassword); err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(user.ID, user.Password, uuid.NewString())
}
