package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"skylogger/dronelog/internal/common"
	"skylogger/dronelog/internal/constants"
	"skylogger/dronelog/internal/db/repositories"
	"skylogger/dronelog/internal/logging"
	"skylogger/dronelog/internal/models/dtos"
	gormModels "skylogger/dronelog/internal/models/gorm"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserService handles accounts and login sessions. Passwords are stored as
// bcrypt digests only.
type UserService struct {
	users      *repositories.UserRepository
	sessionSvc *common.SessionService
	tokenSvc   *common.TokenService
}

func NewUserService(users *repositories.UserRepository, sessionSvc *common.SessionService, tokenSvc *common.TokenService) *UserService {
	return &UserService{
		users:      users,
		sessionSvc: sessionSvc,
		tokenSvc:   tokenSvc,
	}
}

// Register creates a new account after uniqueness and form checks.
func (s *UserService) Register(ctx context.Context, req *dtos.RegisterUserReq) (*dtos.UserResponse, error) {
	if err := validateRegistration(req); err != nil {
		return nil, err
	}

	taken, err := s.users.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, NewDomainError(constants.ErrCodeDuplicateUser)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &gormModels.User{
		ID:           uuid.New().String(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		PilotLicense: req.PilotLicense,
		Organization: req.Organization,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	logging.Info("User registered", "user_id", user.ID, "username", user.Username)
	return toUserResponse(user), nil
}

// Login verifies credentials, stamps last login, and opens a session.
func (s *UserService) Login(ctx context.Context, req *dtos.LoginReq) (*dtos.LoginResponse, error) {
	user, err := s.users.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, NewDomainError(constants.ErrCodeInvalidCredentials)
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		return nil, NewDomainError(constants.ErrCodeInvalidCredentials)
	}

	now := time.Now()
	if err := s.users.TouchLastLogin(ctx, user.ID, now); err != nil {
		// Non-fatal bookkeeping; the login still succeeds.
		logging.Warn("Failed to stamp last login", "user_id", user.ID, "error", err.Error())
	}
	user.LastLoginAt = &now

	session, err := s.sessionSvc.CreateSession(ctx, user.ID, user.Username)
	if err != nil {
		return nil, err
	}

	token, err := s.tokenSvc.SignSessionToken(session)
	if err != nil {
		return nil, err
	}

	logging.Info("User logged in", "user_id", user.ID, "session_id", session.SessionID)
	return &dtos.LoginResponse{
		Token:     token,
		ExpiresAt: session.ExpiresAt,
		User:      *toUserResponse(user),
	}, nil
}

// Logout closes the session behind a bearer token.
func (s *UserService) Logout(ctx context.Context, sessionID string) {
	s.sessionSvc.DeleteSession(ctx, sessionID)
}

// GetProfile returns the account behind an authenticated request.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*dtos.UserResponse, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// UpdateProfile writes the editable fields and returns the updated account.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, req *dtos.UpdateProfileReq) (*dtos.UserResponse, error) {
	if req.Email != "" && !emailPattern.MatchString(req.Email) {
		return nil, NewDomainError(constants.ErrCodeRequiredFieldMissing)
	}

	fields := map[string]any{
		"full_name":     req.FullName,
		"pilot_license": req.PilotLicense,
		"organization":  req.Organization,
	}
	if req.Email != "" {
		fields["email"] = req.Email
	}

	if err := s.users.UpdateProfile(ctx, userID, fields); err != nil {
		return nil, err
	}
	return s.GetProfile(ctx, userID)
}

func validateRegistration(req *dtos.RegisterUserReq) *DomainError {
	switch {
	case len(req.Username) < 3,
		len(req.Password) < 6,
		req.FullName == "",
		!emailPattern.MatchString(req.Email):
		return NewDomainError(constants.ErrCodeRequiredFieldMissing)
	}
	return nil
}

func toUserResponse(user *gormModels.User) *dtos.UserResponse {
	return &dtos.UserResponse{
		ID:           user.ID,
		Username:     user.Username,
		Email:        user.Email,
		FullName:     user.FullName,
		PilotLicense: user.PilotLicense,
		Organization: user.Organization,
		LastLoginAt:  user.LastLoginAt,
		CreatedAt:    user.CreatedAt,
	}
}
