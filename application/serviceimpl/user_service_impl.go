package serviceimpl

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"gofiber-todo/domain/dto"
	"gofiber-todo/domain/models"
	"gofiber-todo/domain/ports"
	"gofiber-todo/domain/repositories"
	"gofiber-todo/domain/services"
	"gofiber-todo/pkg/logger"
	"gofiber-todo/pkg/utils"
)

type UserServiceImpl struct {
	userRepo     repositories.UserRepository
	signer       *utils.SessionSigner
	revoker      ports.SessionRevoker // nil = ไม่มี deny-list
	passwordCost int
	now          func() time.Time
}

type UserServiceOption func(*UserServiceImpl)

// WithPasswordCost เปลี่ยน bcrypt cost (test ใช้ bcrypt.MinCost)
func WithPasswordCost(cost int) UserServiceOption {
	return func(s *UserServiceImpl) { s.passwordCost = cost }
}

func NewUserService(userRepo repositories.UserRepository, signer *utils.SessionSigner, revoker ports.SessionRevoker, opts ...UserServiceOption) services.UserService {
	s := &UserServiceImpl{
		userRepo:     userRepo,
		signer:       signer,
		revoker:      revoker,
		passwordCost: bcrypt.DefaultCost,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *UserServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if err := utils.ValidateStruct(req); err != nil {
		return nil, &services.ValidationError{Fields: utils.GetValidationErrors(err)}
	}
	if msg := checkPassword(req.Password1, req.Username); msg != "" {
		return nil, services.NewValidationError("password2", msg)
	}

	existingUser, err := s.userRepo.GetByUsername(ctx, req.Username)
	switch {
	case err == nil && existingUser != nil:
		logger.WarnContext(ctx, "Username already exists", "username", req.Username)
		return nil, usernameTaken()
	case err != nil && !errors.Is(err, repositories.ErrNotFound):
		logger.ErrorContext(ctx, "Failed to check username", "error", err)
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password1), s.passwordCost)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to hash password", "error", err)
		return nil, err
	}

	user := &models.User{
		ID:       uuid.New(),
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
		IsActive: true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, usernameTaken()
		}
		logger.ErrorContext(ctx, "Failed to create user in database", "error", err)
		return nil, err
	}

	logger.InfoContext(ctx, "User registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

func (s *UserServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*utils.SessionToken, *models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if !errors.Is(err, repositories.ErrNotFound) {
			logger.ErrorContext(ctx, "Failed to load user for login", "error", err)
			return nil, nil, err
		}
		logger.WarnContext(ctx, "Login failed - username not found", "username", req.Username)
		return nil, nil, services.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		logger.WarnContext(ctx, "Login failed - invalid password", "user_id", user.ID)
		return nil, nil, services.ErrInvalidCredentials
	}

	if !user.IsActive {
		logger.WarnContext(ctx, "Login failed - account disabled", "user_id", user.ID)
		return nil, nil, services.ErrAccountDisabled
	}

	now := s.now()
	user.LastLogin = &now
	if err := s.userRepo.Update(ctx, user.ID, user); err != nil {
		logger.ErrorContext(ctx, "Failed to update last login", "user_id", user.ID, "error", err)
		return nil, nil, err
	}

	token, err := s.IssueSession(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	logger.InfoContext(ctx, "User logged in", "user_id", user.ID)
	return token, user, nil
}

func (s *UserServiceImpl) IssueSession(ctx context.Context, user *models.User) (*utils.SessionToken, error) {
	token, err := s.signer.Issue(user.ID, user.Username)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to issue session token", "user_id", user.ID, "error", err)
		return nil, err
	}
	return token, nil
}

// Logout ใส่ session id ลง deny-list จนกว่า token จะหมดอายุเอง
func (s *UserServiceImpl) Logout(ctx context.Context, session *utils.UserContext) error {
	if session == nil {
		return services.ErrUnauthenticated
	}
	if s.revoker == nil || session.SessionID == "" {
		logger.InfoContext(ctx, "User logged out", "user_id", session.ID)
		return nil
	}

	ttl := session.ExpiresAt.Sub(s.now())
	if session.ExpiresAt.IsZero() || ttl <= 0 {
		ttl = s.signer.TTL()
	}

	if err := s.revoker.Revoke(ctx, session.SessionID, ttl); err != nil {
		logger.ErrorContext(ctx, "Failed to revoke session", "user_id", session.ID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "User logged out", "user_id", session.ID, "session_id", session.SessionID)
	return nil
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserServiceImpl) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, services.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// DeleteUser ลบ user และ tasks ทั้งหมดของ user
func (s *UserServiceImpl) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return services.ErrUserNotFound
		}
		logger.ErrorContext(ctx, "Failed to delete user", "user_id", userID, "error", err)
		return err
	}

	logger.InfoContext(ctx, "User deleted", "user_id", userID)
	return nil
}

func usernameTaken() error {
	return &services.ValidationError{
		Fields: map[string]string{"username": "A user with that username already exists."},
		Cause:  services.ErrUsernameTaken,
	}
}

// checkPassword ห้ามเป็นตัวเลขล้วน และห้ามเหมือน username
func checkPassword(password, username string) string {
	if isAllDigits(password) {
		return "This password is entirely numeric."
	}
	if username != "" && strings.EqualFold(password, username) {
		return "The password is too similar to the username."
	}
	return ""
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
