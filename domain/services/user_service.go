package services

import (
	"context"

	"github.com/google/uuid"

	"gofiber-todo/domain/dto"
	"gofiber-todo/domain/models"
	"gofiber-todo/pkg/utils"
)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	// Login ตรวจ credentials แล้วออก session token
	Login(ctx context.Context, req *dto.LoginRequest) (*utils.SessionToken, *models.User, error)
	IssueSession(ctx context.Context, user *models.User) (*utils.SessionToken, error)
	Logout(ctx context.Context, session *utils.UserContext) error
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	DeleteUser(ctx context.Context, userID uuid.UUID) error
}
