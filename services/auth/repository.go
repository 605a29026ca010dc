package auth

import (
	"context"

	"github.com/piresc/freightdesk/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/freightdesk/services/auth AuthRepo

// AuthRepo looks up credentials across the four account tables
type AuthRepo interface {
	FindByLogin(ctx context.Context, role models.Role, login string) (*models.Account, error)
	FindByPhone(ctx context.Context, role models.Role, phone string) (*models.Account, error)
	UpdatePassword(ctx context.Context, role models.Role, id int64, hash string) error
}
