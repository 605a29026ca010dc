package accounts

import (
	"context"

	"github.com/piresc/freightdesk/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/freightdesk/services/accounts AccountRepo

// AccountRepo persists the non-driver identities
type AccountRepo interface {
	CreateAdmin(ctx context.Context, admin *models.Admin) error
	ListAdmins(ctx context.Context) ([]*models.Admin, error)

	CreateClient(ctx context.Context, client *models.Client) error
	UpdateClient(ctx context.Context, client *models.Client) error
	DeleteClient(ctx context.Context, id int64) error
	GetClient(ctx context.Context, id int64) (*models.Client, error)
	ListClients(ctx context.Context) ([]*models.Client, error)

	CreateAbastecedor(ctx context.Context, a *models.Abastecedor) error
	UpdateAbastecedor(ctx context.Context, a *models.Abastecedor) error
	DeleteAbastecedor(ctx context.Context, id int64) error
	GetAbastecedor(ctx context.Context, id int64) (*models.Abastecedor, error)
	ListAbastecedores(ctx context.Context) ([]*models.Abastecedor, error)
}
