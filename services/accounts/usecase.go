package accounts

import (
	"context"

	"github.com/piresc/freightdesk/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/freightdesk/services/accounts AccountUC

// AccountUC represents the account management usecase interface
type AccountUC interface {
	CreateAdmin(ctx context.Context, req *models.AdminRequest) (*models.Admin, error)
	ListAdmins(ctx context.Context) ([]*models.Admin, error)

	CreateClient(ctx context.Context, req *models.ClientRequest) (*models.Client, error)
	UpdateClient(ctx context.Context, id int64, req *models.ClientRequest) (*models.Client, error)
	DeleteClient(ctx context.Context, id int64) error
	GetClient(ctx context.Context, id int64) (*models.Client, error)
	ListClients(ctx context.Context) ([]*models.Client, error)

	CreateAbastecedor(ctx context.Context, req *models.AbastecedorRequest) (*models.Abastecedor, error)
	UpdateAbastecedor(ctx context.Context, id int64, req *models.AbastecedorRequest) (*models.Abastecedor, error)
	DeleteAbastecedor(ctx context.Context, id int64) error
	GetAbastecedor(ctx context.Context, id int64) (*models.Abastecedor, error)
	ListAbastecedores(ctx context.Context) ([]*models.Abastecedor, error)
}
