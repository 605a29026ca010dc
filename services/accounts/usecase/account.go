package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/piresc/freightdesk/internal/pkg/logger"
	"github.com/piresc/freightdesk/internal/pkg/models"
	"github.com/piresc/freightdesk/internal/utils"
	"github.com/piresc/freightdesk/services/accounts"
)

// AccountUC implements accounts.AccountUC
type AccountUC struct {
	accountRepo accounts.AccountRepo
	cfg         *models.Config
}

// NewAccountUC creates a new account usecase instance
func NewAccountUC(
	accountRepo accounts.AccountRepo,
	cfg *models.Config,
) *AccountUC {
	return &AccountUC{
		accountRepo: accountRepo,
		cfg:         cfg,
	}
}

// CreateAdmin registers a back-office operator
func (uc *AccountUC) CreateAdmin(ctx context.Context, req *models.AdminRequest) (*models.Admin, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		return nil, models.NewValidationError("name and email are required")
	}
	if len(req.Password) < 6 {
		return nil, models.NewValidationError("password must have at least 6 characters")
	}

	phone, err := utils.NormalizeOptionalPhone(req.Phone)
	if err != nil {
		return nil, err
	}
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	admin := &models.Admin{
		Name:         strings.TrimSpace(req.Name),
		Email:        normalizeEmail(req.Email),
		Phone:        phone,
		PasswordHash: hash,
		Active:       true,
	}
	if err := uc.accountRepo.CreateAdmin(ctx, admin); err != nil {
		return nil, fmt.Errorf("failed to create admin: %w", err)
	}

	logger.Info("Admin created", logger.Int64("admin_id", admin.ID))
	return admin, nil
}

// ListAdmins lists every admin
func (uc *AccountUC) ListAdmins(ctx context.Context) ([]*models.Admin, error) {
	return uc.accountRepo.ListAdmins(ctx)
}

// CreateClient registers a shipper. Name and e-mail are required; a
// password is only needed for clients that use the tracking portal.
func (uc *AccountUC) CreateClient(ctx context.Context, req *models.ClientRequest) (*models.Client, error) {
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		return nil, models.NewValidationError("name is required")
	}
	if req.Email == nil || strings.TrimSpace(*req.Email) == "" {
		return nil, models.NewValidationError("email is required")
	}

	client := &models.Client{Active: true}
	if err := applyClient(client, req); err != nil {
		return nil, err
	}
	if err := uc.accountRepo.CreateClient(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	logger.Info("Client created", logger.Int64("client_id", client.ID))
	return client, nil
}

// UpdateClient patches a client
func (uc *AccountUC) UpdateClient(ctx context.Context, id int64, req *models.ClientRequest) (*models.Client, error) {
	client, err := uc.accountRepo.GetClient(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyClient(client, req); err != nil {
		return nil, err
	}
	if err := uc.accountRepo.UpdateClient(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return client, nil
}

// DeleteClient removes a client
func (uc *AccountUC) DeleteClient(ctx context.Context, id int64) error {
	if err := uc.accountRepo.DeleteClient(ctx, id); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}

// GetClient retrieves a client
func (uc *AccountUC) GetClient(ctx context.Context, id int64) (*models.Client, error) {
	return uc.accountRepo.GetClient(ctx, id)
}

// ListClients lists every client
func (uc *AccountUC) ListClients(ctx context.Context) ([]*models.Client, error) {
	return uc.accountRepo.ListClients(ctx)
}

// CreateAbastecedor registers a fuel-station agent
func (uc *AccountUC) CreateAbastecedor(ctx context.Context, req *models.AbastecedorRequest) (*models.Abastecedor, error) {
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		return nil, models.NewValidationError("name is required")
	}
	if req.Email == nil || strings.TrimSpace(*req.Email) == "" {
		return nil, models.NewValidationError("email is required")
	}
	if req.Password == nil {
		return nil, models.NewValidationError("password is required")
	}

	a := &models.Abastecedor{Active: true}
	if err := applyAbastecedor(a, req); err != nil {
		return nil, err
	}
	if err := uc.accountRepo.CreateAbastecedor(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to create abastecedor: %w", err)
	}

	logger.Info("Abastecedor created", logger.Int64("abastecedor_id", a.ID))
	return a, nil
}

// UpdateAbastecedor patches an abastecedor
func (uc *AccountUC) UpdateAbastecedor(ctx context.Context, id int64, req *models.AbastecedorRequest) (*models.Abastecedor, error) {
	a, err := uc.accountRepo.GetAbastecedor(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyAbastecedor(a, req); err != nil {
		return nil, err
	}
	if err := uc.accountRepo.UpdateAbastecedor(ctx, a); err != nil {
		return nil, fmt.Errorf("failed to update abastecedor: %w", err)
	}
	return a, nil
}

// DeleteAbastecedor removes an abastecedor
func (uc *AccountUC) DeleteAbastecedor(ctx context.Context, id int64) error {
	if err := uc.accountRepo.DeleteAbastecedor(ctx, id); err != nil {
		return fmt.Errorf("failed to delete abastecedor: %w", err)
	}
	return nil
}

// GetAbastecedor retrieves an abastecedor
func (uc *AccountUC) GetAbastecedor(ctx context.Context, id int64) (*models.Abastecedor, error) {
	return uc.accountRepo.GetAbastecedor(ctx, id)
}

// ListAbastecedores lists every abastecedor
func (uc *AccountUC) ListAbastecedores(ctx context.Context) ([]*models.Abastecedor, error) {
	return uc.accountRepo.ListAbastecedores(ctx)
}

func applyClient(c *models.Client, req *models.ClientRequest) error {
	if req.Name != nil {
		c.Name = strings.TrimSpace(*req.Name)
	}
	if req.Document != nil {
		doc := models.DigitsOnly(*req.Document)
		if doc != "" && !utils.IsValidDocument(doc) {
			return models.NewValidationError("invalid cpf/cnpj")
		}
		c.Document = doc
	}
	if req.Email != nil {
		c.Email = normalizeEmail(*req.Email)
	}
	if req.Phone != nil {
		phone, err := utils.NormalizeOptionalPhone(*req.Phone)
		if err != nil {
			return err
		}
		c.Phone = phone
	}
	if req.Address != nil {
		c.Address = strings.TrimSpace(*req.Address)
	}
	if req.Active != nil {
		c.Active = *req.Active
	}
	if req.Password != nil {
		hash, err := hashPassword(*req.Password)
		if err != nil {
			return err
		}
		c.PasswordHash = hash
	}
	return nil
}

func applyAbastecedor(a *models.Abastecedor, req *models.AbastecedorRequest) error {
	if req.Name != nil {
		a.Name = strings.TrimSpace(*req.Name)
	}
	if req.CPF != nil {
		cpf := models.DigitsOnly(*req.CPF)
		if cpf != "" && !utils.IsValidCPF(cpf) {
			return models.NewValidationError("invalid cpf")
		}
		a.CPF = cpf
	}
	if req.Email != nil {
		a.Email = normalizeEmail(*req.Email)
	}
	if req.Phone != nil {
		phone, err := utils.NormalizeOptionalPhone(*req.Phone)
		if err != nil {
			return err
		}
		a.Phone = phone
	}
	if req.Station != nil {
		a.Station = strings.TrimSpace(*req.Station)
	}
	if req.Active != nil {
		a.Active = *req.Active
	}
	if req.Password != nil {
		hash, err := hashPassword(*req.Password)
		if err != nil {
			return err
		}
		a.PasswordHash = hash
	}
	return nil
}

func hashPassword(password string) (string, error) {
	if len(password) < 6 {
		return "", models.NewValidationError("password must have at least 6 characters")
	}
	return utils.HashPassword(password)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
