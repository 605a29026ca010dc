package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/freightdesk/internal/pkg/models"
)

// accountSource describes how one role's table maps onto models.Account
type accountSource struct {
	table      string
	document   string
	loginWhere string
}

var accountSources = map[models.Role]accountSource{
	models.RoleAdmin: {
		table:      "admins",
		document:   "''",
		loginWhere: "LOWER(email) = LOWER($1)",
	},
	models.RoleCliente: {
		table:      "clients",
		document:   "document",
		loginWhere: "LOWER(email) = LOWER($1)",
	},
	models.RoleAbastecedor: {
		table:      "abastecedores",
		document:   "cpf",
		loginWhere: "LOWER(email) = LOWER($1)",
	},
	models.RoleDriver: {
		table:      "drivers",
		document:   "cpf",
		loginWhere: "(cpf = $1 OR (email <> '' AND LOWER(email) = LOWER($1)))",
	},
}

// AccountRepo implements the auth.AuthRepo interface
type AccountRepo struct {
	db *sqlx.DB
}

// NewAccountRepo creates a new account repository
func NewAccountRepo(db *sqlx.DB) *AccountRepo {
	return &AccountRepo{db: db}
}

// FindByLogin finds an account by e-mail, or by CPF for drivers
func (r *AccountRepo) FindByLogin(ctx context.Context, role models.Role, login string) (*models.Account, error) {
	src, err := source(role)
	if err != nil {
		return nil, err
	}
	return r.find(ctx, role, src, src.loginWhere, login)
}

// FindByPhone finds an account by its normalised phone number
func (r *AccountRepo) FindByPhone(ctx context.Context, role models.Role, phone string) (*models.Account, error) {
	src, err := source(role)
	if err != nil {
		return nil, err
	}
	return r.find(ctx, role, src, "phone = $1", phone)
}

// UpdatePassword stores a new bcrypt hash
func (r *AccountRepo) UpdatePassword(ctx context.Context, role models.Role, id int64, hash string) error {
	src, err := source(role)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`UPDATE %s SET password_hash = $1, updated_at = NOW() WHERE id = $2`, src.table)
	res, err := r.db.ExecContext(ctx, query, hash, id)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return models.NotFoundError(string(role), id)
	}
	return nil
}

func (r *AccountRepo) find(ctx context.Context, role models.Role, src accountSource, where string, arg string) (*models.Account, error) {
	query := fmt.Sprintf(`
		SELECT id, name, email, phone, %s AS document, password_hash, active
		FROM %s
		WHERE %s
		ORDER BY id
		LIMIT 1
	`, src.document, src.table, where)

	var account models.Account
	if err := r.db.GetContext(ctx, &account, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s account: %w", role, models.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	account.Role = role
	return &account, nil
}

func source(role models.Role) (accountSource, error) {
	src, ok := accountSources[role]
	if !ok {
		return accountSource{}, models.NewValidationError("unknown role %q", role)
	}
	return src, nil
}
