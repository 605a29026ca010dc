package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/freightdesk/internal/pkg/database"
	"github.com/piresc/freightdesk/internal/pkg/models"
)

// AccountRepo implements the accounts.AccountRepo interface
type AccountRepo struct {
	db *sqlx.DB
}

// NewAccountRepo creates a new account repository
func NewAccountRepo(db *sqlx.DB) *AccountRepo {
	return &AccountRepo{db: db}
}

// CreateAdmin inserts an admin
func (r *AccountRepo) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	query := `
		INSERT INTO admins (name, email, phone, password_hash, active)
		VALUES (:name, :email, :phone, :password_hash, :active)
		RETURNING id, created_at, updated_at
	`
	return r.insert(ctx, "admin", query, admin, &admin.ID, &admin.CreatedAt, &admin.UpdatedAt)
}

// ListAdmins lists admins ordered by name
func (r *AccountRepo) ListAdmins(ctx context.Context) ([]*models.Admin, error) {
	admins := []*models.Admin{}
	err := r.db.SelectContext(ctx, &admins, `SELECT * FROM admins ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}
	return admins, nil
}

// CreateClient inserts a client
func (r *AccountRepo) CreateClient(ctx context.Context, client *models.Client) error {
	query := `
		INSERT INTO clients (name, document, email, phone, address, password_hash, active)
		VALUES (:name, :document, :email, :phone, :address, :password_hash, :active)
		RETURNING id, created_at, updated_at
	`
	return r.insert(ctx, "client", query, client, &client.ID, &client.CreatedAt, &client.UpdatedAt)
}

// UpdateClient overwrites every mutable column of the client
func (r *AccountRepo) UpdateClient(ctx context.Context, client *models.Client) error {
	query := `
		UPDATE clients
		SET name = :name, document = :document, email = :email, phone = :phone,
			address = :address, password_hash = :password_hash, active = :active,
			updated_at = NOW()
		WHERE id = :id
	`
	return r.update(ctx, "client", client.ID, query, client)
}

// DeleteClient removes a client; drivers and freights keep a NULL client
func (r *AccountRepo) DeleteClient(ctx context.Context, id int64) error {
	return r.delete(ctx, "clients", "client", id)
}

// GetClient retrieves a client by id
func (r *AccountRepo) GetClient(ctx context.Context, id int64) (*models.Client, error) {
	var client models.Client
	if err := r.db.GetContext(ctx, &client, `SELECT * FROM clients WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.NotFoundError("client", id)
		}
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return &client, nil
}

// ListClients lists clients ordered by name
func (r *AccountRepo) ListClients(ctx context.Context) ([]*models.Client, error) {
	clients := []*models.Client{}
	if err := r.db.SelectContext(ctx, &clients, `SELECT * FROM clients ORDER BY name, id`); err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

// CreateAbastecedor inserts a fuel-station agent
func (r *AccountRepo) CreateAbastecedor(ctx context.Context, a *models.Abastecedor) error {
	query := `
		INSERT INTO abastecedores (name, cpf, email, phone, station, password_hash, active)
		VALUES (:name, :cpf, :email, :phone, :station, :password_hash, :active)
		RETURNING id, created_at, updated_at
	`
	return r.insert(ctx, "abastecedor", query, a, &a.ID, &a.CreatedAt, &a.UpdatedAt)
}

// UpdateAbastecedor overwrites every mutable column of the abastecedor
func (r *AccountRepo) UpdateAbastecedor(ctx context.Context, a *models.Abastecedor) error {
	query := `
		UPDATE abastecedores
		SET name = :name, cpf = :cpf, email = :email, phone = :phone,
			station = :station, password_hash = :password_hash, active = :active,
			updated_at = NOW()
		WHERE id = :id
	`
	return r.update(ctx, "abastecedor", a.ID, query, a)
}

// DeleteAbastecedor removes an abastecedor; its submissions keep a NULL submitter
func (r *AccountRepo) DeleteAbastecedor(ctx context.Context, id int64) error {
	return r.delete(ctx, "abastecedores", "abastecedor", id)
}

// GetAbastecedor retrieves an abastecedor by id
func (r *AccountRepo) GetAbastecedor(ctx context.Context, id int64) (*models.Abastecedor, error) {
	var a models.Abastecedor
	if err := r.db.GetContext(ctx, &a, `SELECT * FROM abastecedores WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.NotFoundError("abastecedor", id)
		}
		return nil, fmt.Errorf("failed to get abastecedor: %w", err)
	}
	return &a, nil
}

// ListAbastecedores lists abastecedores ordered by name
func (r *AccountRepo) ListAbastecedores(ctx context.Context) ([]*models.Abastecedor, error) {
	list := []*models.Abastecedor{}
	if err := r.db.SelectContext(ctx, &list, `SELECT * FROM abastecedores ORDER BY name, id`); err != nil {
		return nil, fmt.Errorf("failed to list abastecedores: %w", err)
	}
	return list, nil
}

func (r *AccountRepo) insert(ctx context.Context, entity, query string, arg interface{}, dest ...interface{}) error {
	rows, err := r.db.NamedQueryContext(ctx, query, arg)
	if err != nil {
		return mapWriteError(entity, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return mapWriteError(entity, err)
		}
		return fmt.Errorf("failed to insert %s: no row returned", entity)
	}
	if err := rows.Scan(dest...); err != nil {
		return fmt.Errorf("failed to scan %s: %w", entity, err)
	}
	return nil
}

func (r *AccountRepo) update(ctx context.Context, entity string, id int64, query string, arg interface{}) error {
	res, err := r.db.NamedExecContext(ctx, query, arg)
	if err != nil {
		return mapWriteError(entity, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return models.NotFoundError(entity, id)
	}
	return nil
}

func (r *AccountRepo) delete(ctx context.Context, table, entity string, id int64) error {
	res, err := r.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table), id)
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", entity, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return models.NotFoundError(entity, id)
	}
	return nil
}

func mapWriteError(entity string, err error) error {
	if database.IsUniqueViolation(err) {
		return fmt.Errorf("%s with this email already exists: %w", entity, models.ErrConflict)
	}
	return fmt.Errorf("failed to save %s: %w", entity, err)
}
