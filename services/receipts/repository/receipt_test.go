package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/freightdesk/internal/pkg/models"
)

func setupReceiptRepoTest(t *testing.T) (*ReceiptRepo, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "pgx")
	t.Cleanup(func() { sqlxDB.Close() })
	return NewReceiptRepo(sqlxDB), mock
}

var receiptColumns = []string{"id", "driver_id", "file_url", "date", "assigned_id", "created_at"}

func TestCreateReceipt(t *testing.T) {
	repo, mock := setupReceiptRepoTest(t)
	day := models.NewDate(time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC))
	now := time.Now()

	mock.ExpectQuery("WITH inserted AS \\( INSERT INTO comprovantes_descarga \\(driver_id, file_url, date\\) VALUES \\(\\$1, \\$2, \\$3\\)").
		WithArgs(int64(2), "/uploads/comprovantes/descarga/a.jpg", day).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).AddRow(int64(15), "João", now))

	receipt := &models.Receipt{
		Pool:     models.PoolDescarga,
		DriverID: 2,
		FileURL:  "/uploads/comprovantes/descarga/a.jpg",
		Date:     day,
	}
	require.NoError(t, repo.Create(context.Background(), receipt))

	assert.Equal(t, int64(15), receipt.ID)
	assert.Equal(t, "João", receipt.DriverName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateReceipt_UnknownPool(t *testing.T) {
	repo, mock := setupReceiptRepoTest(t)

	err := repo.Create(context.Background(), &models.Receipt{Pool: "pedagio", DriverID: 1})

	assert.ErrorIs(t, err, models.ErrValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListUnassigned(t *testing.T) {
	repo, mock := setupReceiptRepoTest(t)
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("FROM comprovantes_abastecimento r JOIN drivers d ON d.id = r.driver_id WHERE r.assigned_abastecimento_id IS NULL ORDER BY r.date DESC, r.id DESC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "driver_id", "driver_name", "file_url", "date", "assigned_id", "created_at"}).
			AddRow(int64(3), int64(1), "Ana", "/u/3.jpg", day, nil, day).
			AddRow(int64(2), int64(1), "Ana", "/u/2.jpg", day, nil, day))

	list, err := repo.ListUnassigned(context.Background(), models.PoolAbastecimento)

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, models.PoolAbastecimento, list[0].Pool)
	assert.Nil(t, list[0].AssignedTo)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssign(t *testing.T) {
	repo, mock := setupReceiptRepoTest(t)
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM freights WHERE id = \\$1 FOR UPDATE").
		WithArgs(int64(40)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(40)))
	mock.ExpectQuery("UPDATE comprovantes_carga SET assigned_freight_id = \\$1 WHERE id = \\$2 AND assigned_freight_id IS NULL RETURNING").
		WithArgs(int64(40), int64(7)).
		WillReturnRows(sqlmock.NewRows(receiptColumns).AddRow(int64(7), int64(1), "/u/7.jpg", day, int64(40), day))
	mock.ExpectExec("UPDATE freights SET loading_receipt_url = \\$1, updated_at = NOW\\(\\) WHERE id = \\$2").
		WithArgs("/u/7.jpg", int64(40)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	receipt, err := repo.Assign(context.Background(), models.PoolCarga, 7, 40)

	require.NoError(t, err)
	require.NotNil(t, receipt.AssignedTo)
	assert.Equal(t, int64(40), *receipt.AssignedTo)
	assert.Equal(t, models.PoolCarga, receipt.Pool)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssign_AlreadyAssignedLeavesTargetUntouched(t *testing.T) {
	repo, mock := setupReceiptRepoTest(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM freights WHERE id = \\$1 FOR UPDATE").
		WithArgs(int64(40)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(40)))
	mock.ExpectQuery("UPDATE comprovantes_descarga SET assigned_freight_id").
		WithArgs(int64(40), int64(7)).
		WillReturnRows(sqlmock.NewRows(receiptColumns))
	mock.ExpectRollback()

	_, err := repo.Assign(context.Background(), models.PoolDescarga, 7, 40)

	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssign_MissingTarget(t *testing.T) {
	repo, mock := setupReceiptRepoTest(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM abastecimentos WHERE id = \\$1 FOR UPDATE").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.Assign(context.Background(), models.PoolAbastecimento, 7, 99)

	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Contains(t, err.Error(), "abastecimento")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnassign(t *testing.T) {
	repo, mock := setupReceiptRepoTest(t)
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE comprovantes_abastecimento SET assigned_abastecimento_id = NULL WHERE assigned_abastecimento_id = \\$1 RETURNING").
		WithArgs(int64(12)).
		WillReturnRows(sqlmock.NewRows(receiptColumns).AddRow(int64(5), int64(1), "/u/5.jpg", day, nil, day))
	mock.ExpectExec("UPDATE abastecimentos SET receipt_url = '', updated_at = NOW\\(\\) WHERE id = \\$1").
		WithArgs(int64(12)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	released, err := repo.Unassign(context.Background(), models.PoolAbastecimento, 12)

	require.NoError(t, err)
	require.Len(t, released, 1)
	assert.Equal(t, int64(5), released[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUnassign_NothingAssigned(t *testing.T) {
	repo, mock := setupReceiptRepoTest(t)

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE comprovantes_carga SET assigned_freight_id = NULL").
		WithArgs(int64(12)).
		WillReturnRows(sqlmock.NewRows(receiptColumns))
	mock.ExpectRollback()

	_, err := repo.Unassign(context.Background(), models.PoolCarga, 12)

	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteReceipt(t *testing.T) {
	repo, mock := setupReceiptRepoTest(t)
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("DELETE FROM comprovantes_carga WHERE id = \\$1 AND assigned_freight_id IS NULL RETURNING").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(receiptColumns).AddRow(int64(7), int64(1), "/u/7.jpg", day, nil, day))
	mock.ExpectQuery("DELETE FROM comprovantes_carga").
		WithArgs(int64(8)).
		WillReturnError(sql.ErrNoRows)

	receipt, err := repo.Delete(context.Background(), models.PoolCarga, 7)
	require.NoError(t, err)
	assert.Equal(t, "/u/7.jpg", receipt.FileURL)

	_, err = repo.Delete(context.Background(), models.PoolCarga, 8)
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
