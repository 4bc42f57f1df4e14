package assets

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"asset-audit/core/apperror"
	"asset-audit/core/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T, rows ...Asset) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, &Asset{}))
	if len(rows) > 0 {
		require.NoError(t, db.Create(&rows).Error)
	}
	return db
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func seedRows() []Asset {
	return []Asset{
		{Code: "A2", Location: "Room 1", Description: "Monitor"},
		{Code: "A1", Location: "Room 1", Description: "Desk"},
		{Code: "B1", Location: "Room 2", Description: "Chair"},
	}
}

func TestRepository_FindByCode(t *testing.T) {
	repo := NewRepository(setupTestDB(t, seedRows()...))
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		asset, err := repo.FindByCode(ctx, "B1")
		require.NoError(t, err)
		assert.Equal(t, "Room 2", asset.Location)
		assert.Equal(t, "Chair", asset.Description)
	})

	t.Run("Unknown", func(t *testing.T) {
		asset, err := repo.FindByCode(ctx, "ZZ")
		assert.Nil(t, asset)
		assert.True(t, errors.Is(err, apperror.ErrNotFound))
	})
}

func TestRepository_FindByLocation(t *testing.T) {
	repo := NewRepository(setupTestDB(t, seedRows()...))

	assets, err := repo.FindByLocation(context.Background(), "Room 1")
	require.NoError(t, err)
	require.Len(t, assets, 2)
	assert.Equal(t, "A1", assets[0].Code)
	assert.Equal(t, "A2", assets[1].Code)

	empty, err := repo.FindByLocation(context.Background(), "Nowhere")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestRepository_FindByCodes(t *testing.T) {
	t.Run("Skips Unknown Codes", func(t *testing.T) {
		repo := NewRepository(setupTestDB(t, seedRows()...))
		assets, err := repo.FindByCodes(context.Background(), []string{"A1", "B1", "nope"})
		require.NoError(t, err)
		assert.Len(t, assets, 2)
	})

	t.Run("Spans Several Batches", func(t *testing.T) {
		rows := make([]Asset, 0, lookupBatchSize+25)
		codes := make([]string, 0, cap(rows))
		for i := range cap(rows) {
			code := fmt.Sprintf("C%04d", i)
			rows = append(rows, Asset{Code: code, Location: "Store"})
			codes = append(codes, code)
		}
		db := setupTestDB(t)
		require.NoError(t, db.CreateInBatches(&rows, 100).Error)

		assets, err := NewRepository(db).FindByCodes(context.Background(), codes)
		require.NoError(t, err)
		assert.Len(t, assets, len(codes))
	})
}

func TestRepository_DatabaseFailure(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection refused"))
	_, err := repo.FindByCode(ctx, "A1")
	assert.True(t, errors.Is(err, apperror.ErrDependency))

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection refused"))
	_, err = repo.FindByLocation(ctx, "Room 1")
	assert.True(t, errors.Is(err, apperror.ErrDependency))

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("connection refused"))
	_, err = repo.FindByCodes(ctx, []string{"A1"})
	assert.True(t, errors.Is(err, apperror.ErrDependency))

	assert.NoError(t, mock.ExpectationsWereMet())
}
