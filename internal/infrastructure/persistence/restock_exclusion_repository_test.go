package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pharmacy/backend/internal/domain/insights"
)

func newMockExclusionRepository(t *testing.T) (*GormExclusionRepository, sqlmock.Sqlmock, *sql.DB) {
	gormDB, mock, mockDB := newMockDB(t)
	return NewGormExclusionRepository(gormDB), mock, mockDB
}

func TestGormExclusionRepository_Insert(t *testing.T) {
	t.Run("inserts a new exclusion row", func(t *testing.T) {
		repo, mock, mockDB := newMockExclusionRepository(t)
		defer mockDB.Close()

		exclusion, err := insights.NewRestockExclusion(uuid.New(), uuid.New(), 7, "seasonal")
		require.NoError(t, err)

		mock.ExpectExec(`INSERT INTO "restock_exclusions"`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.Insert(context.Background(), exclusion)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormExclusionRepository_ActiveProductIDs(t *testing.T) {
	t.Run("collects products with an active exclusion", func(t *testing.T) {
		repo, mock, mockDB := newMockExclusionRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		productID := uuid.New()
		now := time.Now()

		rows := sqlmock.NewRows([]string{"product_id"}).AddRow(productID)

		mock.ExpectQuery(`SELECT DISTINCT "product_id" FROM "restock_exclusions" WHERE tenant_id = \$1 AND blocked_until > \$2`).
			WithArgs(tenantID, now).
			WillReturnRows(rows)

		active, err := repo.ActiveProductIDs(context.Background(), tenantID, now)

		assert.NoError(t, err)
		assert.Contains(t, active, productID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns empty set when nothing is snoozed", func(t *testing.T) {
		repo, mock, mockDB := newMockExclusionRepository(t)
		defer mockDB.Close()

		tenantID := uuid.New()
		now := time.Now()

		mock.ExpectQuery(`SELECT DISTINCT "product_id" FROM "restock_exclusions"`).
			WithArgs(tenantID, now).
			WillReturnRows(sqlmock.NewRows([]string{"product_id"}))

		active, err := repo.ActiveProductIDs(context.Background(), tenantID, now)

		assert.NoError(t, err)
		assert.Empty(t, active)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
