package migration

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMigration(t *testing.T) {
	t.Run("creates an up and down file pair", func(t *testing.T) {
		dir := t.TempDir()

		mf, err := CreateMigration(dir, "Add Restock Snapshots")
		require.NoError(t, err)

		assert.True(t, strings.HasSuffix(mf.UpPath, "_add_restock_snapshots.up.sql"))
		assert.True(t, strings.HasSuffix(mf.DownPath, "_add_restock_snapshots.down.sql"))

		_, err = os.Stat(mf.UpPath)
		assert.NoError(t, err)
		_, err = os.Stat(mf.DownPath)
		assert.NoError(t, err)
	})
}

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Add Products", "add_products"},
		{"add-stock-lots", "add_stock_lots"},
		{"trailing space ", "trailing_space"},
		{"Mixed Case_99", "mixed_case_99"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeName(tt.input))
	}
}

func TestListMigrations(t *testing.T) {
	t.Run("lists up migrations only once", func(t *testing.T) {
		dir := t.TempDir()

		_, err := CreateMigration(dir, "first")
		require.NoError(t, err)

		migrations, err := ListMigrations(dir)
		require.NoError(t, err)
		assert.Len(t, migrations, 1)
	})

	t.Run("returns empty list for missing directory", func(t *testing.T) {
		migrations, err := ListMigrations("does/not/exist")

		require.NoError(t, err)
		assert.Empty(t, migrations)
	})
}
