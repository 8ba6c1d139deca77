package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEveryUpHasDown(t *testing.T) {
	entries, err := fs.ReadDir(FS(), "sql")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	names := map[string]bool{}
	for _, e := range entries {
		names[e.Name()] = true
	}
	for name := range names {
		if base, ok := strings.CutSuffix(name, ".up.sql"); ok {
			assert.True(t, names[base+".down.sql"], "missing down migration for %s", name)
		}
	}
}

func TestSchemaMentionsCascade(t *testing.T) {
	data, err := fs.ReadFile(FS(), "sql/000002_create_invoices.up.sql")
	require.NoError(t, err)
	assert.Contains(t, string(data), "ON DELETE CASCADE")
	assert.Contains(t, string(data), "DEFAULT CURRENT_DATE")
}
