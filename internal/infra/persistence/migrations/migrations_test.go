package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_ContainsVersionedMigrations(t *testing.T) {
	files, err := fs.Glob(FS, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, name := range files {
		content, err := fs.ReadFile(FS, name)
		require.NoError(t, err)
		assert.Contains(t, string(content), "-- +goose Up", name)
		assert.Contains(t, string(content), "-- +goose Down", name)
	}
}

func TestInitMigration_EnforcesVerificationInvariants(t *testing.T) {
	content, err := fs.ReadFile(FS, "00001_init.sql")
	require.NoError(t, err)

	schema := string(content)
	assert.Contains(t, schema, "users_token_pair")
	assert.Contains(t, schema, "users_verified_no_token")
	assert.Equal(t, 2, strings.Count(schema, "ON DELETE CASCADE"))
}
