package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/asatex/kyuyokeisan-api/libs/go/constants"
	"github.com/asatex/kyuyokeisan-api/libs/go/services"
	"github.com/stretchr/testify/require"
)

// RepoRoot walks up from the working directory to the directory holding go.mod
func RepoRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("go.mod not found above working directory")
		}
		dir = parent
	}
}

// DefaultTablePath is the absolute path of the rate table shipped with the repository
func DefaultTablePath(t *testing.T) string {
	t.Helper()
	return filepath.Join(RepoRoot(t), constants.DefaultBracketTablePath)
}

// LoadDefaultTable loads the shipped rate table, failing the test on error
func LoadDefaultTable(t *testing.T) *services.BracketTable {
	t.Helper()

	table, err := services.LoadBracketTable(DefaultTablePath(t))
	require.NoError(t, err)
	return table
}

// SetupTestEnvironment sets the environment the API reads at startup
func SetupTestEnvironment(t *testing.T) {
	t.Helper()

	t.Setenv("STAGE", "local")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("BRACKET_SOURCE", constants.BracketSourceFile)
	t.Setenv("BRACKET_TABLE_PATH", DefaultTablePath(t))
}
