package config_test

import (
	"os"
	"testing"

	"github.com/asatex/kyuyokeisan-api/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPremiumBracketsMatchesFile(t *testing.T) {
	data, err := os.ReadFile("premium_brackets.yaml")
	require.NoError(t, err)
	assert.Equal(t, data, config.PremiumBrackets)
}
