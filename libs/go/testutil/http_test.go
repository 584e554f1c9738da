package testutil

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPerformRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/echo", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetHeader("X-Test"))
	})

	w := PerformRequest(router, http.MethodGet, "/echo", map[string]string{"X-Test": "hello"})
	AssertStatusCode(t, w, http.StatusOK)
	assert.Equal(t, "hello", w.Body.String())

	srv := TestServer(t, router)
	status, body := Get(t, srv, "/echo")
	assert.Equal(t, http.StatusOK, status)
	assert.Empty(t, body)
}

func TestDefaultTablePath(t *testing.T) {
	_, err := os.Stat(filepath.Join(RepoRoot(t), "go.mod"))
	require.NoError(t, err)

	table := LoadDefaultTable(t)
	lower, upper := table.Coverage()
	assert.Equal(t, int64(0), lower)
	assert.Greater(t, upper, int64(10_000_000))
}
