package version_test

import (
	"net/http"
	"testing"

	"github.com/lk16/fourway/internal/models"
	"github.com/lk16/fourway/internal/tests"
	"github.com/stretchr/testify/require"
)

func TestVersionEndpoint(t *testing.T) {
	app, _ := tests.NewTestApp(t)

	resp := tests.Do(t, app, http.MethodGet, "/version", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var version models.VersionResponse
	tests.Decode(t, resp, &version)
	require.NotEmpty(t, version.Commit)
}
