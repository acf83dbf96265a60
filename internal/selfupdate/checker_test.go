package selfupdate

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChecker(t *testing.T, tag string, status int) *Checker {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		fmt.Fprintf(w, `{"tag_name":%q,"html_url":"https://example.com/release/%s"}`, tag, tag)
	}))
	t.Cleanup(srv.Close)
	return NewChecker(WithAPIBaseURL(srv.URL))
}

func TestCheckUpdateAvailable(t *testing.T) {
	c := newTestChecker(t, "v1.2.0", http.StatusOK)

	result, err := c.Check(context.Background(), &CheckInput{Version: "v1.1.0"})
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
	assert.Equal(t, "v1.2.0", result.LatestVersion)
}

func TestCheckAlreadyLatest(t *testing.T) {
	c := newTestChecker(t, "v1.1.0", http.StatusOK)

	result, err := c.Check(context.Background(), &CheckInput{Version: "v1.1.0"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheckNewerLocalVersion(t *testing.T) {
	c := newTestChecker(t, "v1.1.0", http.StatusOK)

	result, err := c.Check(context.Background(), &CheckInput{Version: "v2.0.0"})
	require.NoError(t, err)
	assert.False(t, result.UpdateAvailable)
}

func TestCheckVersionWithoutPrefix(t *testing.T) {
	c := newTestChecker(t, "v1.2.0", http.StatusOK)

	result, err := c.Check(context.Background(), &CheckInput{Version: "1.1.0"})
	require.NoError(t, err)
	assert.True(t, result.UpdateAvailable)
}

func TestCheckDevBuild(t *testing.T) {
	c := newTestChecker(t, "v1.2.0", http.StatusOK)

	_, err := c.Check(context.Background(), &CheckInput{Version: "(devel)"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDevBuild)
}

func TestCheckInvalidVersion(t *testing.T) {
	c := newTestChecker(t, "v1.2.0", http.StatusOK)

	_, err := c.Check(context.Background(), &CheckInput{Version: "not-a-version"})
	require.Error(t, err)
}

func TestCheckHTTPError(t *testing.T) {
	c := newTestChecker(t, "", http.StatusNotFound)

	_, err := c.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestCheckInvalidReleaseTag(t *testing.T) {
	c := newTestChecker(t, "nightly", http.StatusOK)

	_, err := c.Check(context.Background(), &CheckInput{Version: "v1.0.0"})
	require.Error(t, err)
}
