package testutil

import (
	"io"
	"net/http"
	"testing"

	"github.com/dom/gameshelf/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertStatusCode verifies the HTTP response status code
func AssertStatusCode(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	assert.Equal(t, expected, resp.StatusCode, "unexpected status code")
}

// AssertRedirect verifies a 303 See Other pointing at location
func AssertRedirect(t *testing.T, resp *http.Response, location string) {
	t.Helper()
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode, "unexpected status code")
	assert.Equal(t, location, resp.Header.Get("Location"), "unexpected redirect target")
}

// ReadBody returns the response body as a string
func ReadBody(t *testing.T, resp *http.Response) string {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")
	return string(body)
}

// AssertBodyContains verifies the response body contains every fragment
func AssertBodyContains(t *testing.T, resp *http.Response, fragments ...string) {
	t.Helper()

	body := ReadBody(t, resp)
	for _, f := range fragments {
		assert.Contains(t, body, f, "body mismatch")
	}
}

// AssertCountUsers verifies how many users exist with username
func AssertCountUsers(t *testing.T, ts *TestServer, username string, expected int64) {
	t.Helper()

	assert.Equal(t, expected, ts.DB.CountUsers(t, username), "unexpected number of users named %q", username)
}

// CountUsers returns how many users are stored under username
func (tdb *TestDB) CountUsers(t *testing.T, username string) int64 {
	t.Helper()

	var count int64
	err := tdb.DB.Model(&domain.User{}).Where("username = ?", username).Count(&count).Error
	require.NoError(t, err)
	return count
}
