package callback

import (
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallbackServerDeliversCode(t *testing.T) {
	t.Parallel()

	server, err := Start("127.0.0.1:0")
	require.NoError(t, err)
	defer func() { _ = server.Close() }()

	resp, err := http.Get(server.RedirectURI() + "?code=abc123")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Authentication complete")

	result, err := server.Wait(2 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, "abc123", result.Code)
	assert.Empty(t, result.ProviderError)
}

func TestCallbackServerDeliversProviderError(t *testing.T) {
	t.Parallel()

	server, err := Start("127.0.0.1:0")
	require.NoError(t, err)
	defer func() { _ = server.Close() }()

	resp, err := http.Get(server.RedirectURI() + "?error=access_denied&error_description=user+declined")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	result, err := server.Wait(2 * time.Second)
	require.NoError(t, err)
	assert.Empty(t, result.Code)
	assert.Equal(t, "access_denied: user declined", result.ProviderError)
}

func TestCallbackServerDeliversFirstResultOnDuplicateRedirect(t *testing.T) {
	t.Parallel()

	server, err := Start("127.0.0.1:0")
	require.NoError(t, err)
	defer func() { _ = server.Close() }()

	for range 2 {
		resp, err := http.Get(server.RedirectURI() + "?code=abc123")
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	}

	result, err := server.Wait(2 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, "abc123", result.Code)
}

func TestCallbackServerIgnoresRequestWithoutCode(t *testing.T) {
	t.Parallel()

	server, err := Start("127.0.0.1:0")
	require.NoError(t, err)
	defer func() { _ = server.Close() }()

	resp, err := http.Get(server.RedirectURI())
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Get(server.RedirectURI() + "?code=late-code")
	require.NoError(t, err)
	_ = resp.Body.Close()

	result, err := server.Wait(2 * time.Second)
	require.NoError(t, err)
	assert.Equal(t, "late-code", result.Code)
}

func TestCallbackServerWaitTimesOut(t *testing.T) {
	t.Parallel()

	server, err := Start("127.0.0.1:0")
	require.NoError(t, err)

	_, err = server.Wait(50 * time.Millisecond)
	assert.ErrorIs(t, err, ErrCallbackTimeout)
}
