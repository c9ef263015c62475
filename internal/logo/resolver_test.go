package logo

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockedResolver(t *testing.T) *Resolver {
	t.Helper()
	r := NewResolver(t.TempDir())
	httpmock.ActivateNonDefault(r.Client)
	t.Cleanup(httpmock.DeactivateAndReset)
	return r
}

func TestResolveLocalRefUnchanged(t *testing.T) {
	r := newMockedResolver(t)

	got, err := r.Resolve(context.Background(), "financelogo.png")
	require.NoError(t, err)
	assert.Equal(t, "financelogo.png", got)
	assert.Equal(t, 0, httpmock.GetTotalCallCount())
}

func TestResolveDownloads(t *testing.T) {
	r := newMockedResolver(t)
	httpmock.RegisterResponder("GET", "https://example.com/logo.png",
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "nagmaps/dev", req.Header.Get("User-Agent"))
			return httpmock.NewStringResponse(200, "PNGDATA"), nil
		})

	got, err := r.Resolve(context.Background(), "https://example.com/logo.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(r.ImageDir, "logo.png"), got)

	data, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Equal(t, "PNGDATA", string(data))
}

func TestResolveUsesExistingCopy(t *testing.T) {
	r := newMockedResolver(t)
	existing := filepath.Join(r.ImageDir, "logo.png")
	require.NoError(t, os.WriteFile(existing, []byte("cached"), 0644))

	got, err := r.Resolve(context.Background(), "https://example.com/logo.png")
	require.NoError(t, err)
	assert.Equal(t, existing, got)
	assert.Equal(t, 0, httpmock.GetTotalCallCount())
}

func TestResolveTransportError(t *testing.T) {
	r := newMockedResolver(t)
	httpmock.RegisterResponder("GET", "https://example.com/logo.png",
		httpmock.NewErrorResponder(errors.New("connection refused")))

	_, err := r.Resolve(context.Background(), "https://example.com/logo.png")
	require.Error(t, err)

	var logoErr *Error
	require.ErrorAs(t, err, &logoErr)
	assert.Equal(t, "https://example.com/logo.png", logoErr.Ref)
	assert.NoFileExists(t, filepath.Join(r.ImageDir, "logo.png"))
}

func TestResolveBadStatus(t *testing.T) {
	r := newMockedResolver(t)
	httpmock.RegisterResponder("GET", "https://example.com/missing.png",
		httpmock.NewStringResponder(404, "not found"))

	_, err := r.Resolve(context.Background(), "https://example.com/missing.png")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.NoFileExists(t, filepath.Join(r.ImageDir, "missing.png"))
}

func TestResolveNoFileName(t *testing.T) {
	r := newMockedResolver(t)

	_, err := r.Resolve(context.Background(), "https://example.com/")
	require.Error(t, err)
	assert.Equal(t, 0, httpmock.GetTotalCallCount())
}

func TestIsRemote(t *testing.T) {
	assert.True(t, IsRemote("https://example.com/logo.png"))
	assert.True(t, IsRemote("http://example.com/logo.png"))
	assert.False(t, IsRemote("logo.png"))
	assert.False(t, IsRemote("/usr/share/logo.png"))
}
