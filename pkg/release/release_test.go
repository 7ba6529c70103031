// pkg/release/release_test.go
// TEST TYPE: Unit Tests
// DEPENDENCIES: httptest server standing in for the GitHub API
// PURPOSE: Test latest release lookup, error mapping and authentication

package release_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/arthur-debert/envpath/pkg/errors"
	"github.com/arthur-debert/envpath/pkg/release"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, handler http.HandlerFunc) *release.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	c, err := release.New(release.Options{APIURL: srv.URL})
	require.NoError(t, err)
	return c
}

func TestLatest(t *testing.T) {
	var gotPath, gotAuth string
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"tag_name": "  v1.2.3\n", "name": "Release 1.2.3"}`)
	})

	tag, err := c.Latest(context.Background(), "owner/repo", "")

	require.NoError(t, err)
	assert.Equal(t, "v1.2.3", tag)
	assert.Equal(t, "/repos/owner/repo/releases/latest", gotPath)
	assert.Empty(t, gotAuth)
}

func TestLatest_SendsToken(t *testing.T) {
	var gotAuth string
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		fmt.Fprint(w, `{"tag_name": "v2.0.0"}`)
	})

	tag, err := c.Latest(context.Background(), "owner/repo", "s3cret")

	require.NoError(t, err)
	assert.Equal(t, "v2.0.0", tag)
	assert.Equal(t, "Bearer s3cret", gotAuth)
}

func TestLatest_NotFound(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message": "Not Found"}`)
	})

	_, err := c.Latest(context.Background(), "owner/missing", "")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrReleaseNotFound))
	assert.Contains(t, err.Error(), "repository 'owner/missing' releases not found")
}

func TestLatest_ServerError(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.Latest(context.Background(), "owner/repo", "")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrReleaseFetch))
	assert.Contains(t, err.Error(), "failed to fetch data from GitHub API")
}

func TestLatest_BadPayload(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `not json`)
	})

	_, err := c.Latest(context.Background(), "owner/repo", "")

	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrReleaseFetch))
}

func TestLatest_InvalidRepo(t *testing.T) {
	c, err := release.New(release.Options{})
	require.NoError(t, err)

	for _, repo := range []string{"", "owner", "/repo", "owner/", "a/b/c"} {
		_, err := c.Latest(context.Background(), repo, "")
		require.Error(t, err, repo)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), repo)
	}
}

func TestResolveToken(t *testing.T) {
	t.Setenv("ENVPATH_TEST_TOKEN", "from-env")

	assert.Equal(t, "flag", release.ResolveToken("flag", "ENVPATH_TEST_TOKEN"))
	assert.Equal(t, "from-env", release.ResolveToken("", "ENVPATH_TEST_TOKEN"))
	assert.Equal(t, "", release.ResolveToken("", ""))
}
