package release

import (
	"context"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/go-github/github"
	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"github.com/arthur-debert/envpath/pkg/errors"
	"github.com/arthur-debert/envpath/pkg/logging"
)

// Defaults for Options
const (
	DefaultAPIURL   = "https://api.github.com/"
	DefaultTokenEnv = "GITHUB_TOKEN"
	DefaultTimeout  = 30 * time.Second
)

// Options configures a Client
type Options struct {
	// APIURL is the GitHub API root. Empty means api.github.com.
	APIURL string
	// Timeout bounds each request. Zero means DefaultTimeout.
	Timeout time.Duration
	// HTTPClient is the base transport. Nil means http.DefaultTransport.
	HTTPClient *http.Client
}

// Latest is the outcome of a lookup
type Latest struct {
	Repo          string `json:"repo" yaml:"repo"`
	LatestVersion string `json:"latest_version" yaml:"latest_version"`
}

// Client looks up the latest release of GitHub repositories
type Client struct {
	opts   Options
	base   *url.URL
	logger zerolog.Logger
}

// New creates a Client
func New(opts Options) (*Client, error) {
	if opts.APIURL == "" {
		opts.APIURL = DefaultAPIURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if !strings.HasSuffix(opts.APIURL, "/") {
		opts.APIURL += "/"
	}
	base, err := url.Parse(opts.APIURL)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid API URL %q", opts.APIURL)
	}
	return &Client{
		opts:   opts,
		base:   base,
		logger: logging.GetLogger("release"),
	}, nil
}

// Latest returns the trimmed tag name of the latest published release of
// repo ("owner/name"). A non-empty token authenticates the request.
func (c *Client) Latest(ctx context.Context, repo, token string) (string, error) {
	owner, name, err := ParseRepo(repo)
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	gh := github.NewClient(c.httpClient(ctx, token))
	gh.BaseURL = c.base

	c.logger.Debug().
		Str("repo", repo).
		Str("api", c.base.String()).
		Bool("authenticated", token != "").
		Msg("Fetching latest release")

	rel, resp, err := gh.Repositories.GetLatestRelease(ctx, owner, name)
	if err != nil {
		if isNotFound(resp, err) {
			return "", errors.Newf(errors.ErrReleaseNotFound, "repository '%s' releases not found", repo).
				WithDetail("repo", repo)
		}
		return "", errors.Wrap(err, errors.ErrReleaseFetch, "failed to fetch data from GitHub API").
			WithDetail("repo", repo)
	}

	tag := strings.TrimSpace(rel.GetTagName())
	if tag == "" {
		return "", errors.Newf(errors.ErrReleaseFetch, "failed to fetch data from GitHub API: release of '%s' has no tag name", repo).
			WithDetail("repo", repo)
	}

	c.logger.Info().Str("repo", repo).Str("tag", tag).Msg("Found latest release")
	return tag, nil
}

// httpClient returns the transport for one request, wrapped with a static
// token source when token is set
func (c *Client) httpClient(ctx context.Context, token string) *http.Client {
	base := c.opts.HTTPClient
	if base == nil {
		base = &http.Client{}
	}
	if token == "" {
		return base
	}
	ctx = context.WithValue(ctx, oauth2.HTTPClient, base)
	return oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
}

func isNotFound(resp *github.Response, err error) bool {
	if resp != nil && resp.StatusCode == http.StatusNotFound {
		return true
	}
	if errResp, ok := err.(*github.ErrorResponse); ok && errResp.Response != nil {
		return errResp.Response.StatusCode == http.StatusNotFound
	}
	return false
}

// ParseRepo splits "owner/name"
func ParseRepo(repo string) (owner, name string, err error) {
	owner, name, ok := strings.Cut(strings.TrimSpace(repo), "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", errors.Newf(errors.ErrInvalidInput, "invalid repository %q, expected owner/name", repo).
			WithDetail("repo", repo)
	}
	return owner, name, nil
}

// ResolveToken returns flagToken when set, otherwise the value of the
// environment variable tokenEnv
func ResolveToken(flagToken, tokenEnv string) string {
	if flagToken != "" {
		return flagToken
	}
	if tokenEnv == "" {
		return ""
	}
	return os.Getenv(tokenEnv)
}
