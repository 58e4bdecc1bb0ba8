package connection

import (
	"github.com/go-resty/resty/v2"

	"github.com/doitintl/hello/agent-data-api/common"
)

const githubAPIVersion = "2022-11-28"

// NewGitHubClient returns a REST client for the GitHub API authenticated with
// the configured token.
func NewGitHubClient(cfg common.GitHubConfig) *resty.Client {
	return resty.New().
		SetBaseURL(cfg.APIURL).
		SetAuthToken(cfg.Token).
		SetTimeout(common.HTTPClientTimeout()).
		SetHeader("Accept", "application/vnd.github+json").
		SetHeader("X-GitHub-Api-Version", githubAPIVersion)
}
