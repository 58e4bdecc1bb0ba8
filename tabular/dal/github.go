package dal

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/doitintl/hello/agent-data-api/metrics"
	"github.com/doitintl/hello/agent-data-api/tabular"
)

const backendGitHub = "github"

type githubContent struct {
	SHA      string `json:"sha"`
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
	Size     int64  `json:"size"`
}

type githubBlob struct {
	SHA      string `json:"sha"`
	Content  string `json:"content"`
	Encoding string `json:"encoding"`
}

type githubUpdateRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	SHA     string `json:"sha,omitempty"`
	Branch  string `json:"branch"`
}

type githubUpdateResponse struct {
	Commit struct {
		SHA string `json:"sha"`
	} `json:"commit"`
}

type githubError struct {
	Message string `json:"message"`
}

// GitHub stores CSV datasets as files of a repository branch through the
// contents API. Dataset names are paths inside the repository.
type GitHub struct {
	client *resty.Client
	repo   string
	branch string
	opts   tabular.CSVOptions
}

// NewGitHub returns a store over repo at branch. The client must carry the base
// URL and credentials of the API.
func NewGitHub(client *resty.Client, repo, branch string, opts tabular.CSVOptions) *GitHub {
	return &GitHub{
		client: client,
		repo:   repo,
		branch: branch,
		opts:   opts,
	}
}

func (d *GitHub) contentsPath(path string) string {
	return fmt.Sprintf("/repos/%s/contents/%s", d.repo, strings.TrimPrefix(path, "/"))
}

func (d *GitHub) Load(ctx context.Context, path string) (t *tabular.Table, err error) {
	defer func() { metrics.ObserveDataset(backendGitHub, "load", err) }()

	content, err := d.content(ctx, path)
	if err != nil {
		return nil, err
	}

	data, err := d.decode(ctx, path, content)
	if err != nil {
		return nil, err
	}

	return tabular.ParseCSV(data, d.opts)
}

// Save commits the full table to path. The current sha is fetched right before
// the update so that a concurrent commit surfaces as a write conflict. The file
// must already exist.
func (d *GitHub) Save(ctx context.Context, path string, table *tabular.Table, message string) (res *tabular.WriteResult, err error) {
	defer func() { metrics.ObserveDataset(backendGitHub, "save", err) }()

	data, err := tabular.EncodeCSV(table)
	if err != nil {
		return nil, err
	}

	current, err := d.content(ctx, path)
	if err != nil {
		return nil, tabular.RemoteAccess(err, "could not retrieve file sha for %s", path)
	}

	var out githubUpdateResponse

	var apiErr githubError

	resp, err := d.client.R().
		SetContext(ctx).
		SetBody(githubUpdateRequest{
			Message: message,
			Content: base64.StdEncoding.EncodeToString(data),
			SHA:     current.SHA,
			Branch:  d.branch,
		}).
		SetResult(&out).
		SetError(&apiErr).
		Put(d.contentsPath(path))
	if err != nil {
		return nil, tabular.RemoteAccess(err, "could not save %s", path)
	}

	if resp.IsError() {
		return nil, d.statusError(resp, apiErr, "save", path)
	}

	return &tabular.WriteResult{Revision: out.Commit.SHA, Message: message}, nil
}

func (d *GitHub) content(ctx context.Context, path string) (*githubContent, error) {
	var (
		out    githubContent
		apiErr githubError
	)

	resp, err := d.client.R().
		SetContext(ctx).
		SetQueryParam("ref", d.branch).
		SetResult(&out).
		SetError(&apiErr).
		Get(d.contentsPath(path))
	if err != nil {
		return nil, tabular.RemoteAccess(err, "could not load %s", path)
	}

	if resp.IsError() {
		return nil, d.statusError(resp, apiErr, "load", path)
	}

	return &out, nil
}

// decode returns the file bytes, reading the blob when the contents API omits
// the inline content of large files.
func (d *GitHub) decode(ctx context.Context, path string, c *githubContent) ([]byte, error) {
	if c.Content != "" || c.Size == 0 {
		return decodeBase64(c.Content, path)
	}

	var (
		blob   githubBlob
		apiErr githubError
	)

	resp, err := d.client.R().
		SetContext(ctx).
		SetResult(&blob).
		SetError(&apiErr).
		Get(fmt.Sprintf("/repos/%s/git/blobs/%s", d.repo, c.SHA))
	if err != nil {
		return nil, tabular.RemoteAccess(err, "could not load %s", path)
	}

	if resp.IsError() {
		return nil, d.statusError(resp, apiErr, "load", path)
	}

	return decodeBase64(blob.Content, path)
}

func decodeBase64(content, path string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(strings.NewReplacer("\n", "", "\r", "").Replace(content))
	if err != nil {
		return nil, tabular.RemoteAccess(err, "could not decode %s", path)
	}

	return data, nil
}

func (d *GitHub) statusError(resp *resty.Response, apiErr githubError, op, path string) error {
	cause := fmt.Errorf("github responded %d: %s", resp.StatusCode(), apiErr.Message)

	switch resp.StatusCode() {
	case http.StatusNotFound:
		return tabular.NotFound("%s not found in %s@%s", path, d.repo, d.branch)
	case http.StatusConflict, http.StatusUnprocessableEntity:
		if op == "save" {
			return tabular.WriteConflict(cause, "%s changed while saving", path)
		}
	}

	return tabular.RemoteAccess(cause, "could not %s %s", op, path)
}
