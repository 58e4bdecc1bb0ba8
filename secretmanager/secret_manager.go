package secretmanager

import (
	"context"
	"fmt"
	"strings"
	"sync"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"

	"github.com/doitintl/hello/agent-data-api/common"
)

const (
	latestVersion = "latest"
)

var (
	state = make(map[string][]byte)
	mutex = &sync.Mutex{}

	// accessFunc fetches a payload by resource name.
	accessFunc = access
)

// AccessSecretLatestVersion fetches the latest version of a secret payload. The
// secret may be a short name in the current project or a full resource name.
func AccessSecretLatestVersion(ctx context.Context, secret string) ([]byte, error) {
	return AccessSecretVersion(ctx, secret, latestVersion)
}

// AccessSecretVersion fetches the payload of a secret's version. Payloads are
// cached for the life of the process.
func AccessSecretVersion(ctx context.Context, secret, version string) ([]byte, error) {
	name := secretResourceName(common.ProjectID, secret, version)

	mutex.Lock()
	v, prs := state[name]
	mutex.Unlock()

	if prs {
		return v, nil
	}

	data, err := accessFunc(ctx, name)
	if err != nil {
		return nil, err
	}

	mutex.Lock()
	state[name] = data
	mutex.Unlock()

	return data, nil
}

func access(ctx context.Context, name string) ([]byte, error) {
	sm, err := secretmanager.NewClient(ctx)
	if err != nil {
		return nil, err
	}

	defer sm.Close()

	res, err := sm.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{
		Name: name,
	})
	if err != nil {
		return nil, err
	}

	return res.Payload.GetData(), nil
}

func secretResourceName(projectID, secret, version string) string {
	if strings.HasPrefix(secret, "projects/") {
		if strings.Contains(secret, "/versions/") {
			return secret
		}

		return fmt.Sprintf("%s/versions/%s", secret, version)
	}

	return fmt.Sprintf("projects/%s/secrets/%s/versions/%s", projectID, secret, version)
}
