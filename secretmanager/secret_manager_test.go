package secretmanager

import (
	"context"
	"errors"
	"testing"

	"github.com/zeebo/assert"
)

func TestSecretResourceName(t *testing.T) {
	assert.Equal(t, "projects/p1/secrets/sa/versions/latest", secretResourceName("p1", "sa", "latest"))
	assert.Equal(t, "projects/p2/secrets/sa/versions/3", secretResourceName("p1", "projects/p2/secrets/sa", "3"))
	assert.Equal(t, "projects/p2/secrets/sa/versions/1", secretResourceName("p1", "projects/p2/secrets/sa/versions/1", "latest"))
}

func TestAccessSecretVersionCaches(t *testing.T) {
	calls := 0

	accessFunc = func(ctx context.Context, name string) ([]byte, error) {
		calls++
		return []byte("payload:" + name), nil
	}
	defer func() { accessFunc = access }()

	first, err := AccessSecretVersion(context.Background(), "projects/p/secrets/cached", "1")
	assert.NoError(t, err)

	second, err := AccessSecretVersion(context.Background(), "projects/p/secrets/cached", "1")
	assert.NoError(t, err)

	assert.Equal(t, string(first), "payload:projects/p/secrets/cached/versions/1")
	assert.Equal(t, first, second)
	assert.Equal(t, calls, 1)
}

func TestAccessSecretVersionError(t *testing.T) {
	accessFunc = func(ctx context.Context, name string) ([]byte, error) {
		return nil, errors.New("denied")
	}
	defer func() { accessFunc = access }()

	_, err := AccessSecretVersion(context.Background(), "projects/p/secrets/missing", "1")
	assert.Error(t, err)

	mutex.Lock()
	_, cached := state["projects/p/secrets/missing/versions/1"]
	mutex.Unlock()

	assert.False(t, cached)
}
