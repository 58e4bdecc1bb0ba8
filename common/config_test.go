package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("AGENT_TEST_VALUE", "")
	assert.Equal(t, "fallback", GetEnv("AGENT_TEST_VALUE", "fallback"))

	t.Setenv("AGENT_TEST_VALUE", "set")
	assert.Equal(t, "set", GetEnv("AGENT_TEST_VALUE", "fallback"))
}

func TestTypedEnv(t *testing.T) {
	t.Setenv("AGENT_TEST_INT", "x")
	t.Setenv("AGENT_TEST_BOOL", "true")
	t.Setenv("AGENT_TEST_DURATION", "5s")
	t.Setenv("AGENT_TEST_LIST", " a, ,b ")

	assert.Equal(t, 7, GetEnvInt("AGENT_TEST_INT", 7))
	assert.True(t, GetEnvBool("AGENT_TEST_BOOL", false))
	assert.Equal(t, 5*time.Second, GetEnvDuration("AGENT_TEST_DURATION", time.Second))
	assert.Equal(t, []string{"a", "b"}, GetEnvList("AGENT_TEST_LIST", nil))
	assert.Equal(t, []string{"*"}, GetEnvList("AGENT_TEST_UNSET", []string{"*"}))
}

func TestGitHubConfig(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")
	t.Setenv("GITHUB_REPO", "")
	t.Setenv("GITHUB_BRANCH", "")
	t.Setenv("GITHUB_API_URL", "https://ghe.example.com/api/v3/")

	cfg := LoadGitHubConfig()

	assert.Equal(t, "main", cfg.Branch)
	assert.Equal(t, "https://ghe.example.com/api/v3", cfg.APIURL)
	assert.Equal(t, []string{"GITHUB_TOKEN", "GITHUB_REPO"}, cfg.MissingVars())

	t.Setenv("GITHUB_TOKEN", "tok")
	t.Setenv("GITHUB_REPO", "acme/data")
	assert.Empty(t, LoadGitHubConfig().MissingVars())
}

func TestObjectStorageConfig(t *testing.T) {
	t.Setenv("COS_BUCKET", "")
	t.Setenv("COS_API_KEY", "")
	t.Setenv("COS_HMAC_ACCESS_KEY_ID", "")
	t.Setenv("OBJECT_STORAGE_PROVIDER", "")

	cfg := LoadObjectStorageConfig()

	assert.Equal(t, ObjectStorageIBM, cfg.Provider)
	assert.Equal(t, "RegistrosEni.csv", cfg.Key)
	assert.Equal(t, []string{"COS_BUCKET", "COS_API_KEY"}, cfg.MissingVars())

	cfg.Provider = ObjectStorageGCS
	cfg.Bucket = "calls"
	assert.Empty(t, cfg.MissingVars())
}

func TestMailConfig(t *testing.T) {
	t.Setenv("SMTP_PORT", "")
	t.Setenv("EMAIL_SENDER", "")
	t.Setenv("SMTP_SERVER", "")
	t.Setenv("SENDGRID_API_KEY", "")

	cfg := LoadMailConfig()

	assert.Equal(t, 2525, cfg.SMTPPort)
	assert.Equal(t, "FastAPI Service", cfg.SenderName)
	assert.Equal(t, []string{"EMAIL_SENDER", "SMTP_SERVER"}, cfg.MissingVars())
}

func TestDataDir(t *testing.T) {
	t.Setenv("DATA_DIR", "")
	assert.Equal(t, ".", DataDir())

	t.Setenv("DATA_DIR", "/srv/data")
	assert.Equal(t, "/srv/data", DataDir())
}
