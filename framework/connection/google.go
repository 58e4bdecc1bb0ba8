package connection

import (
	"context"
	"errors"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/doitintl/hello/agent-data-api/common"
	"github.com/doitintl/hello/agent-data-api/secretmanager"
	"github.com/doitintl/hello/agent-data-api/tabular"
)

// GoogleCredentials returns the service account key from the environment, or
// from Secret Manager when only a secret name is configured.
func GoogleCredentials(ctx context.Context, cfg common.SheetsConfig) ([]byte, error) {
	if cfg.CredentialsJSON != "" {
		return []byte(cfg.CredentialsJSON), nil
	}

	if cfg.CredentialsSecret == "" {
		return nil, tabular.Configuration(cfg.MissingVars()...)
	}

	data, err := secretmanager.AccessSecretLatestVersion(ctx, cfg.CredentialsSecret)
	if err != nil {
		return nil, tabular.RemoteAccess(err, "could not read secret %s", cfg.CredentialsSecret)
	}

	if len(data) == 0 {
		return nil, tabular.RemoteAccess(errors.New("empty payload"), "could not read secret %s", cfg.CredentialsSecret)
	}

	return data, nil
}

// NewGoogleWorkspace returns Sheets and Drive services authorized as the
// configured service account.
func NewGoogleWorkspace(ctx context.Context, cfg common.SheetsConfig) (*sheets.Service, *drive.Service, error) {
	data, err := GoogleCredentials(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	serviceConfig, err := google.JWTConfigFromJSON(data, sheets.SpreadsheetsScope, drive.DriveReadonlyScope)
	if err != nil {
		return nil, nil, tabular.RemoteAccess(err, "invalid service account credentials")
	}

	clientOpt := option.WithHTTPClient(serviceConfig.Client(ctx))

	sheetsService, err := sheets.NewService(ctx, clientOpt)
	if err != nil {
		return nil, nil, err
	}

	driveService, err := drive.NewService(ctx, clientOpt)
	if err != nil {
		return nil, nil, err
	}

	return sheetsService, driveService, nil
}
