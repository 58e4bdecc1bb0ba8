package connection

import (
	"context"
	"log"

	"cloud.google.com/go/storage"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/go-resty/resty/v2"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/sheets/v4"

	"github.com/doitintl/hello/agent-data-api/common"
	"github.com/doitintl/hello/agent-data-api/mailer"
)

// Connection holds the vendor clients of one service. Only the clients the
// service needs are set.
type Connection struct {
	GitHub *resty.Client
	Sheets *sheets.Service
	Drive  *drive.Service
	S3     s3iface.S3API
	GCS    *storage.Client
	Mailer mailer.Mailer
}

// Needs names the vendors a service talks to.
type Needs struct {
	GitHub        bool
	Workspace     bool
	ObjectStorage bool
	Mail          bool
}

// NewConnection builds the clients in needs from the environment. The GitHub
// client is only built when a token is configured and a Google Workspace
// failure leaves Sheets unset; the service decides whether either is fatal.
func NewConnection(ctx context.Context, needs Needs) (*Connection, error) {
	conn := &Connection{}

	if needs.GitHub {
		if cfg := common.LoadGitHubConfig(); cfg.Token != "" {
			conn.GitHub = NewGitHubClient(cfg)
		}
	}

	if needs.Workspace {
		sheetsService, driveService, err := NewGoogleWorkspace(ctx, common.LoadSheetsConfig())
		if err != nil {
			log.Printf("connection: google workspace unavailable: %s", err)
		} else {
			conn.Sheets = sheetsService
			conn.Drive = driveService
		}
	}

	if needs.ObjectStorage {
		cfg := common.LoadObjectStorageConfig()

		if cfg.Provider == common.ObjectStorageGCS {
			client, err := NewGCS(ctx)
			if err != nil {
				return nil, err
			}

			conn.GCS = client
		} else {
			client, err := NewS3(cfg)
			if err != nil {
				return nil, err
			}

			conn.S3 = client
		}
	}

	if needs.Mail {
		m, err := mailer.New(common.LoadMailConfig())
		if err != nil {
			return nil, err
		}

		conn.Mailer = m
	}

	return conn, nil
}

// Close releases the clients holding open connections.
func (c *Connection) Close() error {
	if c == nil || c.GCS == nil {
		return nil
	}

	return c.GCS.Close()
}
