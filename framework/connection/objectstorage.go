package connection

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"cloud.google.com/go/storage"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/go-resty/resty/v2"
	"golang.org/x/oauth2"

	"github.com/doitintl/hello/agent-data-api/common"
	"github.com/doitintl/hello/agent-data-api/tabular"
)

const (
	ibmAPIKeyGrantType     = "urn:ibm:params:oauth:grant-type:apikey"
	ibmServiceInstanceHdr  = "ibm-service-instance-id"
	ibmTokenRefreshLeeway  = time.Minute
	defaultObjectStoreZone = "us-south"
)

// NewS3 returns an S3 compatible client for the configured endpoint. HMAC keys
// sign requests with SigV4; otherwise an IBM IAM bearer token obtained from the
// API key authorizes them.
func NewS3(cfg common.ObjectStorageConfig) (s3iface.S3API, error) {
	if missing := cfg.MissingVars(); len(missing) > 0 {
		return nil, tabular.Configuration(missing...)
	}

	region := cfg.Region
	if region == "" {
		region = defaultObjectStoreZone
	}

	awsConfig := &aws.Config{
		Endpoint:         aws.String(cfg.Endpoint),
		Region:           aws.String(region),
		S3ForcePathStyle: aws.Bool(true),
		HTTPClient:       &http.Client{Timeout: common.HTTPClientTimeout()},
	}

	hmac := cfg.HMACAccessKeyID != "" && cfg.HMACSecretKey != ""
	if hmac {
		awsConfig.Credentials = credentials.NewStaticCredentials(cfg.HMACAccessKeyID, cfg.HMACSecretKey, "")
	} else {
		awsConfig.Credentials = credentials.AnonymousCredentials
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, err
	}

	client := s3.New(sess)

	if !hmac {
		ts := oauth2.ReuseTokenSource(nil, NewIBMTokenSource(cfg.IAMURL, cfg.APIKey))
		client.Handlers.Sign.Clear()
		client.Handlers.Sign.PushBack(bearerSigner(ts, cfg.ServiceInstanceID))
	}

	return client, nil
}

// NewGCS returns a Cloud Storage client using application default credentials.
func NewGCS(ctx context.Context) (*storage.Client, error) {
	return storage.NewClient(ctx)
}

func bearerSigner(ts oauth2.TokenSource, instanceID string) func(*request.Request) {
	return func(r *request.Request) {
		tok, err := ts.Token()
		if err != nil {
			r.Error = err
			return
		}

		tok.SetAuthHeader(r.HTTPRequest)

		if instanceID != "" {
			r.HTTPRequest.Header.Set(ibmServiceInstanceHdr, instanceID)
		}
	}
}

type ibmTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// IBMTokenSource exchanges an IBM Cloud API key for IAM access tokens.
type IBMTokenSource struct {
	client *resty.Client
	url    string
	apiKey string
}

func NewIBMTokenSource(url, apiKey string) *IBMTokenSource {
	return &IBMTokenSource{
		client: resty.New().SetTimeout(common.HTTPClientTimeout()),
		url:    url,
		apiKey: apiKey,
	}
}

func (s *IBMTokenSource) Token() (*oauth2.Token, error) {
	var body ibmTokenResponse

	resp, err := s.client.R().
		SetHeader("Accept", "application/json").
		SetFormData(map[string]string{
			"grant_type": ibmAPIKeyGrantType,
			"apikey":     s.apiKey,
		}).
		SetResult(&body).
		Post(s.url)
	if err != nil {
		return nil, tabular.RemoteAccess(err, "IAM token request failed")
	}

	if resp.IsError() {
		return nil, tabular.RemoteAccess(fmt.Errorf("status %d", resp.StatusCode()), "IAM token request rejected")
	}

	if body.AccessToken == "" {
		return nil, tabular.RemoteAccess(errors.New("empty access token"), "IAM token request failed")
	}

	tokenType := body.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}

	return &oauth2.Token{
		AccessToken: body.AccessToken,
		TokenType:   tokenType,
		Expiry:      time.Now().Add(time.Duration(body.ExpiresIn)*time.Second - ibmTokenRefreshLeeway),
	}, nil
}
