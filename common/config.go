package common

import "strings"

const (
	defaultGitHubAPIURL  = "https://api.github.com"
	defaultGitHubBranch  = "main"
	defaultCOSEndpoint   = "https://s3.us-south.cloud-object-storage.appdomain.cloud"
	defaultIBMIAMURL     = "https://iam.cloud.ibm.com/identity/token"
	defaultSMTPPort      = 2525
	defaultSheetName     = "Datos_Usuarios_IA"
	defaultMailFromName  = "FastAPI Service"
	defaultDataDirectory = "."
	defaultSendGridHost  = "https://api.sendgrid.com"
)

// Object storage providers.
const (
	ObjectStorageIBM = "ibm"
	ObjectStorageS3  = "s3"
	ObjectStorageGCS = "gcs"
)

// GitHubConfig describes the repository whose file contents back a dataset.
type GitHubConfig struct {
	Token  string
	Repo   string
	Branch string
	APIURL string
}

func LoadGitHubConfig() GitHubConfig {
	return GitHubConfig{
		Token:  GetEnv("GITHUB_TOKEN", ""),
		Repo:   GetEnv("GITHUB_REPO", ""),
		Branch: GetEnv("GITHUB_BRANCH", defaultGitHubBranch),
		APIURL: strings.TrimSuffix(GetEnv("GITHUB_API_URL", defaultGitHubAPIURL), "/"),
	}
}

func (c GitHubConfig) MissingVars() []string {
	var missing []string

	if c.Token == "" {
		missing = append(missing, "GITHUB_TOKEN")
	}

	if c.Repo == "" {
		missing = append(missing, "GITHUB_REPO")
	}

	return missing
}

// SheetsConfig describes the spreadsheet and the service account used to open it.
type SheetsConfig struct {
	// CredentialsJSON is the whole service account key as a JSON blob.
	CredentialsJSON string
	// CredentialsSecret names a Secret Manager secret holding the key, used when
	// CredentialsJSON is empty.
	CredentialsSecret string
	SpreadsheetName   string
	SpreadsheetID     string
}

func LoadSheetsConfig() SheetsConfig {
	return SheetsConfig{
		CredentialsJSON:   GetEnv("GCP_SERVICE_ACCOUNT_JSON", ""),
		CredentialsSecret: GetEnv("GCP_SERVICE_ACCOUNT_SECRET", ""),
		SpreadsheetName:   GetEnv("SHEET_NAME", defaultSheetName),
		SpreadsheetID:     GetEnv("SPREADSHEET_ID", ""),
	}
}

func (c SheetsConfig) MissingVars() []string {
	if c.CredentialsJSON == "" && (c.CredentialsSecret == "" || ProjectID == "") {
		return []string{"GCP_SERVICE_ACCOUNT_JSON"}
	}

	return nil
}

// ObjectStorageConfig describes the bucket and object holding a read only dataset.
type ObjectStorageConfig struct {
	Provider          string
	APIKey            string
	ServiceInstanceID string
	Endpoint          string
	Region            string
	IAMURL            string
	HMACAccessKeyID   string
	HMACSecretKey     string
	Bucket            string
	Key               string
}

func LoadObjectStorageConfig() ObjectStorageConfig {
	return ObjectStorageConfig{
		Provider:          GetEnv("OBJECT_STORAGE_PROVIDER", ObjectStorageIBM),
		APIKey:            GetEnv("COS_API_KEY", ""),
		ServiceInstanceID: GetEnv("COS_SERVICE_CRN", ""),
		Endpoint:          GetEnv("COS_ENDPOINT", defaultCOSEndpoint),
		Region:            GetEnv("COS_REGION", "us-south"),
		IAMURL:            GetEnv("COS_IAM_URL", defaultIBMIAMURL),
		HMACAccessKeyID:   GetEnv("COS_HMAC_ACCESS_KEY_ID", ""),
		HMACSecretKey:     GetEnv("COS_HMAC_SECRET_ACCESS_KEY", ""),
		Bucket:            GetEnv("COS_BUCKET", ""),
		Key:               GetEnv("COS_CSV_KEY", "RegistrosEni.csv"),
	}
}

func (c ObjectStorageConfig) MissingVars() []string {
	var missing []string

	if c.Bucket == "" {
		missing = append(missing, "COS_BUCKET")
	}

	switch c.Provider {
	case ObjectStorageGCS:
	case ObjectStorageS3:
		if c.HMACAccessKeyID == "" || c.HMACSecretKey == "" {
			missing = append(missing, "COS_HMAC_ACCESS_KEY_ID", "COS_HMAC_SECRET_ACCESS_KEY")
		}
	default:
		if c.APIKey == "" && c.HMACAccessKeyID == "" {
			missing = append(missing, "COS_API_KEY")
		}

		if c.APIKey != "" && c.ServiceInstanceID == "" {
			missing = append(missing, "COS_SERVICE_CRN")
		}
	}

	return missing
}

// MailConfig describes the outbound mail relay.
type MailConfig struct {
	SMTPServer     string
	SMTPPort       int
	Username       string
	Password       string
	Sender         string
	SenderName     string
	SendGridAPIKey string
	SendGridHost   string
}

func LoadMailConfig() MailConfig {
	return MailConfig{
		SMTPServer:     GetEnv("SMTP_SERVER", ""),
		SMTPPort:       GetEnvInt("SMTP_PORT", defaultSMTPPort),
		Username:       GetEnv("USERNAME", ""),
		Password:       GetEnv("EMAIL_PASSWORD", ""),
		Sender:         GetEnv("EMAIL_SENDER", ""),
		SenderName:     GetEnv("EMAIL_SENDER_NAME", defaultMailFromName),
		SendGridAPIKey: GetEnv("SENDGRID_API_KEY", ""),
		SendGridHost:   GetEnv("SENDGRID_HOST", defaultSendGridHost),
	}
}

func (c MailConfig) MissingVars() []string {
	var missing []string

	if c.Sender == "" {
		missing = append(missing, "EMAIL_SENDER")
	}

	if c.SendGridAPIKey == "" && c.SMTPServer == "" {
		missing = append(missing, "SMTP_SERVER")
	}

	return missing
}

// DataDir is the directory holding the local CSV and Excel files of a service.
func DataDir() string {
	return GetEnv("DATA_DIR", defaultDataDirectory)
}
