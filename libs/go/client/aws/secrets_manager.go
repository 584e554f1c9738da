package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"

	"github.com/asatex/kyuyokeisan-api/libs/go/interfaces"
	"github.com/asatex/kyuyokeisan-api/libs/go/logger"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"go.uber.org/zap"
)

// DatabaseCredentials is the RDS-managed secret layout.
type DatabaseCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Host     string `json:"host,omitempty"`
	Port     int    `json:"port,omitempty"`
	DBName   string `json:"dbname,omitempty"`
}

// SecretsManagerClient wraps the AWS Secrets Manager client.
type SecretsManagerClient struct {
	svc interfaces.SecretsManagerAPI
}

// NewSecretsManagerClient creates a client from the default AWS configuration chain
// (environment variables, shared config, IAM role).
func NewSecretsManagerClient(ctx context.Context) (*SecretsManagerClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}

	return NewSecretsManagerClientWithAPI(secretsmanager.NewFromConfig(cfg)), nil
}

// NewSecretsManagerClientWithAPI wraps an existing Secrets Manager API implementation.
func NewSecretsManagerClientWithAPI(svc interfaces.SecretsManagerAPI) *SecretsManagerClient {
	return &SecretsManagerClient{svc: svc}
}

// GetDatabaseCredentials reads the JSON secret named by the ARN held in secretArnEnvVar.
// When the variable is unset the credentials fall back to DB_USER and DB_PASSWORD.
func (c *SecretsManagerClient) GetDatabaseCredentials(ctx context.Context, secretArnEnvVar string) (*DatabaseCredentials, error) {
	secretArn := os.Getenv(secretArnEnvVar)
	if secretArn == "" {
		logger.Log.Debug("Secret ARN not set, using DB_USER/DB_PASSWORD", zap.String("arnEnvVar", secretArnEnvVar))
		creds := &DatabaseCredentials{
			Username: os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
		}
		if creds.Username == "" || creds.Password == "" {
			return nil, fmt.Errorf("database credentials not found: set %s or DB_USER and DB_PASSWORD", secretArnEnvVar)
		}
		return creds, nil
	}

	result, err := c.svc.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretArn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch secret %s: %w", secretArn, err)
	}
	if result.SecretString == nil || *result.SecretString == "" {
		return nil, fmt.Errorf("secret %s has no string value", secretArn)
	}

	var creds DatabaseCredentials
	if err := json.Unmarshal([]byte(*result.SecretString), &creds); err != nil {
		return nil, fmt.Errorf("failed to parse secret %s: %w", secretArn, err)
	}
	if creds.Username == "" || creds.Password == "" {
		return nil, fmt.Errorf("secret %s is missing username or password", secretArn)
	}

	logger.Log.Info("Fetched database credentials from Secrets Manager", zap.String("secretArn", secretArn))
	return &creds, nil
}

// DSN builds a PostgreSQL connection string. Host and database name from the
// secret win over the supplied defaults.
func (d DatabaseCredentials) DSN(host, dbName, sslMode string) string {
	if d.Host != "" {
		host = d.Host
		if d.Port != 0 {
			host = fmt.Sprintf("%s:%d", d.Host, d.Port)
		}
	}
	if d.DBName != "" {
		dbName = d.DBName
	}
	if sslMode == "" {
		sslMode = "require"
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.Username, d.Password),
		Host:     host,
		Path:     "/" + dbName,
		RawQuery: "sslmode=" + url.QueryEscape(sslMode),
	}
	return u.String()
}
