// Package googlecreds materializes the Google service-account credentials
// file from the deployment environment when it is absent on disk.
package googlecreds

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
)

// DefaultCredentialsPath is used when no explicit destination is configured.
const DefaultCredentialsPath = "google_credentials.json"

// Environment variables consulted when the credentials file does not exist.
const (
	EnvCredentialsJSON   = "GOOGLE_CREDENTIALS_JSON"
	EnvCredentialsBase64 = "GOOGLE_CREDENTIALS_BASE64"
)

// EnsureCredentialsFile ensures the service-account credentials file exists at
// path and returns its location. Resolution order:
//  1. an existing file at path (nothing to do)
//  2. GOOGLE_CREDENTIALS_JSON containing the raw JSON
//  3. GOOGLE_CREDENTIALS_BASE64 containing base64-encoded JSON
//
// The payload is validated as JSON before it is written. The call is
// idempotent; repeated invocations return the same path.
func EnsureCredentialsFile(path string) (string, error) {
	if path == "" {
		path = DefaultCredentialsPath
	}

	if _, err := os.Stat(path); err == nil {
		return path, nil
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to stat credentials file %s: %w", path, err)
	}

	raw := os.Getenv(EnvCredentialsJSON)
	if raw == "" {
		if payload := os.Getenv(EnvCredentialsBase64); payload != "" {
			decoded, err := base64.StdEncoding.DecodeString(payload)
			if err != nil {
				return "", fmt.Errorf("failed to decode %s: %w", EnvCredentialsBase64, err)
			}
			raw = string(decoded)
		}
	}

	if raw == "" {
		return "", fmt.Errorf(
			"credentials file %s not found: set %s or %s",
			path, EnvCredentialsJSON, EnvCredentialsBase64,
		)
	}

	if !json.Valid([]byte(raw)) {
		return "", fmt.Errorf("credentials payload is not valid JSON")
	}

	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		return "", fmt.Errorf("failed to write credentials file %s: %w", path, err)
	}

	return path, nil
}
