// Package config loads OCI credentials and target parameters from the
// process environment. Configuration is built once at process start and
// passed explicitly into every operation; nothing else in the tool reads
// the environment.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Environment variable names. All are required except OCI_REGION and
// OCI_COMPARTMENT_OCID.
const (
	EnvUserOCID        = "OCI_USER_OCID"
	EnvFingerprint     = "OCI_FINGERPRINT"
	EnvTenancyOCID     = "OCI_TENANCY_OCID"
	EnvKeyFile         = "OCI_KEY_FILE"
	EnvRegion          = "OCI_REGION"
	EnvCompartmentOCID = "OCI_COMPARTMENT_OCID"
)

// DefaultRegion is used when OCI_REGION is not set.
const DefaultRegion = "us-phoenix-1"

// Config holds the credentials and target parameters for one invocation.
// Immutable for the process lifetime.
type Config struct {
	UserOCID        string
	Fingerprint     string
	TenancyOCID     string
	KeyFile         string
	Region          string
	CompartmentOCID string // optional override; empty means use the tenancy
}

// MissingVarError reports a required environment variable that is unset
// or empty.
type MissingVarError struct {
	Name string
}

func (e *MissingVarError) Error() string {
	return fmt.Sprintf("required environment variable %s is not set", e.Name)
}

// KeyFileError reports an API key file that does not resolve to a
// readable file.
type KeyFileError struct {
	Path string
	Err  error
}

func (e *KeyFileError) Error() string {
	return fmt.Sprintf("API key file %s is not readable: %v", e.Path, e.Err)
}

func (e *KeyFileError) Unwrap() error { return e.Err }

// FromEnv builds a Config from the environment. A .env file in the working
// directory is loaded first if present (best effort). It fails with a
// MissingVarError or KeyFileError before any network call is possible.
func FromEnv() (Config, error) {
	// Ignore the error: a missing .env file is the normal case.
	_ = godotenv.Load()

	cfg := Config{
		UserOCID:        os.Getenv(EnvUserOCID),
		Fingerprint:     os.Getenv(EnvFingerprint),
		TenancyOCID:     os.Getenv(EnvTenancyOCID),
		KeyFile:         os.Getenv(EnvKeyFile),
		Region:          os.Getenv(EnvRegion),
		CompartmentOCID: os.Getenv(EnvCompartmentOCID),
	}

	for _, v := range []struct {
		name  string
		value string
	}{
		{EnvUserOCID, cfg.UserOCID},
		{EnvFingerprint, cfg.Fingerprint},
		{EnvTenancyOCID, cfg.TenancyOCID},
		{EnvKeyFile, cfg.KeyFile},
	} {
		if v.value == "" {
			return Config{}, &MissingVarError{Name: v.name}
		}
	}

	if cfg.Region == "" {
		cfg.Region = DefaultRegion
	}

	// Verify the key file up front so a bad path fails fast instead of
	// surfacing as an opaque auth error mid-operation.
	f, err := os.Open(cfg.KeyFile)
	if err != nil {
		return Config{}, &KeyFileError{Path: cfg.KeyFile, Err: err}
	}
	_ = f.Close()

	return cfg, nil
}

// CompartmentID returns the compartment to operate in. Without an explicit
// OCI_COMPARTMENT_OCID the tenancy root is used, matching single-tenancy
// setups where no child compartments exist.
func (c Config) CompartmentID() string {
	if c.CompartmentOCID != "" {
		return c.CompartmentOCID
	}
	return c.TenancyOCID
}
