// Package cloudinit handles the cloud-init user-data passed to instances
// at launch. OCI delivers user-data as a base64-encoded value in the
// instance metadata rather than a NoCloud ISO.
//
// See https://cloudinit.readthedocs.io/en/latest/explanation/format.html
package cloudinit

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// maxUserDataBytes is OCI's cap on the user_data metadata value after
// base64 encoding.
const maxUserDataBytes = 32 * 1024

// UserData represents a cloud-config document. It is marshaled to YAML
// and prefixed with the "#cloud-config" header.
type UserData struct {
	Hostname string     `yaml:"hostname,omitempty"`
	Packages []string   `yaml:"packages,omitempty"`
	RunCmd   []string   `yaml:"runcmd,omitempty"`
	Output   *OutputLog `yaml:"output,omitempty"`
}

// OutputLog configures cloud-init output logging.
type OutputLog struct {
	All string `yaml:"all"`
}

// Render marshals the cloud-config document with its required header.
func (u UserData) Render() ([]byte, error) {
	body, err := yaml.Marshal(u)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cloud-config: %w", err)
	}
	return append([]byte("#cloud-config\n"), body...), nil
}

// ReadFile reads a user-data file and checks it is something cloud-init
// will accept: a shell script or a cloud-config document.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read user-data file: %w", err)
	}
	if err := validate(data); err != nil {
		return nil, fmt.Errorf("user-data file %s: %w", path, err)
	}
	return data, nil
}

func validate(data []byte) error {
	if !bytes.HasPrefix(data, []byte("#!")) && !bytes.HasPrefix(data, []byte("#cloud-config")) {
		return fmt.Errorf("must start with #! (script) or #cloud-config")
	}
	if encodedLen := base64.StdEncoding.EncodedLen(len(data)); encodedLen > maxUserDataBytes {
		return fmt.Errorf("too large: %d bytes encoded, limit is %d", encodedLen, maxUserDataBytes)
	}
	return nil
}

// Encode base64-encodes user-data for the launch metadata.
func Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}
