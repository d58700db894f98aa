package output

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ldraney/ocictl/internal/compute"
)

// YAMLFormatter formats reports as YAML.
type YAMLFormatter struct{}

// FormatInstance formats a single instance as YAML.
func (f *YAMLFormatter) FormatInstance(info *compute.InstanceInfo) (string, error) {
	return marshalYAML(info)
}

// FormatInstanceList formats a list of instances as a YAML sequence.
func (f *YAMLFormatter) FormatInstanceList(infos []compute.InstanceInfo) (string, error) {
	if len(infos) == 0 {
		return "", nil
	}
	return marshalYAML(infos)
}

// FormatNetworks formats the network report as a YAML sequence.
func (f *YAMLFormatter) FormatNetworks(networks []compute.NetworkInfo) (string, error) {
	if len(networks) == 0 {
		return "", nil
	}
	return marshalYAML(networks)
}

func marshalYAML(v any) (string, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal to YAML: %w", err)
	}
	return string(data), nil
}
