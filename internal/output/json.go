package output

import (
	"encoding/json"
	"fmt"

	"github.com/ldraney/ocictl/internal/compute"
)

// JSONFormatter formats reports as JSON.
type JSONFormatter struct{}

// FormatInstance formats a single instance as JSON.
func (f *JSONFormatter) FormatInstance(info *compute.InstanceInfo) (string, error) {
	return marshalJSON(info)
}

// FormatInstanceList formats a list of instances as a JSON array.
func (f *JSONFormatter) FormatInstanceList(infos []compute.InstanceInfo) (string, error) {
	if len(infos) == 0 {
		return "[]\n", nil
	}
	return marshalJSON(infos)
}

// FormatNetworks formats the network report as a JSON array.
func (f *JSONFormatter) FormatNetworks(networks []compute.NetworkInfo) (string, error) {
	if len(networks) == 0 {
		return "[]\n", nil
	}
	return marshalJSON(networks)
}

func marshalJSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal to JSON: %w", err)
	}
	return string(data) + "\n", nil
}
