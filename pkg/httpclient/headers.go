package httpclient

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// MergeHeaders combines header maps into one; later maps win on key collisions.
func MergeHeaders(sets ...map[string]string) map[string]string {
	merged := make(map[string]string)
	for _, set := range sets {
		for key, value := range set {
			merged[key] = value
		}
	}
	return merged
}

// LoadHeaderFile reads a YAML file mapping header names to values.
func LoadHeaderFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read header file: %w", err)
	}

	headers := make(map[string]string)
	if err := yaml.Unmarshal(data, &headers); err != nil {
		return nil, fmt.Errorf("parse header file %s: %w", path, err)
	}
	return headers, nil
}
