package util

import (
	"fmt"

	"gopkg.in/yaml.v2"
)

// DecodeYaml decodes data into v. Keys that do not map to a field of v are
// rejected.
func DecodeYaml(data []byte, v interface{}) error {
	return yaml.UnmarshalStrict(data, v)
}

// YamlMappingKeys returns the keys of the mapping found under key in the
// top-level document, in document order. Keys that do not resolve to a
// string are rejected.
func YamlMappingKeys(data []byte, key string) ([]string, error) {
	var document yaml.MapSlice
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, err
	}

	for _, item := range document {
		if k, ok := item.Key.(string); !ok || k != key {
			continue
		}
		mapping, ok := item.Value.(yaml.MapSlice)
		if !ok {
			return nil, nil
		}
		keys := make([]string, 0, len(mapping))
		for _, entry := range mapping {
			k, ok := entry.Key.(string)
			if !ok {
				return nil, fmt.Errorf("%s: key %v is not a string, quote it", key, entry.Key)
			}
			keys = append(keys, k)
		}
		return keys, nil
	}
	return nil, nil
}
