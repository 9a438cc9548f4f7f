package cmd

import (
	"fmt"
	"strings"
)

func parseKeyValuePairs(items []string) (map[string]string, error) {
	result := make(map[string]string)
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed == "" {
			continue
		}
		key, value, err := splitKeyValue(trimmed)
		if err != nil {
			return nil, err
		}
		result[key] = value
	}
	return result, nil
}

func splitKeyValue(value string) (string, string, error) {
	key, val, ok := strings.Cut(value, "=")
	if !ok {
		return "", "", fmt.Errorf("invalid format %q (expected KEY=VALUE)", value)
	}
	key = strings.TrimSpace(key)
	if key == "" {
		return "", "", fmt.Errorf("invalid format %q (empty key)", value)
	}
	return key, strings.TrimSpace(val), nil
}
