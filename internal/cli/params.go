package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// parseParams merges parameters from a JSON file and key=value flag pairs
// into a single map. Flag pairs override file entries on key collision.
//
// Flag values are decoded as JSON when possible (numbers, booleans, nested
// objects), falling back to the literal string otherwise, so
// `--param amount=50` yields a number and `--param customer=acme` a string.
func parseParams(paramsFile string, pairs []string) (map[string]any, error) {
	params := map[string]any{}

	if paramsFile != "" {
		data, err := os.ReadFile(paramsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read params file: %w", err)
		}
		if err := json.Unmarshal(data, &params); err != nil {
			return nil, fmt.Errorf("failed to parse params file: %w", err)
		}
	}

	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid --param %q: expected key=value", pair)
		}
		params[key] = decodeParamValue(value)
	}

	return params, nil
}

func decodeParamValue(value string) any {
	var decoded any
	if err := json.Unmarshal([]byte(value), &decoded); err == nil {
		return decoded
	}
	return value
}
