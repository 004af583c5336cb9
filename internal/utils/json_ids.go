package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// StringOrNumber decodes a JSON id sent either as a string or as a number.
// null decodes to "".
func StringOrNumber(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return "", nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return "", fmt.Errorf("id must be a string or number: %w", err)
	}
	return n.String(), nil
}
