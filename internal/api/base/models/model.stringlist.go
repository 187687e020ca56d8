package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// StringList nhận mảng JSON, chuỗi chứa mảng JSON, hoặc một chuỗi đơn
type StringList []string

// UnmarshalJSON implement json.Unmarshaler
func (s *StringList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*s = nil
		return nil
	}
	if len(data) > 0 && data[0] == '[' {
		var arr []string
		if err := json.Unmarshal(data, &arr); err != nil {
			return err
		}
		*s = arr
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	single = strings.TrimSpace(single)
	if single == "" {
		*s = nil
		return nil
	}
	if strings.HasPrefix(single, "[") {
		var arr []string
		if err := json.Unmarshal([]byte(single), &arr); err != nil {
			return err
		}
		*s = arr
		return nil
	}
	*s = StringList{single}
	return nil
}
