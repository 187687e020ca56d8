package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// LocalizedText là text theo từng ngôn ngữ hỗ trợ (en, fr, ar)
type LocalizedText struct {
	En string `json:"en" bson:"en"`
	Fr string `json:"fr" bson:"fr"`
	Ar string `json:"ar" bson:"ar"`
}

// ErrMalformedLocalized được trả khi chuỗi JSON của text đa ngôn ngữ không parse được
var ErrMalformedLocalized = fmt.Errorf("malformed localized text")

// IsEmpty trả về true khi cả ba ngôn ngữ đều trống
func (l LocalizedText) IsEmpty() bool {
	return strings.TrimSpace(l.En) == "" && strings.TrimSpace(l.Fr) == "" && strings.TrimSpace(l.Ar) == ""
}

// Text trả về bản tiếng Anh, nếu trống thì lấy ngôn ngữ đầu tiên có giá trị
func (l LocalizedText) Text() string {
	for _, s := range []string{l.En, l.Fr, l.Ar} {
		if s != "" {
			return s
		}
	}
	return ""
}

// ParseLocalized đọc text đa ngôn ngữ từ một chuỗi.
// Chuỗi bắt đầu bằng "{" phải là JSON object hợp lệ, các chuỗi khác được lưu vào En.
func ParseLocalized(s string) (LocalizedText, error) {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "{") {
		return LocalizedText{En: s}, nil
	}
	var out localizedAlias
	if err := json.Unmarshal([]byte(trimmed), &out); err != nil {
		return LocalizedText{}, fmt.Errorf("%w: %v", ErrMalformedLocalized, err)
	}
	return LocalizedText(out), nil
}

type localizedAlias LocalizedText

// UnmarshalJSON nhận object {en,fr,ar}, chuỗi thường hoặc chuỗi JSON của object
func (l *LocalizedText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*l = LocalizedText{}
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := ParseLocalized(s)
		if err != nil {
			return err
		}
		*l = parsed
		return nil
	}
	var out localizedAlias
	if err := json.Unmarshal(data, &out); err != nil {
		return err
	}
	*l = LocalizedText(out)
	return nil
}

// UnmarshalBSONValue đọc được cả document {en,fr,ar} lẫn dữ liệu cũ lưu dạng string
func (l *LocalizedText) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bsontype.String:
		s, _ := raw.StringValueOK()
		*l = LocalizedText{En: s}
		return nil
	case bsontype.Null, bsontype.Undefined:
		*l = LocalizedText{}
		return nil
	case bsontype.EmbeddedDocument:
		var out localizedAlias
		if err := raw.Unmarshal(&out); err != nil {
			return err
		}
		*l = LocalizedText(out)
		return nil
	}
	return fmt.Errorf("cannot decode %s into LocalizedText", t)
}
