package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims là dữ liệu được ký trong JWT: id và loại principal
type Claims struct {
	ID   string `json:"id"`
	Type string `json:"type,omitempty"`
	jwt.RegisteredClaims
}

// Kind trả về loại principal, token cũ không có type được hiểu là user
func (c *Claims) Kind() Kind {
	if c.Type == "" {
		return KindUser
	}
	return Kind(c.Type)
}
