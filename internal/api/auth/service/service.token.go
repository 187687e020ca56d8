// Package authsvc chứa các service xác thực: phát hành/kiểm tra JWT, resolve principal, đăng nhập, profile.
package authsvc

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	authmodels "github.com/zougmar/hassan-elec/internal/api/auth/models"
	"github.com/zougmar/hassan-elec/internal/common"
)

// DefaultTokenTTL là thời hạn token khi JWT_EXPIRE trống
const DefaultTokenTTL = 7 * 24 * time.Hour

// TokenService ký và kiểm tra JWT HS256
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService tạo TokenService từ secret và chuỗi thời hạn (ví dụ "7d", "12h", "3600")
func NewTokenService(secret, expire string) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is empty")
	}
	ttl, err := ParseExpire(expire)
	if err != nil {
		return nil, err
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// TTL trả về thời hạn token
func (s *TokenService) TTL() time.Duration {
	return s.ttl
}

// ParseExpire đọc thời hạn dạng <n>w, <n>d, <n>h, <n>m, <n>s, số giây, hoặc duration của Go
func ParseExpire(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultTokenTTL, nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil && n > 0 {
		return time.Duration(n) * time.Second, nil
	}

	units := map[byte]time.Duration{
		'w': 7 * 24 * time.Hour,
		'd': 24 * time.Hour,
		'h': time.Hour,
		'm': time.Minute,
		's': time.Second,
	}
	if unit, ok := units[s[len(s)-1]]; ok {
		if n, err := strconv.ParseInt(s[:len(s)-1], 10, 64); err == nil && n > 0 {
			return time.Duration(n) * unit, nil
		}
	}
	if d, err := time.ParseDuration(s); err == nil && d > 0 {
		return d, nil
	}
	return 0, fmt.Errorf("invalid JWT_EXPIRE %q", s)
}

// Issue ký token cho principal id với loại kind
func (s *TokenService) Issue(id primitive.ObjectID, kind authmodels.Kind) (string, error) {
	now := s.now()
	claims := authmodels.Claims{
		ID:   id.Hex(),
		Type: string(kind),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify kiểm tra chữ ký và thời hạn. Mọi lỗi đều trả về common.ErrTokenInvalid.
func (s *TokenService) Verify(tokenString string) (*authmodels.Claims, error) {
	claims := &authmodels.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return nil, common.ErrTokenInvalid
	}
	if _, err := primitive.ObjectIDFromHex(claims.ID); err != nil {
		return nil, common.ErrTokenInvalid
	}
	return claims, nil
}
