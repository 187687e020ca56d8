package utility

import (
	"golang.org/x/crypto/bcrypt"
)

// PasswordCost là cost của bcrypt khi hash mật khẩu
const PasswordCost = 10

// HashPassword hash mật khẩu bằng bcrypt
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// CheckPassword so sánh mật khẩu với hash, hash rỗng luôn sai
func CheckPassword(hash, password string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
