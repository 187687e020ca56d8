package utility

import (
	"crypto/rand"
	"encoding/hex"
	"runtime/debug"

	"github.com/sirupsen/logrus"

	"github.com/zougmar/hassan-elec/internal/logger"
)

// GoProtect chạy f trong goroutine mới, panic bên trong được bắt lại và ghi log
// thay vì làm sập server.
func GoProtect(name string, f func()) {
	go func() {
		defer func() {
			if err := recover(); err != nil {
				logger.GetErrorLogger().WithFields(logrus.Fields{
					"task":  name,
					"panic": err,
					"stack": string(debug.Stack()),
				}).Error("Recovered panic in background task")
			}
		}()
		f()
	}()
}

// RandomHex trả về chuỗi hex từ n byte ngẫu nhiên (crypto/rand)
func RandomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
