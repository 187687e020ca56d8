// Package middleware chứa middleware xác thực bearer token và gate phân quyền theo principal.
package middleware

import (
	"github.com/gofiber/fiber/v3"
)

// Middleware bọc một handler và trả về handler mới
type Middleware func(next fiber.Handler) fiber.Handler

// Chain ghép các middleware quanh handler. Middleware đầu tiên chạy trước.
func Chain(handler fiber.Handler, middlewares ...Middleware) fiber.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return handler
}
