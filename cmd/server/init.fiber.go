package main

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/gofiber/fiber/v3/middleware/static"
	"github.com/google/uuid"

	"github.com/zougmar/hassan-elec/config"
	basehdl "github.com/zougmar/hassan-elec/internal/api/base/handler"
	"github.com/zougmar/hassan-elec/internal/api/middleware"
	apirouter "github.com/zougmar/hassan-elec/internal/api/router"
	"github.com/zougmar/hassan-elec/internal/common"
	"github.com/zougmar/hassan-elec/internal/logger"
)

// bodyLimit đủ cho 10 ảnh 5MB của một Project kèm các field text
const bodyLimit = 60 * 1024 * 1024

// InitFiberApp khởi tạo ứng dụng Fiber với các middleware cần thiết và đăng ký route
func InitFiberApp(cfg *config.Configuration, auth middleware.Middleware, regs []apirouter.RegisterFunc) (*fiber.App, error) {
	basehdl.SetExposeErrors(!cfg.IsProduction())

	app := fiber.New(fiber.Config{
		AppName:      "Hassan Elec API",
		ServerHeader: "Hassan Elec API",
		UnescapePath: true,

		BodyLimit:    bodyLimit,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,

		ErrorHandler: basehdl.ErrorHandler,
	})

	// 1. Request ID để trace log theo request
	app.Use(requestid.New(requestid.Config{
		Header:    fiber.HeaderXRequestID,
		Generator: uuid.NewString,
	}))

	// 2. CORS phải đứng trước các middleware khác để xử lý preflight
	app.Use(cors.New(corsConfig(cfg)))

	// 3. Security headers
	app.Use(func(c fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		return c.Next()
	})

	// 4. Rate limit theo IP
	log := logger.GetAppLogger()
	if cfg.RateLimit_Enabled && cfg.RateLimit_Max > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimit_Max,
			Expiration: time.Duration(cfg.RateLimit_Window) * time.Second,
			KeyGenerator: func(c fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c fiber.Ctx) error {
				return basehdl.JSONResponse(c, common.StatusTooManyRequests, fiber.Map{
					"code":    common.ErrCodeBusinessOperation.Code,
					"message": common.MsgTooManyRequests,
				})
			},
			Next: func(c fiber.Ctx) bool {
				return strings.HasPrefix(c.Path(), "/api/health") || c.Method() == fiber.MethodOptions
			},
		}))
		log.Infof("Rate limiting enabled: %d requests per %d seconds", cfg.RateLimit_Max, cfg.RateLimit_Window)
	} else {
		log.Info("Rate limiting disabled")
	}

	// 5. Recover: panic được log rồi chuyển cho ErrorHandler
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			logger.WithRequest(c).WithField("panic", e).Error("Panic recovered")
		},
	}))

	// Ảnh lưu local được phục vụ tại /uploads
	app.Use("/uploads", static.New(cfg.UploadDir))

	if err := apirouter.SetupRoutes(app, auth, regs...); err != nil {
		return nil, err
	}
	return app, nil
}

func corsConfig(cfg *config.Configuration) cors.Config {
	origins := []string{"*"}
	if strings.TrimSpace(cfg.CORS_Origins) != "*" {
		origins = origins[:0]
		for _, o := range strings.Split(cfg.CORS_Origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
	}
	wildcard := len(origins) == 1 && origins[0] == "*"

	return cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodDelete, fiber.MethodHead, fiber.MethodOptions},
		AllowHeaders: []string{
			fiber.HeaderOrigin,
			fiber.HeaderContentType,
			fiber.HeaderAccept,
			fiber.HeaderAuthorization,
			fiber.HeaderXRequestID,
			"X-Requested-With",
		},
		// cors của Fiber không cho credentials đi cùng origin "*"
		AllowCredentials: cfg.CORS_AllowCredentials && !wildcard,
		ExposeHeaders:    []string{fiber.HeaderContentLength, fiber.HeaderXRequestID},
		MaxAge:           24 * 60 * 60,
	}
}
