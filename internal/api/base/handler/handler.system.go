package basehdl

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/zougmar/hassan-elec/internal/common"
)

// Pinger kiểm tra kết nối database
type Pinger interface {
	Ping(ctx context.Context) error
}

// SystemHandler xử lý các route hệ thống
type SystemHandler struct {
	db Pinger
}

// NewSystemHandler tạo một instance mới của SystemHandler. db có thể nil.
func NewSystemHandler(db Pinger) *SystemHandler {
	return &SystemHandler{db: db}
}

// HandleHealth trả payload tĩnh cho liveness check
func (h *SystemHandler) HandleHealth(c fiber.Ctx) error {
	return JSONResponse(c, common.StatusOK, fiber.Map{
		"status":  "OK",
		"message": "Server is running",
	})
}

// HandleReady kiểm tra thêm kết nối MongoDB
func (h *SystemHandler) HandleReady(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data := fiber.Map{
		"timestamp": time.Now().Format(time.RFC3339),
		"database":  "ok",
	}
	if h.db == nil {
		data["database"] = "not_initialized"
		return HandleResponseWithStatus(c, common.StatusServiceUnavailable, data, nil)
	}
	if err := h.db.Ping(ctx); err != nil {
		data["database"] = "error"
		return HandleErrorResponse(c, common.NewError(common.ErrCodeDatabaseConnection, "Service unavailable", common.StatusServiceUnavailable, data))
	}
	return HandleResponse(c, data, nil)
}
