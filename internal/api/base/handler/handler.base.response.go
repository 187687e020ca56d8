// Package basehdl chứa các tiện ích dùng chung cho handler: response chuẩn, parse body, validate.
package basehdl

import (
	"errors"
	"fmt"
	"runtime/debug"
	"sync/atomic"

	"github.com/gofiber/fiber/v3"

	"github.com/zougmar/hassan-elec/internal/common"
	"github.com/zougmar/hassan-elec/internal/logger"
)

// exposeErrors bật khi không chạy production: lỗi 5xx kèm nội dung lỗi gốc trong details
var exposeErrors atomic.Bool

// SetExposeErrors cấu hình việc trả chi tiết lỗi nội bộ cho client
func SetExposeErrors(expose bool) {
	exposeErrors.Store(expose)
}

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// HandleErrorResponse chuẩn hóa error response: {code, message, details}
func HandleErrorResponse(c fiber.Ctx, err error) error {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		if customErr.StatusCode >= common.StatusInternalServerError {
			logger.WithRequest(c).WithError(err).Error("Request failed")
		}
		body := fiber.Map{
			"code":    customErr.Code.Code,
			"message": customErr.Message,
		}
		if customErr.Details != nil && (customErr.StatusCode < common.StatusInternalServerError || exposeErrors.Load()) {
			body["details"] = customErr.Details
		}
		return JSONResponse(c, customErr.StatusCode, body)
	}

	logger.WithRequest(c).WithError(err).Error("Unhandled error")
	body := fiber.Map{
		"code":    common.ErrCodeInternalServer.Code,
		"message": common.MsgInternalError,
	}
	if exposeErrors.Load() {
		body["details"] = err.Error()
	}
	return JSONResponse(c, common.StatusInternalServerError, body)
}

// HandleResponse trả về data với status 200 hoặc error response
func HandleResponse(c fiber.Ctx, data interface{}, err error) error {
	return HandleResponseWithStatus(c, common.StatusOK, data, err)
}

// HandleCreated trả về data với status 201
func HandleCreated(c fiber.Ctx, data interface{}, err error) error {
	return HandleResponseWithStatus(c, common.StatusCreated, data, err)
}

// HandleResponseWithStatus trả data nguyên dạng (object hoặc mảng) với status chỉ định
func HandleResponseWithStatus(c fiber.Ctx, status int, data interface{}, err error) error {
	if err != nil {
		return HandleErrorResponse(c, err)
	}
	return JSONResponse(c, status, data)
}

// HandleMessage trả {message} với status 200, dùng cho các thao tác không có data (ví dụ xóa)
func HandleMessage(c fiber.Ctx, message string, err error) error {
	return HandleResponseWithStatus(c, common.StatusOK, fiber.Map{"message": message}, err)
}

// SafeHandler bọc handler với recover để luôn trả về response cho client khi có panic
func SafeHandler(c fiber.Ctx, handler func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.WithRequest(c).WithField("stack", string(debug.Stack())).Errorf("Panic in handler: %v", r)
			err = HandleErrorResponse(c, common.NewError(
				common.ErrCodeInternalServer,
				common.MsgInternalError,
				common.StatusInternalServerError,
				fmt.Sprintf("%v", r),
			))
		}
	}()
	return handler()
}

// ErrorHandler là fiber ErrorHandler của app: lỗi fiber giữ status, lỗi khác qua HandleErrorResponse
func ErrorHandler(c fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return JSONResponse(c, fiberErr.Code, fiber.Map{
			"code":    fiberErr.Code,
			"message": fiberErr.Message,
		})
	}
	return HandleErrorResponse(c, err)
}
