package logger

import (
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// LogAction ghi một hành động audit kèm người thực hiện và thông tin request
func LogAction(action string, c fiber.Ctx, details map[string]interface{}) {
	if details == nil {
		details = make(map[string]interface{})
	}

	fields := logrus.Fields{
		"action":     action,
		"ip":         c.IP(),
		"user_agent": c.Get(fiber.HeaderUserAgent),
		"details":    details,
	}
	if uid, ok := c.Locals(LocalPrincipalID).(string); ok {
		fields["user_id"] = uid
	}
	if rid := c.Get(fiber.HeaderXRequestID); rid != "" {
		fields["request_id"] = rid
	}

	GetAuditLogger().WithFields(fields).Info("Audit log")
}

// LogCRUD ghi các thao tác ghi dữ liệu (create, update, delete)
func LogCRUD(operation string, resourceType string, resourceID string, c fiber.Ctx) {
	LogAction("crud_"+operation, c, map[string]interface{}{
		"operation":     operation,
		"resource_type": resourceType,
		"resource_id":   resourceID,
	})
}

// LogAuth ghi các thao tác đăng nhập (thành công hoặc thất bại)
func LogAuth(action string, c fiber.Ctx, details map[string]interface{}) {
	if details == nil {
		details = make(map[string]interface{})
	}
	details["auth_action"] = action
	LogAction("auth_"+action, c, details)
}
