package logger

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/sirupsen/logrus"
)

// LocalPrincipalID là key trong c.Locals chứa id (hex) của principal đã xác thực
const LocalPrincipalID = "user_id"

// WithRequest trả về logger entry gắn thông tin request: request_id, method, path, ip
// và user_id nếu request đã xác thực.
func WithRequest(c fiber.Ctx) *logrus.Entry {
	fields := logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
		"ip":     c.IP(),
	}

	requestID := requestid.FromContext(c)
	if requestID == "" {
		requestID = c.Get(fiber.HeaderXRequestID)
	}
	if requestID != "" {
		fields["request_id"] = requestID
	}
	if uid, ok := c.Locals(LocalPrincipalID).(string); ok && uid != "" {
		fields["user_id"] = uid
	}

	return GetAppLogger().WithFields(fields)
}

// WithFields trả về logger entry với các fields bổ sung
func WithFields(fields map[string]interface{}) *logrus.Entry {
	return GetAppLogger().WithFields(logrus.Fields(fields))
}

// WithError trả về logger entry với error
func WithError(err error) *logrus.Entry {
	return GetAppLogger().WithError(err)
}

// WithModule trả về logger entry với module name (auth, org, site, upload, notify, ...)
func WithModule(module string) *logrus.Entry {
	return GetAppLogger().WithField("module", module)
}

// WithCollection trả về logger entry với collection name
func WithCollection(collection string) *logrus.Entry {
	return GetAppLogger().WithField("collection", collection)
}
