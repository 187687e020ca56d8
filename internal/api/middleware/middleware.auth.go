package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v3"

	authmodels "github.com/zougmar/hassan-elec/internal/api/auth/models"
	basehdl "github.com/zougmar/hassan-elec/internal/api/base/handler"
	"github.com/zougmar/hassan-elec/internal/common"
	"github.com/zougmar/hassan-elec/internal/logger"
)

// LocalPrincipal là key trong c.Locals chứa authmodels.Principal
const LocalPrincipal = "principal"

// Authenticator resolve bearer token thành principal
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (authmodels.Principal, error)
}

// Authenticate yêu cầu header Authorization: Bearer <token> hợp lệ.
// Principal đã resolve được lưu vào c.Locals cho các middleware và handler phía sau.
func Authenticate(auth Authenticator) Middleware {
	return func(next fiber.Handler) fiber.Handler {
		return func(c fiber.Ctx) error {
			authHeader := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
			if authHeader == "" {
				logger.WithRequest(c).Warn("Missing Authorization header")
				return basehdl.HandleErrorResponse(c, common.ErrTokenMissing)
			}

			scheme, token, ok := strings.Cut(authHeader, " ")
			token = strings.TrimSpace(token)
			if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
				return basehdl.HandleErrorResponse(c, common.ErrTokenMissing)
			}

			principal, err := auth.Authenticate(c.Context(), token)
			if err != nil {
				logger.WithRequest(c).WithError(err).Warn("Token rejected")
				return basehdl.HandleErrorResponse(c, err)
			}

			c.Locals(LocalPrincipal, principal)
			c.Locals(logger.LocalPrincipalID, principal.ID().Hex())
			return next(c)
		}
	}
}

// PrincipalFrom lấy principal đã xác thực của request
func PrincipalFrom(c fiber.Ctx) (authmodels.Principal, bool) {
	p, ok := c.Locals(LocalPrincipal).(authmodels.Principal)
	return p, ok && p != nil
}

// Gate chặn request khi principal không thỏa predicate: 401 nếu chưa xác thực, 403 nếu không đủ quyền
func Gate(name string, allow authmodels.Predicate) Middleware {
	return func(next fiber.Handler) fiber.Handler {
		return func(c fiber.Ctx) error {
			p, ok := PrincipalFrom(c)
			if !ok {
				return basehdl.HandleErrorResponse(c, common.ErrUnauthorized)
			}
			if !allow(p) {
				logger.WithRequest(c).WithFields(map[string]interface{}{
					"gate": name,
					"kind": p.Kind(),
					"role": p.Role(),
				}).Warn("Access denied")
				return basehdl.HandleErrorResponse(c, common.ErrForbidden)
			}
			return next(c)
		}
	}
}

// Các gate dùng chung cho router
var (
	AdminOnly      = Gate("adminOnly", authmodels.AdminOnly)
	AdminOrManager = Gate("adminOrManager", authmodels.AdminOrManager)
	ManagerOnly    = Gate("managerOnly", authmodels.ManagerOnly)
	EmployeeOnly   = Gate("employeeOnly", authmodels.EmployeeOnly)
)
