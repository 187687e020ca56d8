package router

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/zougmar/hassan-elec/internal/api/base/handler"
	"github.com/zougmar/hassan-elec/internal/api/middleware"
)

// Lưu ý khi đăng ký route có middleware:
// Không dùng group.Use(mw) cho middleware riêng của từng route. Trong Fiber v3, Use trên group
// áp dụng theo prefix nên sẽ chạy luôn cho các route anh em cùng prefix (ví dụ gate của
// POST /services chặn cả GET /services). Middleware được ghép thẳng vào handler bằng
// middleware.Chain thông qua RegisterRouteWithMiddleware.

// CRUDHandler định nghĩa interface cho các handler CRUD của một resource
type CRUDHandler interface {
	Find(c fiber.Ctx) error
	FindOneById(c fiber.Ctx) error
	InsertOne(c fiber.Ctx) error
	UpdateById(c fiber.Ctx) error
	DeleteById(c fiber.Ctx) error
}

// CRUDConfig là danh sách middleware (xác thực + gate) cho từng operation.
// Danh sách rỗng nghĩa là route public.
type CRUDConfig struct {
	Find     []middleware.Middleware // GET /
	FindById []middleware.Middleware // GET /:id
	Insert   []middleware.Middleware // POST /
	Update   []middleware.Middleware // PUT /:id
	Delete   []middleware.Middleware // DELETE /:id
}

// RoutePrefix chứa prefix cơ bản cho API
type RoutePrefix struct {
	Base string // /api
}

// NewRoutePrefix tạo RoutePrefix mặc định
func NewRoutePrefix() RoutePrefix {
	return RoutePrefix{Base: "/api"}
}

// Router giữ middleware xác thực dùng chung cho các domain router
type Router struct {
	app  *fiber.App
	auth middleware.Middleware
}

// NewRouter tạo Router với middleware xác thực bearer token
func NewRouter(app *fiber.App, auth middleware.Middleware) *Router {
	return &Router{app: app, auth: auth}
}

// Authed trả về chuỗi middleware: xác thực rồi lần lượt các gate
func (r *Router) Authed(gates ...middleware.Middleware) []middleware.Middleware {
	return append([]middleware.Middleware{r.auth}, gates...)
}

// Public là danh sách middleware rỗng, dùng cho route không cần xác thực
func Public() []middleware.Middleware {
	return nil
}

// RegisterRouteWithMiddleware đăng ký một route với middleware đã ghép vào handler
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []middleware.Middleware, handler fiber.Handler) {
	full := strings.TrimRight(prefix, "/") + path
	if full == "" {
		full = "/"
	}
	h := middleware.Chain(handler, middlewares...)

	switch method {
	case fiber.MethodGet:
		router.Get(full, h)
	case fiber.MethodPost:
		router.Post(full, h)
	case fiber.MethodPut:
		router.Put(full, h)
	case fiber.MethodDelete:
		router.Delete(full, h)
	}
}

// RegisterCRUDRoutes đăng ký list/get/create/update/delete cho một resource.
// Route riêng của domain có dạng /<prefix>/<tên> phải được đăng ký trước để không bị /:id nuốt mất.
func (r *Router) RegisterCRUDRoutes(router fiber.Router, prefix string, h CRUDHandler, config CRUDConfig) {
	RegisterRouteWithMiddleware(router, prefix, fiber.MethodGet, "/", config.Find, h.Find)
	RegisterRouteWithMiddleware(router, prefix, fiber.MethodGet, "/:id", config.FindById, h.FindOneById)
	RegisterRouteWithMiddleware(router, prefix, fiber.MethodPost, "/", config.Insert, h.InsertOne)
	RegisterRouteWithMiddleware(router, prefix, fiber.MethodPut, "/:id", config.Update, h.UpdateById)
	RegisterRouteWithMiddleware(router, prefix, fiber.MethodDelete, "/:id", config.Delete, h.DeleteById)
}

// RegisterFunc là hàm đăng ký route của một domain (do domain/router export)
type RegisterFunc func(api fiber.Router, r *Router) error

// HealthRoutes đăng ký /health và /health/ready
func HealthRoutes(db basehdl.Pinger) RegisterFunc {
	return func(api fiber.Router, _ *Router) error {
		h := basehdl.NewSystemHandler(db)
		RegisterRouteWithMiddleware(api, "/health", fiber.MethodGet, "", Public(), h.HandleHealth)
		RegisterRouteWithMiddleware(api, "/health", fiber.MethodGet, "/ready", Public(), h.HandleReady)
		return nil
	}
}

// SetupRoutes thiết lập tất cả các route dưới /api. Caller truyền Register của từng domain để tránh import cycle.
func SetupRoutes(app *fiber.App, auth middleware.Middleware, regs ...RegisterFunc) error {
	prefix := NewRoutePrefix()
	api := app.Group(prefix.Base)
	r := NewRouter(app, auth)
	for _, reg := range regs {
		if err := reg(api, r); err != nil {
			return err
		}
	}
	return nil
}
