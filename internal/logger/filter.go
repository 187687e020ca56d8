package logger

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// FilterHook đánh dấu các entry không nằm trong bộ lọc (module, method, log type).
// AsyncHook bỏ qua entry đã bị đánh dấu.
type FilterHook struct {
	modules  map[string]bool
	methods  map[string]bool
	logTypes map[string]bool
}

// NewFilterHook tạo filter hook từ cấu hình
func NewFilterHook(cfg *LogConfig) *FilterHook {
	return &FilterHook{
		modules:  parseFilter(cfg.FilterModules),
		methods:  parseFilter(cfg.FilterMethods),
		logTypes: parseFilter(cfg.FilterLogTypes),
	}
}

// parseFilter parse "a,b,c" thành set lowercase. Rỗng hoặc "*" trả về nil (cho phép tất cả).
func parseFilter(s string) map[string]bool {
	s = strings.TrimSpace(s)
	if s == "" || s == "*" {
		return nil
	}
	out := make(map[string]bool)
	for _, v := range strings.Split(s, ",") {
		if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
			out[v] = true
		}
	}
	return out
}

// Levels trả về các log levels mà hook này xử lý
func (h *FilterHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire đánh dấu entry bị lọc. Entry không có field tương ứng thì không bị lọc theo field đó.
func (h *FilterHook) Fire(entry *logrus.Entry) error {
	if !h.allows(entry) {
		entry.Data[filteredKey] = true
	}
	return nil
}

func (h *FilterHook) allows(entry *logrus.Entry) bool {
	if h.logTypes != nil && !h.logTypes[entry.Level.String()] {
		return false
	}
	if h.modules != nil {
		if module, ok := entry.Data["module"].(string); ok && module != "" && !h.modules[strings.ToLower(module)] {
			return false
		}
	}
	if h.methods != nil {
		if method, ok := entry.Data["method"].(string); ok && method != "" && !h.methods[strings.ToLower(method)] {
			return false
		}
	}
	return true
}
