// Package sitehdl xử lý các route nội dung website: dịch vụ, dự án, yêu cầu dịch vụ.
package sitehdl

import (
	"encoding/json"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/zougmar/hassan-elec/internal/api/base/handler"
	basemodels "github.com/zougmar/hassan-elec/internal/api/base/models"
	"github.com/zougmar/hassan-elec/internal/common"
	"github.com/zougmar/hassan-elec/internal/global"
)

// Lỗi input dùng chung
var (
	ErrTitleRequired = common.NewValidationError("Title is required", nil)
	ErrInvalidOrder  = common.NewValidationError("Order must be an integer", nil)
)

func deleted(c fiber.Ctx, resource string, err error) error {
	return basehdl.HandleMessage(c, resource+" deleted", err)
}

// requiredTitle trả về title, nil hoặc trống thì lỗi 400
func requiredTitle(t *basemodels.LocalizedText) (basemodels.LocalizedText, error) {
	if t == nil || t.IsEmpty() {
		return basemodels.LocalizedText{}, ErrTitleRequired
	}
	return *t, nil
}

func localizedOrEmpty(t *basemodels.LocalizedText) basemodels.LocalizedText {
	if t == nil {
		return basemodels.LocalizedText{}
	}
	return *t
}

// parseOrder đọc order; form gửi "" được coi như không gửi
func parseOrder(n *json.Number) (*int64, error) {
	if n == nil || n.String() == "" {
		return nil, nil
	}
	v, err := n.Int64()
	if err != nil {
		return nil, ErrInvalidOrder
	}
	return &v, nil
}

// httpURLs giữ lại các URL http(s), bỏ qua chuỗi rỗng
func httpURLs(list basemodels.StringList) []string {
	out := []string{}
	for _, u := range list {
		if global.IsHTTPURL(u) {
			out = append(out, u)
		}
	}
	return out
}
