package authsvc

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	authmodels "github.com/zougmar/hassan-elec/internal/api/auth/models"
	"github.com/zougmar/hassan-elec/internal/common"
)

// ProfileUpdate là thay đổi profile của principal. Field rỗng được bỏ qua.
type ProfileUpdate struct {
	Name  string
	Photo string
}

// UpdateProfile cập nhật tên/ảnh của principal và trả về principal mới
func (s *AuthService) UpdateProfile(ctx context.Context, p authmodels.Principal, in ProfileUpdate) (authmodels.Principal, error) {
	name := strings.TrimSpace(in.Name)
	photo := strings.TrimSpace(in.Photo)

	set := bson.M{}
	if photo != "" {
		set["photo"] = photo
	}

	switch v := p.(type) {
	case *authmodels.OwnerPrincipal:
		if name != "" {
			set["name"] = name
		}
		if len(set) == 0 {
			return p, nil
		}
		owner, err := s.owners.UpdateById(ctx, v.ID(), set)
		if err != nil {
			return nil, err
		}
		return &authmodels.OwnerPrincipal{Owner: owner}, nil

	case *authmodels.ManagerPrincipal:
		if name != "" {
			set["name"] = name
		}
		if len(set) == 0 {
			return p, nil
		}
		manager, err := s.managers.UpdateById(ctx, v.ID(), set)
		if err != nil {
			return nil, err
		}
		return &authmodels.ManagerPrincipal{Manager: manager}, nil

	case *authmodels.EmployeePrincipal:
		if name != "" {
			empName := v.Employee.EmpName
			empName.En = name
			set["emp_name"] = empName
		}
		if len(set) == 0 {
			return p, nil
		}
		if _, err := s.employees.UpdateById(ctx, v.ID(), set); err != nil {
			return nil, err
		}
		detail, err := s.employees.FindDetailById(ctx, v.ID())
		if err != nil {
			return nil, err
		}
		return &authmodels.EmployeePrincipal{Employee: detail}, nil
	}
	return nil, common.ErrUnauthorized
}
