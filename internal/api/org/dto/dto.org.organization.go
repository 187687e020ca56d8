// Package orgdto chứa input của các route tổ chức: organizations, departments, managers, employees, tasks.
package orgdto

// OrganizationCreateInput đầu vào tạo Organization
type OrganizationCreateInput struct {
	OrgName    string `json:"org_name" bson:"org_name" validate:"required,no_xss"`
	OrgAddress string `json:"org_address" bson:"org_address" validate:"no_xss"`
	OrgEmail   string `json:"org_email" bson:"org_email" validate:"omitempty,email"`
	OrgContact string `json:"org_contact" bson:"org_contact" validate:"no_xss"`
}

// OrganizationUpdateInput đầu vào cập nhật Organization, field nil được giữ nguyên
type OrganizationUpdateInput struct {
	OrgName    *string `json:"org_name" bson:"org_name,omitempty" validate:"omitempty,min=1,no_xss"`
	OrgAddress *string `json:"org_address" bson:"org_address,omitempty" validate:"omitempty,no_xss"`
	OrgEmail   *string `json:"org_email" bson:"org_email,omitempty" validate:"omitempty,email"`
	OrgContact *string `json:"org_contact" bson:"org_contact,omitempty" validate:"omitempty,no_xss"`
}
