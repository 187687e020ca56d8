// Package models chứa các model của domain tổ chức: Organization, Department, Manager, Employee, Task.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Organization là công ty/tổ chức sở hữu các phòng ban
type Organization struct {
	ID         primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	OrgName    string             `json:"org_name" bson:"org_name" index:"single"`
	OrgAddress string             `json:"org_address" bson:"org_address"`
	OrgEmail   string             `json:"org_email" bson:"org_email"`
	OrgContact string             `json:"org_contact" bson:"org_contact"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt" index:"single,order:-1"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}

// OrganizationDetail là Organization kèm danh sách phòng ban (quan hệ ngược)
type OrganizationDetail struct {
	ID          primitive.ObjectID `json:"_id" bson:"_id"`
	OrgName     string             `json:"org_name" bson:"org_name"`
	OrgAddress  string             `json:"org_address" bson:"org_address"`
	OrgEmail    string             `json:"org_email" bson:"org_email"`
	OrgContact  string             `json:"org_contact" bson:"org_contact"`
	Departments []Department       `json:"departments" bson:"departments"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
