package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Department thuộc đúng một Organization
type Department struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	DeptName     string             `json:"dept_name" bson:"dept_name"`
	DeptContact  string             `json:"dept_contact" bson:"dept_contact"`
	DeptEmail    string             `json:"dept_email" bson:"dept_email"`
	Organization primitive.ObjectID `json:"organization" bson:"organization" index:"single"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt" index:"single,order:-1"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}

// DepartmentDetail là Department với organization đã populate (nil nếu reference bị treo)
type DepartmentDetail struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id"`
	DeptName     string             `json:"dept_name" bson:"dept_name"`
	DeptContact  string             `json:"dept_contact" bson:"dept_contact"`
	DeptEmail    string             `json:"dept_email" bson:"dept_email"`
	Organization *Organization      `json:"organization" bson:"organization,omitempty"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}
