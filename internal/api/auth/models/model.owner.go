// Package models chứa model tài khoản Owner, Principal (người gọi đã xác thực) và JWT claims.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Owner là tài khoản quản trị gốc (collection users), luôn có role admin
type Owner struct {
	ID        primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email     string             `json:"email" bson:"email" index:"unique"`
	Password  string             `json:"-" bson:"password,omitempty"`
	Name      string             `json:"name,omitempty" bson:"name,omitempty"`
	Photo     string             `json:"photo,omitempty" bson:"photo,omitempty"`
	Role      string             `json:"role" bson:"role" default:"admin"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
