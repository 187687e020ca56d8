package authsvc

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	authmodels "github.com/zougmar/hassan-elec/internal/api/auth/models"
	basesvc "github.com/zougmar/hassan-elec/internal/api/base/service"
	"github.com/zougmar/hassan-elec/internal/common"
	"github.com/zougmar/hassan-elec/internal/database"
	"github.com/zougmar/hassan-elec/internal/global"
	"github.com/zougmar/hassan-elec/internal/logger"
	"github.com/zougmar/hassan-elec/internal/utility"
)

// OwnerService thao tác trên collection users
type OwnerService struct {
	*basesvc.BaseServiceMongoImpl[authmodels.Owner]
}

// NewOwnerService tạo mới OwnerService
func NewOwnerService(store *database.Store) (*OwnerService, error) {
	coll, err := store.Collection(global.MongoDB_ColNames.Users)
	if err != nil {
		return nil, err
	}
	return &OwnerService{BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[authmodels.Owner](coll)}, nil
}

// FindByEmail tìm Owner theo email (không phân biệt hoa thường)
func (s *OwnerService) FindByEmail(ctx context.Context, email string) (authmodels.Owner, error) {
	return s.FindOne(ctx, bson.M{"email": strings.ToLower(strings.TrimSpace(email))}, nil)
}

// EnsureOwner tạo Owner role admin khi chưa có tài khoản với email này.
// Trả về true nếu vừa tạo mới.
func (s *OwnerService) EnsureOwner(ctx context.Context, email, password string) (bool, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return false, nil
	}

	_, err := s.FindByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return false, err
	}

	hash, err := utility.HashPassword(password)
	if err != nil {
		return false, err
	}
	if _, err := s.InsertOne(ctx, authmodels.Owner{Email: email, Password: hash, Role: string(authmodels.RoleAdmin)}); err != nil {
		return false, err
	}
	logger.WithModule("auth").WithField("email", email).Info("Bootstrap owner created")
	return true, nil
}
