package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zougmar/hassan-elec/config"
	"github.com/zougmar/hassan-elec/internal/registry"
)

// Store là handle tới database, được tạo một lần ở main và truyền vào các service.
// Collections giữ các *mongo.Collection đã đăng ký theo tên.
type Store struct {
	Client      *mongo.Client
	DB          *mongo.Database
	Collections *registry.Registry[*mongo.Collection]
}

// Open kết nối MongoDB và trả về Store cho database cấu hình
func Open(cfg *config.Configuration) (*Store, error) {
	client, err := GetInstance(cfg)
	if err != nil {
		return nil, err
	}
	return NewStore(client, client.Database(cfg.DatabaseName())), nil
}

// NewStore tạo Store từ client/database có sẵn
func NewStore(client *mongo.Client, db *mongo.Database) *Store {
	return &Store{
		Client:      client,
		DB:          db,
		Collections: registry.NewRegistry[*mongo.Collection](),
	}
}

// Register đăng ký các collection theo tên
func (s *Store) Register(names ...string) error {
	for _, name := range names {
		if _, err := s.Collections.Register(name, s.DB.Collection(name)); err != nil {
			return fmt.Errorf("register collection %q: %w", name, err)
		}
	}
	return nil
}

// Collection lấy collection đã đăng ký
func (s *Store) Collection(name string) (*mongo.Collection, error) {
	return s.Collections.MustGet(name)
}

// Ping kiểm tra kết nối
func (s *Store) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx, nil)
}

// Close xóa registry và đóng kết nối
func (s *Store) Close(ctx context.Context) error {
	_, _ = s.Collections.ClearAll(nil)
	return CloseInstance(ctx, s.Client)
}
