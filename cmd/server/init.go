package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/zougmar/hassan-elec/config"
	"github.com/zougmar/hassan-elec/internal/database"
	"github.com/zougmar/hassan-elec/internal/global"
)

// dbInitTimeout giới hạn thời gian tạo collection và index lúc khởi động
const dbInitTimeout = 30 * time.Second

// Hàm khởi tạo cấu hình server
func initConfig() *config.Configuration {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("Failed to initialize config: %v", err)
	}
	logrus.WithField("env", cfg.GoEnv).Info("Initialized server config")
	return cfg
}

// Hàm khởi tạo validator (đăng ký custom validators: no_xss, objectid, http_url)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator")
}

// Hàm khởi tạo kết nối database, đăng ký collection và tạo index
func initDatabase(cfg *config.Configuration) *database.Store {
	store, err := database.Open(cfg)
	if err != nil {
		logrus.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	logrus.WithField("database", cfg.DatabaseName()).Info("Connected to MongoDB")

	if err := initRegistry(store); err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbInitTimeout)
	defer cancel()

	if err := store.EnsureCollections(ctx, collectionNames()...); err != nil {
		logrus.Fatalf("Failed to ensure collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	for _, idx := range collectionIndexes() {
		coll, err := store.Collection(idx.name)
		if err != nil {
			logrus.Fatalf("Collection %s not registered: %v", idx.name, err)
		}
		// Lỗi index không chặn khởi động, dữ liệu cũ có thể trùng email
		if err := database.CreateIndexes(ctx, coll, idx.model); err != nil {
			logrus.WithError(err).Warnf("Failed to create indexes for %s", idx.name)
		}
	}
	logrus.Info("Ensured indexes")
	return store
}
