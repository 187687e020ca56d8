package main

import (
	"context"
	"time"

	"github.com/zougmar/hassan-elec/config"
	authsvc "github.com/zougmar/hassan-elec/internal/api/auth/service"
	"github.com/zougmar/hassan-elec/internal/logger"
)

// InitDefaultData tạo tài khoản Owner từ ADMIN_EMAIL/ADMIN_PASSWORD nếu chưa có
func InitDefaultData(cfg *config.Configuration, owners *authsvc.OwnerService) {
	log := logger.GetAppLogger()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	created, err := owners.EnsureOwner(ctx, cfg.AdminEmail, cfg.AdminPassword)
	if err != nil {
		log.Fatalf("Failed to initialize owner account: %v", err)
	}
	if created {
		log.WithField("email", cfg.AdminEmail).Warn("Owner account created with the configured password, change it after first login")
		return
	}
	log.Info("Owner account already present")
}
