// Package main seeds the admin user and the system fee wallet. Safe to run
// repeatedly; existing records are left untouched.
package main

import (
	"errors"
	"log"

	"custodia/internal/config"
	"custodia/internal/models"
	"custodia/internal/repositories"
)

func main() {
	config.LoadEnv()
	sysCfg := config.LoadSystemConfig()

	if sysCfg.AdminAPIKey == "" {
		log.Fatal("ADMIN_API_KEY must be set in environment")
	}

	db, err := repositories.InitDB()
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get database instance: %v", err)
	}
	defer sqlDB.Close()

	userRepo := repositories.NewUserRepository(db)
	walletRepo := repositories.NewWalletRepository(db)

	hasAdmin, err := userRepo.HasAPIKey(sysCfg.AdminAPIKey)
	if err != nil {
		log.Fatalf("failed to check admin user: %v", err)
	}
	if !hasAdmin {
		admin := &models.User{
			Username: config.GetEnv("ADMIN_USERNAME", "admin"),
			APIKey:   sysCfg.AdminAPIKey,
		}
		if err := userRepo.AddUser(admin); err != nil {
			log.Fatalf("failed to create admin user: %v", err)
		}
		log.Println("admin user created")
	} else {
		log.Println("admin user already exists")
	}

	systemWallet := &models.Wallet{
		Address:  sysCfg.SystemWalletAddress,
		Balance:  0,
		Currency: models.CurrencyBTC,
	}
	err = walletRepo.AddWallet(systemWallet, sysCfg.AdminAPIKey)
	if err != nil {
		if errors.Is(err, repositories.ErrDuplicateWallet) {
			log.Println("system wallet already exists")
			return
		}
		log.Fatalf("failed to create system wallet: %v", err)
	}
	log.Println("system wallet created")
}
