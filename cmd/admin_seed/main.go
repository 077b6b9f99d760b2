package main

import (
	"context"
	"errors"
	"log"
	"os"

	"orusconsole/internal/config"
	"orusconsole/internal/models"
	"orusconsole/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	adminName := config.GetEnv("ADMIN_NAME", "Console Admin")
	adminRole := config.GetEnv("ADMIN_ROLE", models.RoleSuperAdmin)

	if adminEmail == "" || adminPassword == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set in environment")
	}

	db, err := repositories.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		sqlDB, err := db.DB()
		if err != nil {
			log.Printf("⚠️ Failed to get SQL DB instance: %v", err)
			return
		}
		if err := sqlDB.Close(); err != nil {
			log.Printf("⚠️ Failed to close PostgreSQL connection: %v", err)
		}
	}()

	ctx := context.Background()
	admins := repositories.NewAdminRepository(db)

	_, err = admins.GetByEmail(ctx, adminEmail)
	if err == nil {
		log.Println("Admin user already exists")
		return
	}
	if !errors.Is(err, repositories.ErrAdminNotFound) {
		log.Fatalf("Failed to look up admin: %v", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash password:", err)
	}

	admin := models.Admin{
		Email:        adminEmail,
		Password:     string(hashedPassword),
		Name:         adminName,
		Role:         adminRole,
		Permissions:  models.GetDefaultPermissions(adminRole),
		Status:       "active",
		TokenVersion: 1,
	}
	if err := admins.Create(ctx, &admin); err != nil {
		log.Fatal("Failed to create admin user:", err)
	}

	log.Println("✅ Admin account created successfully!")
}
