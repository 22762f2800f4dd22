package database

import (
	"fmt"
	"log"
	"os"

	"property-app/internal/domain/applications"
	"property-app/internal/domain/assistant"
	"property-app/internal/domain/billing"
	"property-app/internal/domain/companies"
	"property-app/internal/domain/invoices"
	"property-app/internal/domain/leases"
	"property-app/internal/domain/maintenance"
	"property-app/internal/domain/properties"
	"property-app/internal/domain/social"
	"property-app/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("❌ DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db

	// ✅ REQUIRED for UUID generation
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		log.Fatal("❌ Failed to enable pgcrypto extension:", err)
	}

	// ✅ Auto-migrate all domain models
	if err := DB.AutoMigrate(
		// core
		&companies.Company{},
		&users.User{},
		&users.VerificationToken{},
		&billing.Payment{},

		// portfolio
		&properties.Property{},
		&properties.Document{},
		&leases.Lease{},
		&invoices.Invoice{},

		// tenant-facing
		&applications.Application{},
		&maintenance.Request{},

		// marketing & assistant
		&social.Post{},
		&assistant.Message{},
	); err != nil {
		log.Fatal("❌ AutoMigrate error:", err)
	}

	fmt.Println("✅ Connected and migrated successfully")
}
