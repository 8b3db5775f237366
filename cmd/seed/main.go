package main

import (
	"log"
	"os"
	"time"

	"smart-tools-be/internal/entity"
	"smart-tools-be/internal/model"
	"smart-tools-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds demo accounts for local development: one free user and one pro
// subscriber. Idempotent; existing emails are skipped.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	seedUser(db, "free@example.com", "Free Demo", entity.PlanTierFree)
	seedUser(db, "pro@example.com", "Pro Demo", entity.PlanTierPro)

	log.Println("Seeding completed")
}

func seedUser(db *gorm.DB, email, fullName string, tier entity.PlanTier) {
	var count int64
	db.Model(&model.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Printf("Skip: %s already exists", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Error: failed to hash password:", err)
	}
	hashStr := string(hash)

	user := model.User{
		Id:           uuid.New(),
		Email:        email,
		PasswordHash: &hashStr,
		FullName:     fullName,
		Role:         string(entity.UserRoleUser),
		Status:       string(entity.UserStatusActive),
	}
	if err := db.Create(&user).Error; err != nil {
		log.Fatalf("Error: failed to create user %s: %v", email, err)
	}

	sub := model.UserSubscription{
		Id:                 uuid.New(),
		UserId:             user.Id,
		Tier:               string(tier),
		BillingPeriod:      string(entity.BillingPeriodMonthly),
		Status:             string(entity.SubscriptionStatusActive),
		PaymentStatus:      string(entity.PaymentStatusPaid),
		CurrentPeriodStart: time.Now(),
		CurrentPeriodEnd:   time.Now().AddDate(1, 0, 0),
	}
	if err := db.Create(&sub).Error; err != nil {
		log.Fatalf("Error: failed to create subscription for %s: %v", email, err)
	}

	log.Printf("Seeded %s on tier %s", email, tier)
}
