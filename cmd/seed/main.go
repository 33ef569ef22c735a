package main

import (
	"encoding/json"
	"log"
	"os"

	"ai-training-be/internal/model"
	"ai-training-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

// Seeds a demo company with a manager, two employees and a starter
// scenario so the frontend has something to show on a fresh database.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDB(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Seeding demo company...")

	var existing model.User
	if err := db.Where("email = ?", "manager@demo.local").First(&existing).Error; err == nil {
		color.Yellow("Demo data already present, skipping...")
		return
	}

	company := model.Company{Name: "Demo Retail Co"}
	if err := db.Create(&company).Error; err != nil {
		log.Fatalf("Error: Failed to create company: %v", err)
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	hashStr := string(hash)

	managerUser := model.User{
		Email:        "manager@demo.local",
		FullName:     "Demo Manager",
		PasswordHash: &hashStr,
		Role:         "manager",
		Status:       "active",
		CompanyId:    &company.Id,
	}
	if err := db.Create(&managerUser).Error; err != nil {
		log.Fatalf("Error: Failed to create manager user: %v", err)
	}
	manager := model.Manager{UserId: managerUser.Id, CompanyId: company.Id}
	if err := db.Create(&manager).Error; err != nil {
		log.Fatalf("Error: Failed to create manager: %v", err)
	}

	employees := []string{"Alex Employee", "Sam Trainee"}
	for i, name := range employees {
		emails := []string{"alex@demo.local", "sam@demo.local"}
		user := model.User{
			Email:        emails[i],
			FullName:     name,
			PasswordHash: &hashStr,
			Role:         "employee",
			Status:       "active",
			CompanyId:    &company.Id,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("Error creating employee user '%s': %v", name, err)
			continue
		}
		emp := model.Employee{UserId: user.Id, CompanyId: company.Id, ManagerId: &managerUser.Id}
		if err := db.Create(&emp).Error; err != nil {
			log.Printf("Error creating employee '%s': %v", name, err)
		} else {
			log.Printf("Created employee: %s", name)
		}
	}

	emptyIds, _ := json.Marshal([]string{})
	scenario := model.Scenario{
		CompanyId:   company.Id,
		Title:       "Handling an upset customer",
		Type:        "service_practice",
		Description: "Practice de-escalating a customer who received the wrong order.",
		DocumentIds: datatypes.JSON(emptyIds),
		TopicIds:    datatypes.JSON(emptyIds),
	}
	if err := db.Create(&scenario).Error; err != nil {
		log.Printf("Error creating scenario: %v", err)
	}

	settings := model.CompanySettings{
		CompanyId:         company.Id,
		DefaultLanguage:   "en",
		AssessmentEnabled: true,
	}
	if err := db.Create(&settings).Error; err != nil {
		log.Printf("Error creating company settings: %v", err)
	}

	questions := []string{
		"What should I practice this week?",
		"Which topics am I weakest on?",
	}
	for i, q := range questions {
		rq := model.RecommendationQuestion{
			CompanyId:    company.Id,
			Question:     q,
			DisplayOrder: i + 1,
		}
		if err := db.Create(&rq).Error; err != nil {
			log.Printf("Error creating recommendation question: %v", err)
		}
	}

	color.Green("Demo seeding completed. Manager login: manager@demo.local / password123")
}
