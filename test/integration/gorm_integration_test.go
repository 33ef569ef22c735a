package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"ai-training-be/internal/repository/unitofwork"
	"ai-training-be/pkg/database"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDB(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.SessionRepository())
	assert.NotNil(t, uow.ScenarioRepository())
	assert.NotNil(t, uow.EmbeddingRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Session Repository", func(t *testing.T) {
		count, err := uow.SessionRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Training session count: %d", count)
	})

	t.Run("Check Scenario Repository", func(t *testing.T) {
		count, err := uow.ScenarioRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Scenario count: %d", count)
	})
}
