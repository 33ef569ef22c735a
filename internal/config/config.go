package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	Database   DatabaseConfig
	SMTP       SMTPConfig
	Keys       APIKeys
	Voice      VoiceConfig
	Storage    StorageConfig
	Assessment AssessmentConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	JWTSecret          string
	AllowDemoUser      bool
}

type DatabaseConfig struct {
	Connection string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
}

type APIKeys struct {
	GoogleGemini      string
	GenerateQuestions string // Question generation topic
	GoogleOAuthID     string
	GoogleOAuthSecret string
}

type VoiceConfig struct {
	BaseURL        string
	APIKey         string
	DefaultAgentID string
	DefaultVoiceID string
}

type StorageConfig struct {
	AwsAccessKey string
	AwsSecretKey string
	AwsRegion    string
	Bucket       string
}

type AssessmentConfig struct {
	TimeoutSeconds    int
	TranscriptRetries int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			JWTSecret:          getEnv("JWT_SECRET", "default_secret"),
			AllowDemoUser:      getEnv("ALLOW_DEMO_USER", "false") == "true",
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "TrainingHub"),
		},
		Keys: APIKeys{
			GoogleGemini:      getEnv("GOOGLE_GEMINI_API_KEY", ""),
			GenerateQuestions: getEnv("GENERATE_QUESTIONS_TOPIC_NAME", "GENERATE_QUESTIONS"),
			GoogleOAuthID:     getEnv("GOOGLE_OAUTH_CLIENT_ID", ""),
			GoogleOAuthSecret: getEnv("GOOGLE_OAUTH_CLIENT_SECRET", ""),
		},
		Voice: VoiceConfig{
			BaseURL:        getEnv("VOICE_API_BASE_URL", "https://api.elevenlabs.io"),
			APIKey:         getEnv("VOICE_API_KEY", ""),
			DefaultAgentID: getEnv("VOICE_DEFAULT_AGENT_ID", ""),
			DefaultVoiceID: getEnv("VOICE_DEFAULT_VOICE_ID", ""),
		},
		Storage: StorageConfig{
			AwsAccessKey: getEnv("AWS_ACCESS_KEY_ID", ""),
			AwsSecretKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			AwsRegion:    getEnv("AWS_REGION", "us-east-1"),
			Bucket:       getEnv("RECORDINGS_BUCKET", "training-recordings"),
		},
		Assessment: AssessmentConfig{
			TimeoutSeconds:    getEnvAsInt("ASSESSMENT_TIMEOUT_SECONDS", 45),
			TranscriptRetries: getEnvAsInt("TRANSCRIPT_MAX_RETRIES", 5),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
