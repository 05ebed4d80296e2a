package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// AppConfig holds every configuration value the application reads.
type AppConfig struct {
	Port           string
	Env            string
	MongoMode      string
	MongoURI       string
	TokenSecretKey []byte

	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string

	UploadDir string

	// Seed credentials for the out-of-band admin account. Both empty means
	// no seeding happens on startup.
	AdminEmail    string
	AdminPassword string
}

// Load reads configuration from a .env file or environment variables.
func Load() *AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &AppConfig{
		Port:                getEnv("PORT", "5000"),
		Env:                 getEnv("ENVIRONMENT", "development"),
		MongoMode:           getEnv("MONGO_MODE", "local"),
		CloudinaryCloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryAPIKey:    getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryAPISecret: getEnv("CLOUDINARY_API_SECRET", ""),
		UploadDir:           getEnv("UPLOAD_DIR", "static/uploads"),
		AdminEmail:          getEnv("ADMIN_EMAIL", ""),
		AdminPassword:       getEnv("ADMIN_PASSWORD", ""),
	}

	if cfg.MongoMode == "atlas" {
		cfg.MongoURI = getEnv("MONGO_URI_ATLAS", "")
		if cfg.MongoURI == "" {
			log.Fatal("MONGO_MODE 'atlas' but MONGO_URI_ATLAS is not set")
		}
	} else {
		cfg.MongoURI = getEnv("MONGO_URI_LOCAL", "mongodb://localhost:27017/catalog")
	}

	key := getEnv("TOKEN_SECRET_KEY", "")
	if len(key) != 32 {
		log.Fatal("TOKEN_SECRET_KEY must be 32 characters long!")
	}
	cfg.TokenSecretKey = []byte(key)

	return cfg
}

// CloudinaryConfigured reports whether all three cloud media credentials are
// present. The media backend is chosen once at startup from this.
func (c *AppConfig) CloudinaryConfigured() bool {
	return c.CloudinaryCloudName != "" && c.CloudinaryAPIKey != "" && c.CloudinaryAPISecret != ""
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
