package config

import (
	"log"
	"os"
)

type Config struct {
	Port          string
	DBDSN         string
	JWTSecret     string
	StorageURL    string
	StorageFolder string
	LogFile       string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "rewear.db"
	} // sqlite file in project root
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-only-secret"
		log.Println("[config] JWT_SECRET not set, using insecure development secret")
	}
	storageURL := os.Getenv("STORAGE_URL")
	if storageURL == "" {
		storageURL = "http://localhost:9000"
	}
	folder := os.Getenv("STORAGE_FOLDER")
	if folder == "" {
		folder = "rewear-images"
	}
	logFile := os.Getenv("LOG_FILE")

	cfg := Config{
		Port:          port,
		DBDSN:         dsn,
		JWTSecret:     secret,
		StorageURL:    storageURL,
		StorageFolder: folder,
		LogFile:       logFile,
	}
	log.Printf("[config] PORT=%s DB_DSN=%s STORAGE_URL=%s STORAGE_FOLDER=%s LOG_FILE=%s",
		cfg.Port, cfg.DBDSN, cfg.StorageURL, cfg.StorageFolder, cfg.LogFile)
	return cfg
}
