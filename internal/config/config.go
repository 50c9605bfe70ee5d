package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port       string
	APIBaseURL string
	SessionDSN string
	LogFile    string
}

func Load() Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	apiBase := os.Getenv("API_BASE_URL")
	if apiBase == "" {
		apiBase = "http://localhost:5001/api"
	}
	dsn := os.Getenv("SESSION_DSN")
	if dsn == "" {
		dsn = "boxcars.db"
	} // sqlite file in project root
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./boxcars.log" // default log sink in project root
	}

	cfg := Config{Port: port, APIBaseURL: apiBase, SessionDSN: dsn, LogFile: logFile}
	log.Printf("[config] PORT=%s API_BASE_URL=%s SESSION_DSN=%s LOG_FILE=%s", cfg.Port, cfg.APIBaseURL, cfg.SessionDSN, cfg.LogFile)
	return cfg
}
