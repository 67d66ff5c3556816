package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig gathers everything the server needs at startup.
type AppConfig struct {
	ListenAddr    string
	Port          string
	DatabasePath  string
	SessionSecret string
	GinMode       string
	Mail          MailConfig
}

// MailConfig describes the outbound SMTP transport used by the contact
// relay. SenderEmail authenticates against the SMTP server and appears as
// the From address; ReceiverEmail is where contact messages end up.
type MailConfig struct {
	Host           string
	Port           int
	SenderEmail    string
	SenderPassword string
	ReceiverEmail  string
}

// Load reads application configuration from the environment, with a .env
// file honoured when present. Missing non-secret values fall back to safe
// defaults.
func Load() AppConfig {
	// Best effort; absence of a .env file is the normal production case.
	_ = godotenv.Load()

	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	databasePath := strings.TrimSpace(os.Getenv("DATABASE_PATH"))
	if databasePath == "" {
		databasePath = "portfolio.db"
	}

	sessionSecret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if sessionSecret == "" {
		sessionSecret = "portfolio-dev-secret"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	smtpHost := strings.TrimSpace(os.Getenv("SMTP_HOST"))
	if smtpHost == "" {
		smtpHost = "smtp.gmail.com"
	}

	smtpPort := 587
	if raw := strings.TrimSpace(os.Getenv("SMTP_PORT")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			smtpPort = parsed
		}
	}

	return AppConfig{
		ListenAddr:    listenAddr,
		Port:          port,
		DatabasePath:  databasePath,
		SessionSecret: sessionSecret,
		GinMode:       ginMode,
		Mail: MailConfig{
			Host:           smtpHost,
			Port:           smtpPort,
			SenderEmail:    strings.TrimSpace(os.Getenv("SENDER_EMAIL")),
			SenderPassword: strings.TrimSpace(os.Getenv("SENDER_PASSWORD")),
			ReceiverEmail:  strings.TrimSpace(os.Getenv("RECEIVER_ADDRESS")),
		},
	}
}
