package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort    string
	DatabaseDSN   string
	AccessSecret  string
	AuthProvider  string // "local" or "dev"
	AdminPasscode string

	KafkaBroker   string
	KafkaTopic    string
	KafkaGroupID  string
	KafkaUsername string
	KafkaPassword string

	CloudinaryURL string

	CounselorAPIKey string
	CounselorAPIURL string

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	MailFrom     string
	MailFromName string
}

func LoadConfig() Config {
	if os.Getenv("ENV") != "prod" {
		if err := godotenv.Overload(); err != nil {
			log.Println("Warning: .env not loaded:", err)
		}
	}

	return Config{
		ServerPort:    getenv("SERVER_PORT", ":3000"),
		DatabaseDSN:   os.Getenv("DATABASE_DSN"),
		AccessSecret:  getenv("ACCESS_SECRET", "change_me"),
		AuthProvider:  getenv("AUTH_PROVIDER", "local"),
		AdminPasscode: getenv("ADMIN_PASSCODE", "qwerty1234"),

		KafkaBroker:   os.Getenv("KAFKA_BROKER"),
		KafkaTopic:    getenv("KAFKA_TOPIC", "admission.events"),
		KafkaGroupID:  getenv("KAFKA_GROUP_ID", "mail-worker"),
		KafkaUsername: os.Getenv("KAFKA_USERNAME"),
		KafkaPassword: os.Getenv("KAFKA_PASSWORD"),

		CloudinaryURL: os.Getenv("CLOUDINARY_URL"),

		CounselorAPIKey: os.Getenv("COUNSELOR_API_KEY"),
		CounselorAPIURL: os.Getenv("COUNSELOR_API_URL"),

		SMTPHost:     getenv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     getenv("SMTP_PORT", "587"),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		MailFrom:     os.Getenv("MAIL_FROM"),
		MailFromName: getenv("MAIL_FROM_NAME", "BhortiJuddho Admin Team"),
	}
}

func getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}
