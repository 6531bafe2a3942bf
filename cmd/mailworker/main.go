package main

import (
	"log"
	"strconv"

	"github.com/bhortijuddho/admission-svc/config"
	"github.com/bhortijuddho/admission-svc/infra/queue"
	"github.com/bhortijuddho/admission-svc/internal/services"
)

func main() {
	// ---------- Load Config ----------
	cfg := config.LoadConfig()

	log.Println("Mail worker starting...")
	log.Printf("KafkaBroker=%s Topic=%s GroupID=%s\n",
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaGroupID,
	)

	smtpPort, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		log.Fatalf("invalid SMTP_PORT %q: %v", cfg.SMTPPort, err)
	}

	// ---------- Init Service ----------
	mailService := services.NewMailService(
		cfg.SMTPHost,
		smtpPort,
		cfg.SMTPUser,
		cfg.SMTPPassword,
		cfg.MailFrom,
		cfg.MailFromName,
	)

	// ---------- Init Kafka Consumer ----------
	consumer := queue.NewKafkaConsumer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaGroupID,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
		mailService,
	)

	// ---------- Start Listening ----------
	log.Println("Mail worker listening for events...")
	consumer.Listen()
}
