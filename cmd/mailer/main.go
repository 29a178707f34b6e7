package main

import (
	"log"

	"github.com/HackVerse/hackathon-service/config"
	"github.com/HackVerse/hackathon-service/infra/queue"
	"github.com/HackVerse/hackathon-service/internal/mailer"
)

func main() {
	// ---------- Load Config ----------
	cfg := config.LoadConfig()

	log.Println("Mailer starting...")
	log.Printf("KafkaBroker=%s Topic=%s GroupID=%s\n",
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaGroupID,
	)

	// ---------- Init Service ----------
	mailService := mailer.NewMailService(
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUser,
		cfg.SMTPPassword,
		cfg.MailFrom,
		cfg.MailFromName,
	)

	// ---------- Init Handler ----------
	handler := mailer.NewMailHandler(mailService)

	// ---------- Init Kafka Consumer ----------
	consumer := queue.NewKafkaConsumer(
		cfg.KafkaBroker,
		cfg.KafkaTopic,
		cfg.KafkaGroupID,
		cfg.KafkaUsername,
		cfg.KafkaPassword,
		handler,
	)

	// ---------- Start Listening ----------
	log.Println("Mailer listening for events...")
	consumer.Listen()
}
