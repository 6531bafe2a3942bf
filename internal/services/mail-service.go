package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"html/template"
	"log"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/bhortijuddho/admission-svc/internal/dto"
)

const acceptedTemplatePath = "internal/templates/accepted-email.html"

// MailService consumes application.accepted events and delivers the composed
// message. It implements interfaces.ConsumerHandler.
type MailService struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
}

func NewMailService(host string, port int, user, password, from, fromName string) *MailService {
	return &MailService{
		dialer:   gomail.NewDialer(host, port, user, password),
		from:     from,
		fromName: fromName,
	}
}

func (s *MailService) HandleMessage(message string) error {
	var event dto.ApplicationAcceptedEvent
	if err := json.Unmarshal([]byte(message), &event); err != nil {
		return err
	}
	if event.To == "" {
		return errors.New("event has no recipient")
	}

	htmlBody, err := renderAcceptedTemplate(event)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from, s.fromName)
	m.SetHeader("To", event.To)
	m.SetHeader("Subject", event.Subject)
	m.SetBody("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		log.Printf("failed to send acceptance mail to %s: %v", event.To, err)
		return err
	}

	log.Printf("acceptance mail sent to %s (application %s)", event.To, event.ApplicationID)
	return nil
}

func renderAcceptedTemplate(event dto.ApplicationAcceptedEvent) (string, error) {
	tmpl, err := template.ParseFiles(acceptedTemplatePath)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, map[string]any{
		"Subject":    event.Subject,
		"Paragraphs": strings.Split(event.Body, "\n\n"),
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
