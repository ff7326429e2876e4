package services

import (
	"fmt"
	"net/smtp"

	"jurisight/internal/config"
	"jurisight/internal/logger"

	"go.uber.org/zap"
)

type EmailService struct {
	auth smtp.Auth
	from string
	host string
	port string
}

func NewEmailService(cfg *config.Config) *EmailService {
	auth := smtp.PlainAuth("", cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPHost)
	return &EmailService{
		auth: auth,
		from: cfg.SMTPUser,
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
	}
}

func (s *EmailService) Send(to []string, subject, body string, isHTML bool) error {
	contentType := "text/plain"
	if isHTML {
		contentType = "text/html"
	}
	msg := []byte("Subject: " + subject + "\r\n" +
		"Content-Type: " + contentType + "; charset=\"utf-8\"\r\n\r\n" +
		body)

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	return smtp.SendMail(addr, s.auth, s.from, to, msg)
}

type EmailJob struct {
	To      []string
	Subject string
	Body    string
	IsHTML  bool
}

var EmailQueue = make(chan EmailJob, 100)

func StartEmailWorker(emailService *EmailService) {
	for job := range EmailQueue {
		if err := emailService.Send(job.To, job.Subject, job.Body, job.IsHTML); err != nil {
			logger.Log.Error("email delivery failed",
				zap.Int("recipients", len(job.To)),
				zap.String("subject", job.Subject),
				zap.Error(err),
			)
		}
	}
}
