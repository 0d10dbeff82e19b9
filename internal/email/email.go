package email

import (
	"fmt"

	"petsit_backend/internal/config"
	"petsit_backend/internal/logger"

	gomail "gopkg.in/gomail.v2"
)

// Provider sends transactional mail. Implementations must be safe for
// concurrent use; callers fire them from goroutines.
type Provider interface {
	SendWelcome(addr, name string) error
	SendRequestAccepted(addr, name, petName string) error
	SendRequestCompleted(addr, name, petName string) error
}

type smtpProvider struct {
	cfg config.EmailConfig
}

// NewProvider returns the SMTP provider when email is enabled in config,
// otherwise a no-op provider that only logs.
func NewProvider(cfg config.EmailConfig) Provider {
	if !cfg.Enabled {
		return &noopProvider{}
	}
	return &smtpProvider{cfg: cfg}
}

func (p *smtpProvider) send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.cfg.FromEmail, p.cfg.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(p.cfg.SMTPHost, p.cfg.SMTPPort, p.cfg.SMTPUsername, p.cfg.SMTPPassword)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send email to %s: %w", to, err)
	}
	return nil
}

func (p *smtpProvider) SendWelcome(addr, name string) error {
	body := fmt.Sprintf(`<h2>Welcome, %s!</h2>
<p>Your account has been created. You can now add your pets, publish availability and find sitters.</p>`, name)
	return p.send(addr, "Welcome to PetSit", body)
}

func (p *smtpProvider) SendRequestAccepted(addr, name, petName string) error {
	body := fmt.Sprintf(`<h2>Good news, %s!</h2>
<p>A sitter has accepted your sitting request for %s.</p>`, name, petName)
	return p.send(addr, "Your sitting request was accepted", body)
}

func (p *smtpProvider) SendRequestCompleted(addr, name, petName string) error {
	body := fmt.Sprintf(`<h2>Hi %s,</h2>
<p>The sitting for %s has been marked as completed. You can now leave a review for the sitter.</p>`, name, petName)
	return p.send(addr, "Sitting completed", body)
}

// noopProvider is used when email delivery is disabled (local development,
// tests). It records the intent in the log and succeeds.
type noopProvider struct{}

func (p *noopProvider) SendWelcome(addr, _ string) error {
	logger.Debug("email disabled, skipping welcome email", "to", addr)
	return nil
}

func (p *noopProvider) SendRequestAccepted(addr, _, _ string) error {
	logger.Debug("email disabled, skipping acceptance email", "to", addr)
	return nil
}

func (p *noopProvider) SendRequestCompleted(addr, _, _ string) error {
	logger.Debug("email disabled, skipping completion email", "to", addr)
	return nil
}
