package app

import (
	"fmt"

	"github.com/artihcus-web/website-backend/config"
	"github.com/wneessen/go-mail"
)

func NewSMTP(cfg config.EmailConfig) (*mail.Client, error) {
	tlsPolicy := mail.TLSMandatory
	smtpAuth := mail.SMTPAuthCramMD5

	if !cfg.UseTLS {
		tlsPolicy = mail.TLSOpportunistic
		smtpAuth = mail.SMTPAuthLogin
	}

	client, err := mail.NewClient(
		cfg.Host,
		mail.WithSMTPAuth(smtpAuth),
		mail.WithTLSPortPolicy(tlsPolicy),
		mail.WithPort(cfg.Port),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create email client: %w", err)
	}

	return client, nil
}
