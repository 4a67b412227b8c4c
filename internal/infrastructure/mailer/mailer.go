package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"

	"contact-manager-api/config"
)

type Mailer struct {
	client *mail.Client
	from   string
	log    *zap.Logger
}

func New(cfg config.SMTP, logger *zap.Logger) (*Mailer, error) {
	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.User),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return nil, fmt.Errorf("smtp client init: %w", err)
	}

	return &Mailer{
		client: client,
		from:   cfg.From,
		log:    logger,
	}, nil
}

func (m *Mailer) SendPasswordReset(ctx context.Context, to, name, token string) error {
	msg := mail.NewMsg()

	if err := msg.From(m.from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject("Password reset request")
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf(
		"Hello %s,\n\n"+
			"A password reset was requested for your account. Use the token below to set a new password:\n\n"+
			"    %s\n\n"+
			"The token expires in one hour. If you did not request a reset, ignore this message.\n",
		name, token,
	))

	m.log.Info("sending password reset email", zap.String("to", to))

	return m.client.DialAndSendWithContext(ctx, msg)
}
