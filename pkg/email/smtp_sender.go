package email

import (
	"context"
	"errors"
	"fmt"

	"github.com/wneessen/go-mail"
)

// SMTPSender delivers mail through an authenticated SMTP relay.
type SMTPSender struct {
	client *mail.Client
	config Config
}

// NewSMTPSender creates an SMTP-backed email sender.
// With SMTPSecure the connection uses implicit TLS, otherwise STARTTLS is
// used when the server offers it.
func NewSMTPSender(cfg Config) (*SMTPSender, error) {
	if cfg.SMTPHost == "" {
		return nil, fmt.Errorf("%w: SMTPHost is required", ErrInvalidConfig)
	}
	if !IsValidAddress(cfg.SenderEmail) {
		return nil, fmt.Errorf("%w: SenderEmail must be a valid email address", ErrInvalidConfig)
	}

	opts := []mail.Option{mail.WithPort(cfg.SMTPPort)}
	if cfg.SMTPTimeout > 0 {
		opts = append(opts, mail.WithTimeout(cfg.SMTPTimeout))
	}
	if cfg.SMTPUser != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.SMTPUser),
			mail.WithPassword(cfg.SMTPPass),
		)
	}
	if cfg.SMTPSecure {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}

	client, err := mail.NewClient(cfg.SMTPHost, opts...)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	return &SMTPSender{client: client, config: cfg}, nil
}

// Verify dials the relay and authenticates without sending anything.
func (s *SMTPSender) Verify(ctx context.Context) error {
	if err := s.client.DialWithContext(ctx); err != nil {
		return errors.Join(ErrVerifyFailed, err)
	}
	return s.client.Close()
}

// SendEmail implements Sender.
func (s *SMTPSender) SendEmail(ctx context.Context, params SendEmailParams) (Delivery, error) {
	if err := params.Validate(); err != nil {
		return Delivery{}, err
	}

	msg, err := s.message(params)
	if err != nil {
		return Delivery{}, err
	}

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		var sendErr *mail.SendError
		if errors.As(err, &sendErr) {
			return Delivery{Rejected: []string{params.SendTo}}, errors.Join(ErrFailedToSendEmail, err)
		}
		return Delivery{}, errors.Join(ErrFailedToSendEmail, err)
	}

	return Delivery{
		MessageID: msg.GetMessageID(),
		Accepted:  []string{params.SendTo},
		Rejected:  []string{},
	}, nil
}

func (s *SMTPSender) message(params SendEmailParams) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(s.config.SenderEmail); err != nil {
		return nil, fmt.Errorf("%w: invalid sender: %v", ErrInvalidConfig, err)
	}
	if err := msg.To(params.SendTo); err != nil {
		return nil, fmt.Errorf("%w: invalid recipient: %v", ErrInvalidParams, err)
	}
	if s.config.SupportEmail != "" {
		if err := msg.ReplyTo(s.config.SupportEmail); err != nil {
			return nil, fmt.Errorf("%w: invalid reply-to: %v", ErrInvalidConfig, err)
		}
	}
	msg.Subject(params.Subject)
	msg.SetMessageID()
	msg.SetDate()
	msg.SetBodyString(mail.TypeTextHTML, params.BodyHTML)
	if params.Tag != "" {
		msg.SetGenHeader("X-Tag", params.Tag)
	}
	return msg, nil
}
