package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Sagar00752/hrms/pkg/email"
	"github.com/Sagar00752/hrms/pkg/email/templates"
	"github.com/Sagar00752/hrms/pkg/logger"
	"github.com/Sagar00752/hrms/pkg/queue"
)

// Template data keys written by the employee service.
const (
	KeyFirstname  = "firstname"
	KeyEmployeeID = "employeeid"
)

// WelcomeHandler turns welcome_email jobs into delivered emails.
type WelcomeHandler struct {
	sender  email.Sender
	company string
	subject string
	logger  *slog.Logger
}

// Option configures a WelcomeHandler.
type Option func(*WelcomeHandler)

// WithCompanyName sets the company shown in the body and default subject.
func WithCompanyName(name string) Option {
	return func(h *WelcomeHandler) {
		if name != "" {
			h.company = name
		}
	}
}

// WithDefaultSubject sets the subject used when a job carries none.
func WithDefaultSubject(subject string) Option {
	return func(h *WelcomeHandler) {
		if subject != "" {
			h.subject = subject
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(h *WelcomeHandler) {
		if l != nil {
			h.logger = l
		}
	}
}

// NewWelcomeHandler creates a handler that delivers through sender.
func NewWelcomeHandler(sender email.Sender, opts ...Option) (*WelcomeHandler, error) {
	if sender == nil {
		return nil, ErrSenderNil
	}

	h := &WelcomeHandler{
		sender:  sender,
		company: "Sagar Company",
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.subject == "" {
		h.subject = "Welcome to " + h.company
	}

	return h, nil
}

// Send renders the welcome body and hands it to the transport.
func (h *WelcomeHandler) Send(ctx context.Context, job queue.WelcomeEmail) (email.Delivery, error) {
	subject := strings.TrimSpace(job.Subject)
	if subject == "" {
		subject = h.subject
	}

	body, err := templates.Render(ctx, WelcomeBody(
		job.TemplateData[KeyFirstname],
		job.TemplateData[KeyEmployeeID],
		h.company,
	))
	if err != nil {
		return email.Delivery{}, errors.Join(ErrRenderFailed, err)
	}

	return h.sender.SendEmail(ctx, email.SendEmailParams{
		SendTo:   job.To,
		Subject:  subject,
		BodyHTML: body,
		Tag:      string(queue.JobTypeWelcomeEmail),
	})
}

// Handle delivers job and logs the outcome.
// Failures are returned wrapped with email.ErrFailedToSendEmail; the worker
// logs them and moves on.
func (h *WelcomeHandler) Handle(ctx context.Context, job queue.WelcomeEmail) error {
	start := time.Now()

	delivery, err := h.Send(ctx, job)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to send welcome email",
			logger.Component("notification"),
			logger.JobID(job.ID),
			logger.Recipient(job.To),
			slog.Any("rejected", delivery.Rejected),
			logger.Duration(time.Since(start)),
			logger.Error(err))

		if errors.Is(err, email.ErrFailedToSendEmail) {
			return err
		}
		return fmt.Errorf("%w: %w", email.ErrFailedToSendEmail, err)
	}

	h.logger.InfoContext(ctx, "welcome email sent",
		logger.Component("notification"),
		logger.JobID(job.ID),
		logger.Recipient(job.To),
		logger.MessageID(delivery.MessageID),
		slog.Any("accepted", delivery.Accepted),
		slog.Any("rejected", delivery.Rejected),
		slog.String("response", delivery.Response),
		logger.Duration(time.Since(start)))

	return nil
}

// QueueHandler adapts the handler for queue.Worker registration.
func (h *WelcomeHandler) QueueHandler() queue.Handler {
	return queue.NewHandler(h.Handle)
}
