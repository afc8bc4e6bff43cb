// Package email sends transactional HTML email through one of three
// transports behind the Sender interface.
//
//   - SMTPSender uses github.com/wneessen/go-mail against any relay
//     (selected when SMTP_HOST and SMTP_USER are set).
//   - PostmarkSender uses the transactional API
//     (selected when both POSTMARK tokens are set).
//   - DevSender writes each message to EMAIL_DEV_DIR as .html plus .json
//     metadata, for local development without credentials.
//
// New picks the transport from Config. SendEmail validates its parameters
// first and reports the provider's view of the message as a Delivery:
//
//	var cfg email.Config
//	config.MustLoad(&cfg)
//
//	sender, transport, err := email.New(cfg)
//	if err != nil {
//	    // no usable transport, refuse to start
//	}
//	if v, ok := sender.(email.Verifier); ok {
//	    _ = v.Verify(ctx) // connectivity check, not fatal
//	}
//
//	delivery, err := sender.SendEmail(ctx, email.SendEmailParams{
//	    SendTo:   "sam@example.com",
//	    Subject:  "Welcome to Sagar Company",
//	    BodyHTML: html,
//	})
//
// HTML bodies are usually produced from templ components with
// templates.Render.
//
// # Errors
//
//   - ErrInvalidParams: the message failed validation, nothing was sent.
//   - ErrInvalidConfig: the configuration is inconsistent.
//   - ErrTransportUnavailable: the selected transport could not be built.
//   - ErrFailedToSendEmail: the transport refused or could not be reached.
//   - ErrVerifyFailed: Verify could not reach or authenticate with the relay.
package email
