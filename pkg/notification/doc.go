// Package notification renders and delivers the emails produced by queue jobs.
//
// WelcomeHandler consumes welcome_email records: it renders WelcomeBody with
// the employee's first name and ID (escaped, so template data can never inject
// markup), sends it through an email.Sender and logs the delivery metadata.
//
//	h, _ := notification.NewWelcomeHandler(sender, notification.WithCompanyName(cfg.CompanyName))
//	worker.RegisterHandler(h.QueueHandler())
package notification
