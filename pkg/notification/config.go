package notification

// Config holds the settings for notification content. WelcomeSubject, when
// empty, becomes "Welcome to <CompanyName>".
type Config struct {
	CompanyName    string `env:"COMPANY_NAME" envDefault:"Sagar Company"`
	WelcomeSubject string `env:"WELCOME_EMAIL_SUBJECT"`
}
