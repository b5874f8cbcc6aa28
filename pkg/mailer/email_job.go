package mailer

// EmailJob is the message published to the email queue by the API and
// consumed by the email worker.
type EmailJob struct {
	To       string      `json:"to"`
	Template string      `json:"template"`
	Data     WelcomeData `json:"data"`
}

// WelcomeData feeds the welcome template.
type WelcomeData struct {
	Username string `json:"username"`
}
