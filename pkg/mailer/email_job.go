package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Notifications here are plain text; Subject and Text are required.
type EmailJob struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}
