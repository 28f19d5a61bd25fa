package model

// Reminder is the short message pushed to the local reminders channel.
type Reminder struct {
	Title string
	Body  string
}

// Email is a transport-agnostic plain-text email for downstream senders.
type Email struct {
	Subject string
	Body    string
}
