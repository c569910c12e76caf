package email

// Message is a single outbound email.
type Message struct {
	From     string
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// Provider sends email. Services depend on this interface so tests can
// substitute an in-memory fake.
type Provider interface {
	Send(msg *Message) error
	Validate() error
}
