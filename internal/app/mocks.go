package app

import (
	"tconnect_backend/internal/email"
	"tconnect_backend/internal/logger"
)

// LogEmailProvider prints outgoing mail to the log instead of sending it.
// Used when SMTP is not configured.
type LogEmailProvider struct{}

func (p *LogEmailProvider) Send(msg *email.Message) error {
	logger.Info("[email] message not sent, SMTP disabled",
		"to", msg.To,
		"subject", msg.Subject,
		"body", msg.Body,
	)
	return nil
}

func (p *LogEmailProvider) Validate() error {
	return nil
}
