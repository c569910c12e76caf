package email

import "fmt"

// SendOTP delivers a verification code to a single recipient.
func SendOTP(provider Provider, to, code string) error {
	msg := &Message{
		To:      []string{to},
		Subject: "Your verification code",
		Body:    fmt.Sprintf("Your verification code is %s. It expires in 10 minutes.", code),
	}
	return provider.Send(msg)
}
