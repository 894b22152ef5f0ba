package utils

import (
	"fmt"
	"os"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendTwoFactorCode delivers a verification code by email. Without a
// SendGrid key the code is only logged, which keeps the flow usable in
// development.
func SendTwoFactorCode(email, code string) error {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		LogInfo(fmt.Sprintf("SENDGRID_API_KEY not set, 2FA code for %s: %s", email, code))
		return nil
	}

	fromAddr := os.Getenv("MAIL_FROM")
	if fromAddr == "" {
		fromAddr = "no-reply@kreatorkonnect.app"
	}

	subject := "Your Kreator Konnect verification code"
	body := fmt.Sprintf("Your verification code is %s. It expires when a new code is requested.", code)

	from := mail.NewEmail("Kreator Konnect", fromAddr)
	to := mail.NewEmail("", email)
	message := mail.NewSingleEmail(from, subject, to, body, body)
	client := sendgrid.NewSendClient(apiKey)

	response, err := client.Send(message)
	if err != nil {
		LogError(err, "Error sending 2FA code email")
		return err
	}
	if response.StatusCode >= 400 {
		err := fmt.Errorf("sendgrid returned status %d", response.StatusCode)
		LogError(err, "Error sending 2FA code email")
		return err
	}
	return nil
}
