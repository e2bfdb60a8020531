// utils/email.go
package utils

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"go-laundry/models"
)

// EmailService sends notification emails through SendGrid. A nil service is
// valid and sends nothing, so callers don't have to branch on configuration.
type EmailService struct {
	client *sendgrid.Client
	sender string
}

// NewEmailService returns nil when the API key or sender is not configured.
func NewEmailService(apiKey, sender string) *EmailService {
	if apiKey == "" || sender == "" {
		return nil
	}
	return &EmailService{
		client: sendgrid.NewSendClient(apiKey),
		sender: sender,
	}
}

// SendOrderReceivedEmail notifies the given address that a new order came in.
func (es *EmailService) SendOrderReceivedEmail(toEmail, orderID string, order models.Order) error {
	if es == nil {
		return nil
	}

	subject := "New order received"
	body := fmt.Sprintf(
		"Order %s: %s (%s), service %s, %.1f kg, status %s.",
		orderID, order.CustomerName, order.Phone, order.ServiceType, order.WeightKg, order.Status,
	)

	from := mail.NewEmail("Laundry Backend", es.sender)
	to := mail.NewEmail("", toEmail)
	message := mail.NewSingleEmail(from, subject, to, body, body)

	resp, err := es.client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid responded with status %d", resp.StatusCode)
	}

	log.Printf("Order notification sent to %s", toEmail)
	return nil
}
