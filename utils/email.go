// utils/email.go
package utils

import (
	"fmt"

	"github.com/keighl/postmark"

	"go-food-ordering/models"
)

// EmailService handles sending emails using Postmark
type EmailService struct {
	client *postmark.Client
	sender string
}

// NewEmailService initializes and returns a new EmailService instance.
// Returns nil when no API token is configured; a nil service silently skips
// every send so notifications are optional.
func NewEmailService(apiToken, sender string) *EmailService {
	if apiToken == "" {
		return nil
	}
	return &EmailService{
		client: postmark.NewClient(apiToken, ""),
		sender: sender,
	}
}

// SendEmail sends a basic email to the specified recipient
func (es *EmailService) SendEmail(toEmail, subject, htmlContent string) error {
	if es == nil {
		return nil
	}
	_, err := es.client.SendEmail(postmark.Email{
		From:     es.sender,
		To:       toEmail,
		Subject:  subject,
		HtmlBody: htmlContent,
		TextBody: htmlContent,
	})
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendOrderPlacedEmail sends an order confirmation email to the user
func (es *EmailService) SendOrderPlacedEmail(toEmail string, order models.Order) error {
	subject := "Order Confirmation"
	htmlContent := fmt.Sprintf(
		"<strong>Dear Customer,</strong><br><br>Thank you for your order! It has been placed successfully and will be delivered at <strong>%s</strong>.<br><br>Total Amount: <strong>%.2f</strong><br><br>Thank you for ordering with us!",
		order.DeliveryTime,
		order.Amount,
	)
	return es.SendEmail(toEmail, subject, htmlContent)
}

// SendPaymentVerifiedEmail notifies the user that their card payment went through
func (es *EmailService) SendPaymentVerifiedEmail(toEmail string, order models.Order) error {
	subject := "Payment Received"
	htmlContent := fmt.Sprintf(
		"<strong>Dear Customer,</strong><br><br>We have received your payment for order <strong>%s</strong>. Your food is on its way for <strong>%s</strong>.<br><br>Thank you for ordering with us!",
		order.ID.Hex(),
		order.DeliveryTime,
	)
	return es.SendEmail(toEmail, subject, htmlContent)
}
