// Package smtp implements the notification dispatcher over SMTP. One email
// per order status change, with a per-status subject and message.
package smtp

import (
	"context"
	"fmt"
	"html"

	"campuseats/internal/core/domain/model/order"
	"campuseats/internal/core/ports"

	"github.com/wneessen/go-mail"
)

// statusContent is the subject and lead sentence used for each order status.
type statusContent struct {
	subject string
	message string
}

func getStatusContents() map[order.Status]statusContent {
	return map[order.Status]statusContent{
		order.Sent: {
			subject: "Order Confirmed - CampusEats",
			message: "Your order has been confirmed and sent to the restaurant.",
		},
		order.Received: {
			subject: "Order Received - CampusEats",
			message: "The restaurant has received your order and is preparing it.",
		},
		order.Shipping: {
			subject: "Order Out for Delivery - CampusEats",
			message: "Your order is on its way! Our delivery robot is bringing it to you.",
		},
		order.Delivered: {
			subject: "Order Delivered - CampusEats",
			message: "Your order has been delivered! Enjoy your meal.",
		},
	}
}

// Config carries the SMTP connection settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer sends order status emails over SMTP. Implements
// ports.NotificationDispatcher.
type Mailer struct {
	client *mail.Client
	from   string
}

// NewMailer creates a mailer from the given SMTP settings.
func NewMailer(cfg Config) (*Mailer, error) {
	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
	)
	if err != nil {
		return nil, err
	}

	return &Mailer{
		client: client,
		from:   cfg.From,
	}, nil
}

// DispatchStatusChange sends the status email for one order. Callers treat
// the returned error as advisory: a failed email never fails the order
// update that triggered it.
func (m *Mailer) DispatchStatusChange(ctx context.Context, n ports.StatusNotification) error {
	subject, text, html, err := renderStatusEmail(n)
	if err != nil {
		return err
	}

	msg := mail.NewMsg()
	if err = msg.FromFormat("CampusEats", m.from); err != nil {
		return err
	}
	if err = msg.To(n.RecipientEmail); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, text)
	msg.AddAlternativeString(mail.TypeTextHTML, html)

	return m.client.DialAndSendWithContext(ctx, msg)
}

// renderStatusEmail produces the subject and both bodies for a notification.
func renderStatusEmail(n ports.StatusNotification) (subject, text, html string, err error) {
	content, ok := getStatusContents()[n.Status]
	if !ok {
		return "", "", "", fmt.Errorf("no email content for status %s", n.Status)
	}

	statusLabel := titleCase(n.Status.String())

	text = fmt.Sprintf(`CampusEats - Order Status Update

Hello %s,

%s

Order Number: #%d
Status: %s
Restaurant: %s
Delivery Location: %s

You can track your order status at any time by visiting our website.

---
This is an automated email. Please do not reply to this message.
`, n.RecipientName, content.message, n.OrderNumber, statusLabel, n.RestaurantName, n.DeliveryLocation)

	// Recipient name and delivery location originate from user input and must
	// not reach the HTML body unescaped.
	html = fmt.Sprintf(`<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background-color: #f8f9fa; padding: 30px; border-radius: 8px;">
      <h1 style="color: #2563eb; margin-top: 0;">CampusEats</h1>
      <h2 style="color: #1f2937;">Order Status Update</h2>
      <p>Hello %s,</p>
      <p>%s</p>
      <div style="background-color: #ffffff; padding: 20px; border-radius: 6px; border-left: 4px solid #2563eb;">
        <p style="margin: 0;"><strong>Order Number:</strong> #%d</p>
        <p style="margin: 10px 0 0 0;"><strong>Status:</strong> %s</p>
        <p style="margin: 10px 0 0 0;"><strong>Restaurant:</strong> %s</p>
        <p style="margin: 10px 0 0 0;"><strong>Delivery Location:</strong> %s</p>
      </div>
      <p style="margin-top: 30px;">You can track your order status at any time by visiting our website.</p>
      <p style="color: #6b7280; font-size: 12px;">This is an automated email. Please do not reply to this message.</p>
    </div>
  </body>
</html>`, escape(n.RecipientName), content.message, n.OrderNumber, statusLabel,
		escape(n.RestaurantName), escape(n.DeliveryLocation))

	return content.subject, text, html, nil
}

// escape exists because renderStatusEmail's html return value shadows the
// html package inside that function.
func escape(s string) string {
	return html.EscapeString(s)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	lower := []byte(s)
	for i := 1; i < len(lower); i++ {
		if lower[i] >= 'A' && lower[i] <= 'Z' {
			lower[i] += 'a' - 'A'
		}
	}
	return string(lower)
}

// NoopDispatcher is used when SMTP is not configured: notifications are
// acknowledged and dropped so the rest of the system behaves identically.
type NoopDispatcher struct{}

// NewNoopDispatcher creates a dispatcher that drops every notification.
func NewNoopDispatcher() NoopDispatcher {
	return NoopDispatcher{}
}

// DispatchStatusChange drops the notification.
func (NoopDispatcher) DispatchStatusChange(_ context.Context, _ ports.StatusNotification) error {
	return nil
}
