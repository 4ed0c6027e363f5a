package notify

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"artify-backend/internal/config"
)

// EmailNotifier sends order emails over SMTP. Delivery is best effort: every
// failure is logged and swallowed, because an undeliverable email must never
// change the outcome of an order.
type EmailNotifier struct {
	host      string
	port      string
	user      string
	password  string
	fromEmail string
	fromName  string
}

func NewEmailNotifier(cfg *config.Config) *EmailNotifier {
	return &EmailNotifier{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		user:      cfg.SMTPUser,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
	}
}

func (n *EmailNotifier) SendCompleted(orderID, email string, resultURLs []string, styleName string, labels [][2]string) {
	if styleName == "" {
		styleName = "a master artist"
	}

	var links strings.Builder
	for i, url := range resultURLs {
		caption := fmt.Sprintf("Portrait %d", i+1)
		if i < len(labels) {
			caption = fmt.Sprintf("%s, %s", labels[i][0], labels[i][1])
		}
		fmt.Fprintf(&links, `<p><a href="%s">%s</a></p>`+"\n", url, caption)
	}

	subject := "Your Artify Portraits are Ready!"
	body := fmt.Sprintf(`
	<h2>Your artwork is complete!</h2>
	<p>Your portraits in the style of <strong>%s</strong> are ready.</p>
	%s
	<p>Order ID: %s</p>
	<p>Thank you for choosing Artify!</p>
	`, styleName, links.String(), orderID)

	n.send(email, subject, body)
}

func (n *EmailNotifier) SendFailed(orderID, email, reason string) {
	subject := "Artify - Issue With Your Order"
	body := fmt.Sprintf(`
	<h2>We're sorry</h2>
	<p>There was an issue processing your artwork (Order: %s).</p>
	<p>Our team has been notified and will look into it. Please contact support if you need assistance.</p>
	<p>Error details: %s</p>
	`, orderID, reason)

	n.send(email, subject, body)
}

func (n *EmailNotifier) send(to, subject, htmlBody string) {
	if n.host == "" {
		log.Printf("No email provider configured. Would send to %s: %s", to, subject)
		return
	}

	msg := strings.Join([]string{
		fmt.Sprintf("From: %s <%s>", n.fromName, n.fromEmail),
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="UTF-8"`,
		"",
		htmlBody,
	}, "\r\n")

	addr := n.host + ":" + n.port
	var auth smtp.Auth
	if n.user != "" && n.password != "" {
		auth = smtp.PlainAuth("", n.user, n.password, n.host)
	}

	if err := smtp.SendMail(addr, auth, n.fromEmail, []string{to}, []byte(msg)); err != nil {
		log.Printf("SMTP send to %s failed: %v", to, err)
		return
	}
	log.Printf("Email sent to %s", to)
}
