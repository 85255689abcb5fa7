package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"startupos/config"
)

const emailTemplate = `
<!DOCTYPE html>
<html>
<head>
    <style>
        .container { font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; }
        .header { background-color: #1a73e8; color: white; padding: 20px; text-align: center; }
        .content { padding: 20px; color: #333333; }
        .footer { padding: 15px; text-align: center; font-size: 12px; color: #888888; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header"><h2>STARTUP OS</h2></div>
        <div class="content">%s</div>
        <div class="footer">This is an automated message from Startup OS. Please do not reply.</div>
    </div>
</body>
</html>`

// SendEmail delivers an HTML mail through SendGrid when an API key is
// configured, falling back to SMTP. With neither configured it is a no-op
// so local and test runs never attempt delivery.
func SendEmail(to []string, subject, htmlBody string) error {
	if config.AppConfig == nil {
		return nil
	}
	body := fmt.Sprintf(emailTemplate, htmlBody)

	if config.AppConfig.SendGridKey != "" {
		from := sgmail.NewEmail("Startup OS", config.AppConfig.EmailSender)
		message := sgmail.NewV3Mail()
		message.SetFrom(from)
		message.Subject = subject
		p := sgmail.NewPersonalization()
		for _, addr := range to {
			p.AddTos(sgmail.NewEmail("", addr))
		}
		message.AddPersonalizations(p)
		message.AddContent(sgmail.NewContent("text/html", body))

		client := sendgrid.NewSendClient(config.AppConfig.SendGridKey)
		resp, err := client.Send(message)
		if err != nil {
			return err
		}
		if resp.StatusCode >= 400 {
			return fmt.Errorf("sendgrid rejected mail: %d", resp.StatusCode)
		}
		return nil
	}

	if config.AppConfig.EmailSender == "" {
		return nil
	}

	auth := smtp.PlainAuth("", config.AppConfig.EmailSender, config.AppConfig.EmailPassword, "smtp.gmail.com")
	msg := []byte("From: Startup OS <" + config.AppConfig.EmailSender + ">\r\n" +
		"To: " + strings.Join(to, ",") + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=UTF-8\r\n" +
		"\r\n" + body)

	return smtp.SendMail("smtp.gmail.com:587", auth, config.AppConfig.EmailSender, to, msg)
}

// SendOnboardingReceived confirms a submitted registration.
func SendOnboardingReceived(email, founderName, businessName string) {
	if email == "" {
		return
	}
	content := fmt.Sprintf(`
        <h3>Hello %s,</h3>
        <p>We have received the registration for <strong>%s</strong>.</p>
        <p>The next step is KYC verification. Please submit your documents from the KYC Center.</p>`,
		founderName, businessName)
	if err := SendEmail([]string{email}, "Registration Received - Startup OS", content); err != nil {
		log.Println("Failed to send onboarding email:", err)
	}
}

// SendKYCDecision notifies the founder of the review outcome.
func SendKYCDecision(email, founderName, status, comments string) {
	if email == "" {
		return
	}
	var content string
	if status == "approved" {
		content = fmt.Sprintf(`
        <h3>Hello %s,</h3>
        <p>Your KYC verification has been <strong>approved</strong>.</p>
        <p>Please proceed to the payment step to activate your startup profile.</p>`, founderName)
	} else {
		content = fmt.Sprintf(`
        <h3>Hello %s,</h3>
        <p>Your KYC verification has been <strong>rejected</strong>.</p>
        <p>Reason: %s</p>
        <p>Please correct the issues and submit your documents again.</p>`, founderName, comments)
	}
	if err := SendEmail([]string{email}, "KYC Verification Update - Startup OS", content); err != nil {
		log.Println("Failed to send KYC decision email:", err)
	}
}

// SendPaymentReceipt mails the onboarding fee receipt.
func SendPaymentReceipt(email, founderName, invoiceNumber string, amount float64) {
	if email == "" {
		return
	}
	content := fmt.Sprintf(`
        <h3>Hello %s,</h3>
        <p>Your payment of <strong>INR %.2f</strong> has been received.</p>
        <p>Invoice number: <strong>%s</strong></p>
        <p>Your startup profile is now active. Welcome aboard!</p>`,
		founderName, amount, invoiceNumber)
	if err := SendEmail([]string{email}, "Payment Receipt - Startup OS", content); err != nil {
		log.Println("Failed to send payment receipt email:", err)
	}
}

// SendAuditReminder warns about an upcoming compliance audit.
func SendAuditReminder(email, founderName, auditDate string) {
	if email == "" {
		return
	}
	content := fmt.Sprintf(`
        <h3>Hello %s,</h3>
        <p>This is a reminder that your next compliance audit is scheduled for <strong>%s</strong>.</p>
        <p>Please make sure all required documents are up to date.</p>`,
		founderName, auditDate)
	if err := SendEmail([]string{email}, "Compliance Audit Reminder - Startup OS", content); err != nil {
		log.Println("Failed to send audit reminder email:", err)
	}
}
