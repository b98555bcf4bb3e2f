package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"lms/config"
)

// SendEmail sends an HTML email through the configured SMTP relay.
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := config.AppConfig.SMTPHost
	smtpPort := config.AppConfig.SMTPPort

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Dharma Academy <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg)); err != nil {
		log.Printf("Error sending email to %v: %v", to, err)
		return err
	}
	return nil
}

// EmailTemplate wraps body content in the platform's HTML shell.
func EmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #2D1B4E; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #2D1B4E; line-height: 1.6; }
			.content h2 { color: #2D1B4E; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.info-box { background: #F3EDFE; padding: 15px; border-radius: 4px; border-left: 4px solid #D7B56D; margin: 20px 0; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>%s</h1>
			</div>
			<div class="content">
				%s
			</div>
			<div class="footer">
				This is an automated message from Dharma Academy. Please do not reply.
			</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}

// SendWelcomeEmail greets a freshly registered user.
func SendWelcomeEmail(email, fullName string) {
	body := fmt.Sprintf(`
		<h2>Welcome, %s!</h2>
		<p>Your account has been created. Browse the course catalog and start learning.</p>`, fullName)

	if err := SendEmail([]string{email}, "Welcome to Dharma Academy", EmailTemplate("Welcome", body)); err != nil {
		log.Printf("Failed to send welcome email to %s: %v", email, err)
	}
}

// SendEnrollmentEmail confirms a course enrollment.
func SendEnrollmentEmail(email, fullName, courseTitle string) {
	body := fmt.Sprintf(`
		<h2>Hi %s,</h2>
		<p>You are now enrolled in:</p>
		<div class="info-box"><strong>%s</strong></div>
		<p>Good luck with your studies!</p>`, fullName, courseTitle)

	if err := SendEmail([]string{email}, "Enrollment confirmed", EmailTemplate("Enrollment Confirmed", body)); err != nil {
		log.Printf("Failed to send enrollment email to %s: %v", email, err)
	}
}

// SendTeacherDigestEmail sends a teacher the weekly enrollment summary.
func SendTeacherDigestEmail(email, fullName string, newEnrollments int64) {
	body := fmt.Sprintf(`
		<h2>Hi %s,</h2>
		<p>Your courses received <strong>%d</strong> new enrollment(s) last week.</p>
		<p>Log in to see who joined.</p>`, fullName, newEnrollments)

	if err := SendEmail([]string{email}, "Your weekly enrollment digest", EmailTemplate("Weekly Digest", body)); err != nil {
		log.Printf("Failed to send digest email to %s: %v", email, err)
	}
}
