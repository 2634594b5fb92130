package email

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // Base URL for email links (e.g., "http://localhost:8081")
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

func (s *SMTPEmailService) SendPermitAssignedEmail(to, permitNumber, permitTitle string, deadline time.Time) error {
	permitURL := fmt.Sprintf("%s/permits/%s", s.config.BaseURL, permitNumber)

	subject := fmt.Sprintf("Permit %s Awaiting Your Approval", permitNumber)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Permit Awaiting Approval</h2>
			<p>Permit <strong>%s</strong> (%s) has been assigned to you for approval.</p>
			<p>Please review it before <strong>%s</strong>, after which it may be escalated.</p>
			<p><a href="%s">Review Permit</a></p>
		</body>
		</html>
	`, permitNumber, permitTitle, deadline.Format("2006-01-02 15:04"), permitURL)

	plainBody := fmt.Sprintf(`
Permit Awaiting Approval

Permit %s (%s) has been assigned to you for approval.

Please review it before %s, after which it may be escalated:
%s
	`, permitNumber, permitTitle, deadline.Format("2006-01-02 15:04"), permitURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendApprovalRedirectedEmail(to, permitNumber, permitTitle string) error {
	permitURL := fmt.Sprintf("%s/permits/%s", s.config.BaseURL, permitNumber)

	subject := fmt.Sprintf("Permit %s Redirected to You", permitNumber)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Permit Redirected</h2>
			<p>Permit <strong>%s</strong> (%s) passed its approval deadline and has been redirected to your queue.</p>
			<p>Please review it as soon as possible.</p>
			<p><a href="%s">Review Permit</a></p>
		</body>
		</html>
	`, permitNumber, permitTitle, permitURL)

	plainBody := fmt.Sprintf(`
Permit Redirected

Permit %s (%s) passed its approval deadline and has been redirected to your queue.

Please review it as soon as possible:
%s
	`, permitNumber, permitTitle, permitURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendApprovalOverdueEmail(to, permitNumber, permitTitle string, deadline time.Time) error {
	permitURL := fmt.Sprintf("%s/permits/%s", s.config.BaseURL, permitNumber)

	subject := fmt.Sprintf("Permit %s Is Overdue", permitNumber)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Approval Overdue</h2>
			<p>Permit <strong>%s</strong> (%s) was not reviewed before its deadline of %s.</p>
			<p><a href="%s">View Permit</a></p>
		</body>
		</html>
	`, permitNumber, permitTitle, deadline.Format("2006-01-02 15:04"), permitURL)

	plainBody := fmt.Sprintf(`
Approval Overdue

Permit %s (%s) was not reviewed before its deadline of %s.

View permit:
%s
	`, permitNumber, permitTitle, deadline.Format("2006-01-02 15:04"), permitURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendPermitDecidedEmail(to, permitNumber, permitTitle, status, reason string) error {
	permitURL := fmt.Sprintf("%s/permits/%s", s.config.BaseURL, permitNumber)

	subject := fmt.Sprintf("Permit %s Has Been %s", permitNumber, status)
	reasonLine := ""
	if reason != "" {
		reasonLine = fmt.Sprintf("<p>Reason: %s</p>", reason)
	}
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Permit Decision</h2>
			<p>Permit <strong>%s</strong> (%s) has been <strong>%s</strong>.</p>
			%s
			<p><a href="%s">View Permit</a></p>
		</body>
		</html>
	`, permitNumber, permitTitle, status, reasonLine, permitURL)

	plainReason := ""
	if reason != "" {
		plainReason = fmt.Sprintf("Reason: %s\n", reason)
	}
	plainBody := fmt.Sprintf(`
Permit Decision

Permit %s (%s) has been %s.
%s
View permit:
%s
	`, permitNumber, permitTitle, status, plainReason, permitURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.config.FromAddress)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
