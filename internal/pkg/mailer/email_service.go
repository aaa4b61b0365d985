package mailer

import (
	"fmt"
	"os"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendTestDriveUpdate(toEmail, carName, status, note string) error
	SendRoleChangeDecision(toEmail, status, note string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	frontendURL string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	frontendURL := os.Getenv("FRONTEND_URL")

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		frontendURL: frontendURL,
	}
}

func (s *emailService) SendTestDriveUpdate(toEmail, carName, status, note string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Test Drive Update: %s", carName))

	noteBlock := ""
	if note != "" {
		noteBlock = fmt.Sprintf("<p>Note from the dealer: %s</p>", note)
	}

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Test Drive Update</h2>
			<p>Your test drive request for <strong>%s</strong> is now <strong>%s</strong>.</p>
			%s
			<p>Open your dashboard to see the details: %s/testdrives</p>
		</div>
	`, carName, status, noteBlock, s.frontendURL)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send test drive update to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Test drive update sent to %s\n", toEmail)
	return nil
}

func (s *emailService) SendRoleChangeDecision(toEmail, status, note string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Your Dealer Application")

	noteBlock := ""
	if note != "" {
		noteBlock = fmt.Sprintf("<p>Reviewer note: %s</p>", note)
	}

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Dealer Application %s</h2>
			<p>Your request to become a dealer has been <strong>%s</strong>.</p>
			%s
			<p>Sign in to continue: %s/login</p>
		</div>
	`, status, status, noteBlock, s.frontendURL)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send role decision to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Role decision sent to %s\n", toEmail)
	return nil
}
