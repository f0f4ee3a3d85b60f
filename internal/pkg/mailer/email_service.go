package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendRiskAlert(toEmail, patientID, sessionNoteID, level, category string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

// SendRiskAlert notifies a clinician that a processed session carries a
// safety flag. The mail intentionally omits note content: only identifiers
// and the flag metadata travel over SMTP.
func (s *emailService) SendRiskAlert(toEmail, patientID, sessionNoteID, level, category string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Risk alert: %s (%s)", category, level))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Session Risk Alert</h2>
			<p>A processed session note was flagged for review:</p>
			<ul>
				<li>Patient ID: %s</li>
				<li>Session Note ID: %s</li>
				<li>Category: %s</li>
				<li>Level: %s</li>
			</ul>
			<p>Please review the full note in the clinical dashboard.</p>
		</div>
	`, patientID, sessionNoteID, category, level)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send risk alert to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Risk alert sent to %s\n", toEmail)
	return nil
}
