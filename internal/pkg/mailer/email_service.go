package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendAssignmentNotice(toEmail, employeeName, scenarioTitle string, dueAt string) error
	SendInvite(toEmail, inviteLink string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	clientURL   string
}

func NewEmailService(host string, port int, username, password, senderEmail, clientURL string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		clientURL:   clientURL,
	}
}

func (s *emailService) SendAssignmentNotice(toEmail, employeeName, scenarioTitle string, dueAt string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "New Training Assignment")

	due := ""
	if dueAt != "" {
		due = fmt.Sprintf("<p>Due by: <b>%s</b></p>", dueAt)
	}

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hi %s,</h2>
			<p>Your manager assigned you a new training scenario:</p>
			<h3>%s</h3>
			%s
			<a href="%s/training" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Start Training</a>
		</div>
	`, employeeName, scenarioTitle, due, s.clientURL)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send assignment notice to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Assignment notice sent to %s\n", toEmail)
	return nil
}

func (s *emailService) SendInvite(toEmail, inviteLink string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "You've been invited")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>You've been invited to join your team's training workspace</h2>
			<p>Click the button below to set up your account:</p>
			<a href="%s" style="background-color: #4CAF50; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Accept Invite</a>
			<p>Or copy this link:</p>
			<p>%s</p>
		</div>
	`, inviteLink, inviteLink)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send invite to %s: %v\n", toEmail, err)
		return err
	}

	return nil
}
