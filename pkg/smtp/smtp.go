package smtp

import (
	"fmt"
	smtpPkg "net/smtp"
	"os"
)

type ItfSmtp interface {
	SendRequestApproved(userEmail string, company string, password string) error
	SendRequestRejected(userEmail string, company string, reason string) error
}

type smtp struct {
	auth smtpPkg.Auth
	mail string
	host string
	addr string
}

func New() ItfSmtp {
	mail := os.Getenv("SMTP_MAIL")
	password := os.Getenv("SMTP_PASSWORD")
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		host = "smtp.gmail.com"
	}
	port := os.Getenv("SMTP_PORT")
	if port == "" {
		port = "587"
	}
	auth := smtpPkg.PlainAuth("", mail, password, host)

	return &smtp{
		auth: auth,
		mail: mail,
		host: host,
		addr: fmt.Sprintf("%s:%s", host, port),
	}
}

func (s *smtp) SendRequestApproved(userEmail string, company string, password string) error {
	to := []string{userEmail}

	message := []byte(fmt.Sprintf(
		"To: %s\r\nSubject: Your blog registration was approved\r\n\r\nThe registration request for %s has been approved. You can now sign in to the admin panel with this email and the temporary password: %s",
		userEmail, company, password))

	return smtpPkg.SendMail(s.addr, s.auth, s.mail, to, message)
}

func (s *smtp) SendRequestRejected(userEmail string, company string, reason string) error {
	to := []string{userEmail}

	message := []byte(fmt.Sprintf(
		"To: %s\r\nSubject: Your blog registration was rejected\r\n\r\nThe registration request for %s has been rejected. Reason: %s",
		userEmail, company, reason))

	return smtpPkg.SendMail(s.addr, s.auth, s.mail, to, message)
}
