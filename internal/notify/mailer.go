package notify

import (
	"fmt"
	"net"
	"net/smtp"
	"strings"
	"time"

	"roomly/pkg/logger"
)

// Mailer renders and delivers a booking notification email.
type Mailer interface {
	Send(event Event) error
}

type smtpMailer struct {
	addr     string
	auth     smtp.Auth
	from     string
	log      *logger.Logger
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPMailer delivers over SMTP. An empty host yields a log-only mailer for
// local development, where every email is written to the log instead of sent.
func NewSMTPMailer(host, port, username, password, from string, log *logger.Logger) Mailer {
	if host == "" {
		log.Warn("SMTP host not configured, notifier running in log-only mode")
		return &logMailer{log: log}
	}

	var auth smtp.Auth
	if username != "" {
		auth = smtp.PlainAuth("", username, password, host)
	}

	return &smtpMailer{
		addr:     net.JoinHostPort(host, port),
		auth:     auth,
		from:     from,
		log:      log,
		sendMail: smtp.SendMail,
	}
}

func (m *smtpMailer) Send(event Event) error {
	if event.Reservation == nil {
		return fmt.Errorf("booking event has no reservation payload")
	}
	if event.Reservation.UserEmail == "" {
		return fmt.Errorf("reservation %s has no recipient email", event.Reservation.ID)
	}

	subject, body := renderEmail(event)
	msg := buildMessage(m.from, event.Reservation.UserEmail, subject, body)

	if err := m.sendMail(m.addr, m.auth, m.from, []string{event.Reservation.UserEmail}, msg); err != nil {
		return fmt.Errorf("failed to send notification email: %w", err)
	}

	m.log.Info("Notification email sent",
		"event_type", event.Type,
		"reservation_id", event.Reservation.ID,
	)
	return nil
}

type logMailer struct {
	log *logger.Logger
}

func (m *logMailer) Send(event Event) error {
	if event.Reservation == nil {
		return fmt.Errorf("booking event has no reservation payload")
	}

	subject, _ := renderEmail(event)
	m.log.Info("Notification email (log-only mode)",
		"event_type", event.Type,
		"reservation_id", event.Reservation.ID,
		"to", event.Reservation.UserEmail,
		"subject", subject,
	)
	return nil
}

func renderEmail(event Event) (subject, body string) {
	r := event.Reservation

	switch event.Type {
	case EventBookingCancelled:
		subject = fmt.Sprintf("Booking cancelled: %s", r.RoomName)
		body = fmt.Sprintf(
			"Hi %s,\r\n\r\nYour booking of %s on %s from %s to %s has been cancelled.\r\n",
			r.UserName, r.RoomName,
			r.StartTime.Format("Mon, 02 Jan 2006"),
			r.StartTime.Format("15:04"), r.EndTime.Format("15:04"),
		)
	default:
		subject = fmt.Sprintf("Booking confirmed: %s", r.RoomName)
		body = fmt.Sprintf(
			"Hi %s,\r\n\r\nYour booking of %s on %s from %s to %s is confirmed.\r\nTitle: %s\r\n",
			r.UserName, r.RoomName,
			r.StartTime.Format("Mon, 02 Jan 2006"),
			r.StartTime.Format("15:04"), r.EndTime.Format("15:04"),
			r.Title,
		)
	}
	return subject, body
}

func buildMessage(from, to, subject, body string) []byte {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("From: %s\r\n", from))
	b.WriteString(fmt.Sprintf("To: %s\r\n", to))
	b.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	b.WriteString(fmt.Sprintf("Date: %s\r\n", time.Now().Format(time.RFC1123Z)))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return []byte(b.String())
}
