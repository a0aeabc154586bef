package notify

import (
	"io"
	"net/smtp"
	"strings"
	"testing"
	"time"

	"roomly/pkg/logger"
	"roomly/pkg/model"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Output: io.Discard})
}

func testEvent(eventType string) Event {
	return Event{
		Type: eventType,
		Reservation: &model.Reservation{
			ID:        "64a0b1c2d3e4f5a6b7c8d9e9",
			Title:     "Sprint planning",
			RoomName:  "Boardroom",
			UserName:  "Dana",
			UserEmail: "dana@example.com",
			StartTime: time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC),
		},
	}
}

func TestSMTPMailerSend(t *testing.T) {
	var gotFrom, gotMsg string
	var gotTo []string

	m := &smtpMailer{
		addr: "mail.example.com:587",
		from: "bookings@roomly.local",
		log:  testLogger(),
		sendMail: func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
			gotFrom = from
			gotTo = to
			gotMsg = string(msg)
			return nil
		},
	}

	if err := m.Send(testEvent(EventBookingCreated)); err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	if gotFrom != "bookings@roomly.local" {
		t.Fatalf("unexpected sender %q", gotFrom)
	}
	if len(gotTo) != 1 || gotTo[0] != "dana@example.com" {
		t.Fatalf("expected recipient from reservation, got %v", gotTo)
	}
	if !strings.Contains(gotMsg, "Subject: Booking confirmed: Boardroom") {
		t.Fatalf("expected confirmation subject, got:\n%s", gotMsg)
	}
	if !strings.Contains(gotMsg, "10:00 to 11:00") {
		t.Fatalf("expected time window in body, got:\n%s", gotMsg)
	}
}

func TestSMTPMailerCancellationSubject(t *testing.T) {
	var gotMsg string
	m := &smtpMailer{
		addr: "mail.example.com:587",
		from: "bookings@roomly.local",
		log:  testLogger(),
		sendMail: func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
			gotMsg = string(msg)
			return nil
		},
	}

	if err := m.Send(testEvent(EventBookingCancelled)); err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if !strings.Contains(gotMsg, "Subject: Booking cancelled: Boardroom") {
		t.Fatalf("expected cancellation subject, got:\n%s", gotMsg)
	}
}

func TestSMTPMailerRejectsMissingRecipient(t *testing.T) {
	m := &smtpMailer{
		addr: "mail.example.com:587",
		from: "bookings@roomly.local",
		log:  testLogger(),
		sendMail: func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
			t.Fatal("sendMail must not be called without a recipient")
			return nil
		},
	}

	event := testEvent(EventBookingCreated)
	event.Reservation.UserEmail = ""
	if err := m.Send(event); err == nil {
		t.Fatal("expected error for missing recipient")
	}

	if err := m.Send(Event{Type: EventBookingCreated}); err == nil {
		t.Fatal("expected error for missing reservation payload")
	}
}

func TestNewSMTPMailerLogOnlyMode(t *testing.T) {
	m := NewSMTPMailer("", "587", "", "", "bookings@roomly.local", testLogger())

	if _, ok := m.(*logMailer); !ok {
		t.Fatalf("expected log-only mailer without an SMTP host, got %T", m)
	}
	if err := m.Send(testEvent(EventBookingCreated)); err != nil {
		t.Fatalf("log-only send must succeed, got %v", err)
	}
}
