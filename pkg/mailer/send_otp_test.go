package mailer

import (
	"context"
	"strings"
	"testing"
)

func TestSendOTPMail(t *testing.T) {
	mock := NewMockClient()
	SetClient(mock)

	if err := SendOTPMail(context.Background(), "hr@example.com", "482913"); err != nil {
		t.Fatalf("SendOTPMail returned error: %v", err)
	}

	if len(mock.Sends) != 1 {
		t.Fatalf("expected 1 send, got %d", len(mock.Sends))
	}

	sent := mock.Sends[0]
	if len(sent.To) != 1 || sent.To[0] != "hr@example.com" {
		t.Errorf("unexpected recipients: %v", sent.To)
	}
	if !strings.Contains(sent.Body, "482913") {
		t.Errorf("mail body should contain the code, got %q", sent.Body)
	}
}

func TestSendLeaveStatusMail(t *testing.T) {
	mock := NewMockClient()
	SetClient(mock)

	err := SendLeaveStatusMail(context.Background(), "jane@example.com", "Jane Cooper", "sick_leave", "approved")
	if err != nil {
		t.Fatalf("SendLeaveStatusMail returned error: %v", err)
	}

	sent := mock.Sends[0]
	if !strings.Contains(sent.Subject, "approved") {
		t.Errorf("subject should carry the decision, got %q", sent.Subject)
	}
	if !strings.Contains(sent.Body, "Jane Cooper") || !strings.Contains(sent.Body, "sick_leave") {
		t.Errorf("body should name the employee and leave type, got %q", sent.Body)
	}
}

func TestSendFailurePropagates(t *testing.T) {
	mock := NewMockClient()
	mock.FailNext = true
	SetClient(mock)

	if err := SendOTPMail(context.Background(), "hr@example.com", "000000"); err == nil {
		t.Fatal("expected error from failing client")
	}
}
