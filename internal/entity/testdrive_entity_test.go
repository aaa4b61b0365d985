package entity

import (
	"errors"
	"testing"
)

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    TestDriveStatus
		to      TestDriveStatus
		allowed bool
	}{
		{name: "pending to accepted", from: TestDriveStatusPending, to: TestDriveStatusAccepted, allowed: true},
		{name: "pending to rejected", from: TestDriveStatusPending, to: TestDriveStatusRejected, allowed: true},
		{name: "pending to cancelled", from: TestDriveStatusPending, to: TestDriveStatusCancelled, allowed: true},
		{name: "pending to in-progress", from: TestDriveStatusPending, to: TestDriveStatusInProgress, allowed: false},
		{name: "pending to completed", from: TestDriveStatusPending, to: TestDriveStatusCompleted, allowed: false},
		{name: "accepted to in-progress", from: TestDriveStatusAccepted, to: TestDriveStatusInProgress, allowed: true},
		{name: "accepted to cancelled", from: TestDriveStatusAccepted, to: TestDriveStatusCancelled, allowed: true},
		{name: "accepted to completed", from: TestDriveStatusAccepted, to: TestDriveStatusCompleted, allowed: false},
		{name: "accepted to rejected", from: TestDriveStatusAccepted, to: TestDriveStatusRejected, allowed: false},
		{name: "in-progress to completed", from: TestDriveStatusInProgress, to: TestDriveStatusCompleted, allowed: true},
		{name: "in-progress to cancelled", from: TestDriveStatusInProgress, to: TestDriveStatusCancelled, allowed: true},
		{name: "in-progress to accepted", from: TestDriveStatusInProgress, to: TestDriveStatusAccepted, allowed: false},
		{name: "rejected is terminal", from: TestDriveStatusRejected, to: TestDriveStatusPending, allowed: false},
		{name: "completed is terminal", from: TestDriveStatusCompleted, to: TestDriveStatusCancelled, allowed: false},
		{name: "cancelled is terminal", from: TestDriveStatusCancelled, to: TestDriveStatusAccepted, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.CanTransitionTo(tt.to); got != tt.allowed {
				t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tt.from, tt.to, got, tt.allowed)
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	terminal := []TestDriveStatus{TestDriveStatusRejected, TestDriveStatusCompleted, TestDriveStatusCancelled}
	live := []TestDriveStatus{TestDriveStatusPending, TestDriveStatusAccepted, TestDriveStatusInProgress}

	for _, s := range terminal {
		if !s.IsTerminal() {
			t.Errorf("IsTerminal(%s) = false, want true", s)
		}
	}
	for _, s := range live {
		if s.IsTerminal() {
			t.Errorf("IsTerminal(%s) = true, want false", s)
		}
	}
}

func TestRejectRequiresReason(t *testing.T) {
	td := &TestDrive{Status: TestDriveStatusPending}

	if err := td.Reject(""); !errors.Is(err, ErrReasonRequired) {
		t.Fatalf("Reject(\"\") error = %v, want ErrReasonRequired", err)
	}
	if td.Status != TestDriveStatusPending {
		t.Errorf("Status after failed reject = %s, want pending", td.Status)
	}

	if err := td.Reject("car already sold"); err != nil {
		t.Fatalf("Reject(reason) error = %v", err)
	}
	if td.Status != TestDriveStatusRejected {
		t.Errorf("Status = %s, want rejected", td.Status)
	}
	if td.RejectionReason == nil || *td.RejectionReason != "car already sold" {
		t.Errorf("RejectionReason = %v, want 'car already sold'", td.RejectionReason)
	}
}

func TestIllegalTransitionLeavesStateUnchanged(t *testing.T) {
	td := &TestDrive{Status: TestDriveStatusPending}

	if err := td.Complete(); !errors.Is(err, ErrIllegalTransition) {
		t.Fatalf("Complete from pending error = %v, want ErrIllegalTransition", err)
	}
	if td.Status != TestDriveStatusPending {
		t.Errorf("Status = %s, want pending", td.Status)
	}
}

func TestFullLifecycle(t *testing.T) {
	td := &TestDrive{Status: TestDriveStatusPending}

	steps := []struct {
		name string
		op   func() error
		want TestDriveStatus
	}{
		{"accept", td.Accept, TestDriveStatusAccepted},
		{"start", td.Start, TestDriveStatusInProgress},
		{"complete", td.Complete, TestDriveStatusCompleted},
	}

	for _, step := range steps {
		if err := step.op(); err != nil {
			t.Fatalf("%s: %v", step.name, err)
		}
		if td.Status != step.want {
			t.Fatalf("%s: status = %s, want %s", step.name, td.Status, step.want)
		}
	}

	if err := td.Cancel(); !errors.Is(err, ErrIllegalTransition) {
		t.Errorf("Cancel after completion error = %v, want ErrIllegalTransition", err)
	}
}
