package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type TestDriveStatus string

const (
	TestDriveStatusPending    TestDriveStatus = "pending"
	TestDriveStatusAccepted   TestDriveStatus = "accepted"
	TestDriveStatusRejected   TestDriveStatus = "rejected"
	TestDriveStatusInProgress TestDriveStatus = "in-progress"
	TestDriveStatusCompleted  TestDriveStatus = "completed"
	TestDriveStatusCancelled  TestDriveStatus = "cancelled"
)

var (
	ErrIllegalTransition = errors.New("illegal test drive status transition")
	ErrReasonRequired    = errors.New("rejection reason is required")
)

// transitions is the full status graph. Terminal states have no entry.
var transitions = map[TestDriveStatus][]TestDriveStatus{
	TestDriveStatusPending:    {TestDriveStatusAccepted, TestDriveStatusRejected, TestDriveStatusCancelled},
	TestDriveStatusAccepted:   {TestDriveStatusInProgress, TestDriveStatusCancelled},
	TestDriveStatusInProgress: {TestDriveStatusCompleted, TestDriveStatusCancelled},
}

func (s TestDriveStatus) CanTransitionTo(next TestDriveStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s TestDriveStatus) IsTerminal() bool {
	return len(transitions[s]) == 0
}

type TestDrive struct {
	Id              uuid.UUID
	CarId           uuid.UUID
	BuyerId         uuid.UUID
	DealerId        uuid.UUID
	Status          TestDriveStatus
	ScheduledAt     time.Time
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       *time.Time
}

// transition moves the record to next, or fails leaving state unchanged.
func (t *TestDrive) transition(next TestDriveStatus) error {
	if !t.Status.CanTransitionTo(next) {
		return ErrIllegalTransition
	}
	t.Status = next
	return nil
}

func (t *TestDrive) Accept() error {
	return t.transition(TestDriveStatusAccepted)
}

func (t *TestDrive) Reject(reason string) error {
	if reason == "" {
		return ErrReasonRequired
	}
	if err := t.transition(TestDriveStatusRejected); err != nil {
		return err
	}
	t.RejectionReason = &reason
	return nil
}

func (t *TestDrive) Start() error {
	return t.transition(TestDriveStatusInProgress)
}

func (t *TestDrive) Complete() error {
	return t.transition(TestDriveStatusCompleted)
}

func (t *TestDrive) Cancel() error {
	return t.transition(TestDriveStatusCancelled)
}
