package domain

import (
	"github.com/google/uuid"
)

// AccountID uniquely identifies a seller account (the tenant).
type AccountID uuid.UUID

// UserID uniquely identifies a user within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type UserID uuid.UUID

// ScanID uniquely identifies a label scan.
type ScanID uuid.UUID

// PaymentID uniquely identifies a recorded payment.
type PaymentID uuid.UUID

// InviteID uniquely identifies an account invite.
type InviteID uuid.UUID

// RuleID uniquely identifies a regulatory rule.
type RuleID uuid.UUID

func (id AccountID) String() string { return uuid.UUID(id).String() }
func (id UserID) String() string    { return uuid.UUID(id).String() }
func (id ScanID) String() string    { return uuid.UUID(id).String() }
func (id PaymentID) String() string { return uuid.UUID(id).String() }
func (id InviteID) String() string  { return uuid.UUID(id).String() }
func (id RuleID) String() string    { return uuid.UUID(id).String() }

func (id AccountID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }
func (id UserID) MarshalText() ([]byte, error)    { return uuid.UUID(id).MarshalText() }
func (id ScanID) MarshalText() ([]byte, error)    { return uuid.UUID(id).MarshalText() }
func (id PaymentID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }
func (id InviteID) MarshalText() ([]byte, error)  { return uuid.UUID(id).MarshalText() }
func (id RuleID) MarshalText() ([]byte, error)    { return uuid.UUID(id).MarshalText() }

func (id *AccountID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *UserID) UnmarshalText(b []byte) error    { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *ScanID) UnmarshalText(b []byte) error    { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *PaymentID) UnmarshalText(b []byte) error { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *InviteID) UnmarshalText(b []byte) error  { return (*uuid.UUID)(id).UnmarshalText(b) }
func (id *RuleID) UnmarshalText(b []byte) error    { return (*uuid.UUID)(id).UnmarshalText(b) }
