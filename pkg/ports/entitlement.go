package ports

import (
	"context"
	"time"
)

// Entitlement answers whether Pro features are unlocked.
type Entitlement interface {
	// IsEntitled reports whether a valid license is active.
	// Lookup failures count as not entitled.
	IsEntitled(ctx context.Context) bool

	// Activate validates the identifier remotely and stores the license.
	Activate(ctx context.Context, identifier string) ActivationResult

	// Deactivate removes the stored license.
	Deactivate(ctx context.Context) error
}

// ActivationResult reports the outcome of Activate.
type ActivationResult struct {
	Success bool
	Error   string
}

// License is the locally stored entitlement record.
type License struct {
	Key         string    `yaml:"license_key" json:"licenseKey"`
	Email       string    `yaml:"email" json:"email"`
	ActivatedAt time.Time `yaml:"activated_at" json:"activatedAt"`
	Valid       bool      `yaml:"is_valid" json:"isValid"`
}

// LicenseStore persists the local license record.
type LicenseStore interface {
	// Load returns the stored license, or nil when none is stored.
	Load(ctx context.Context) (*License, error)

	// Save replaces the stored license.
	Save(ctx context.Context, license License) error

	// Remove deletes the stored license.
	Remove(ctx context.Context) error
}

// LicenseValidator checks an identifier against the remote entitlement store.
type LicenseValidator interface {
	// Validate returns true when the identifier holds an active license.
	// A nil error with false means the identifier is unknown or inactive.
	Validate(ctx context.Context, identifier string) (bool, error)
}
