package mocks

import (
	"context"
	"sync"

	"github.com/user/shotframe/pkg/ports"
)

// LicenseStore keeps a license in memory.
type LicenseStore struct {
	mu      sync.Mutex
	license *ports.License

	LoadErr   error
	SaveErr   error
	RemoveErr error
}

func (m *LicenseStore) Load(ctx context.Context) (*ports.License, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.license == nil {
		return nil, nil
	}
	lic := *m.license
	return &lic, nil
}

func (m *LicenseStore) Save(ctx context.Context, license ports.License) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.license = &license
	return nil
}

func (m *LicenseStore) Remove(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RemoveErr != nil {
		return m.RemoveErr
	}
	m.license = nil
	return nil
}

// LicenseValidator accepts the identifiers in Valid.
type LicenseValidator struct {
	Valid map[string]bool
	Err   error
	Calls []string
}

func (m *LicenseValidator) Validate(ctx context.Context, identifier string) (bool, error) {
	m.Calls = append(m.Calls, identifier)
	if m.Err != nil {
		return false, m.Err
	}
	return m.Valid[identifier], nil
}

// Entitlement is a fixed entitlement answer.
type Entitlement struct {
	Pro bool
}

func (m *Entitlement) IsEntitled(ctx context.Context) bool { return m.Pro }

func (m *Entitlement) Activate(ctx context.Context, identifier string) ports.ActivationResult {
	m.Pro = true
	return ports.ActivationResult{Success: true}
}

func (m *Entitlement) Deactivate(ctx context.Context) error {
	m.Pro = false
	return nil
}

var (
	_ ports.LicenseStore     = (*LicenseStore)(nil)
	_ ports.LicenseValidator = (*LicenseValidator)(nil)
	_ ports.Entitlement      = (*Entitlement)(nil)
)
