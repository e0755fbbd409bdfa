package entitlement

import (
	"context"
	"strings"
	"time"

	"github.com/user/shotframe/pkg/ports"
)

// Activation failure messages shown to the user.
const (
	MsgEmptyIdentifier = "Enter the email address used during checkout."
	MsgNotFound        = "No active Pro license found for this email. Make sure you used the same email during checkout."
	MsgLookupFailed    = "Network error or license service not configured. Please try again."
	MsgSaveFailed      = "Failed to save license locally"
)

// Service implements ports.Entitlement on a local store and a remote
// validator.
type Service struct {
	store     ports.LicenseStore
	validator ports.LicenseValidator
	logger    ports.Logger
	now       func() time.Time
}

// NewService creates a Service.
func NewService(store ports.LicenseStore, validator ports.LicenseValidator, logger ports.Logger) *Service {
	return &Service{store: store, validator: validator, logger: logger, now: time.Now}
}

// NormalizeIdentifier trims and lower-cases a license identifier.
func NormalizeIdentifier(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// IsEntitled reports whether a valid license is stored.
func (s *Service) IsEntitled(ctx context.Context) bool {
	lic, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Warn("License lookup failed: %s", err)
		return false
	}
	return lic != nil && lic.Valid
}

// License returns the stored license, or nil.
func (s *Service) License(ctx context.Context) (*ports.License, error) {
	return s.store.Load(ctx)
}

// Activate validates the identifier and stores the license on success.
func (s *Service) Activate(ctx context.Context, identifier string) ports.ActivationResult {
	id := NormalizeIdentifier(identifier)
	if id == "" {
		return ports.ActivationResult{Error: MsgEmptyIdentifier}
	}

	ok, err := s.validator.Validate(ctx, id)
	if err != nil {
		s.logger.Warn("License lookup failed: %s", err)
		return ports.ActivationResult{Error: MsgLookupFailed}
	}
	if !ok {
		return ports.ActivationResult{Error: MsgNotFound}
	}

	lic := ports.License{
		Key:         id,
		Email:       id,
		ActivatedAt: s.now().UTC(),
		Valid:       true,
	}
	if err := s.store.Save(ctx, lic); err != nil {
		s.logger.Error("Failed to write output: %s", err)
		return ports.ActivationResult{Error: MsgSaveFailed}
	}
	s.logger.Info("License activated for %s", id)
	return ports.ActivationResult{Success: true}
}

// Deactivate removes the stored license.
func (s *Service) Deactivate(ctx context.Context) error {
	if err := s.store.Remove(ctx); err != nil {
		return err
	}
	s.logger.Info("License deactivated")
	return nil
}
