// Package firestorevalidator checks license identifiers against a
// Firestore collection through the REST API.
package firestorevalidator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/user/shotframe/pkg/ports"
)

// DefaultBaseURL is the public Firestore REST endpoint.
const DefaultBaseURL = "https://firestore.googleapis.com/v1"

// Validator looks up documents/<collection>/<identifier> and accepts it
// when the document's isValid field is true.
type Validator struct {
	BaseURL    string
	ProjectID  string
	APIKey     string
	Collection string
	Client     *http.Client
}

// New creates a Validator with a 10 second timeout.
func New(projectID, apiKey, collection string) *Validator {
	return &Validator{
		BaseURL:    DefaultBaseURL,
		ProjectID:  projectID,
		APIKey:     apiKey,
		Collection: collection,
		Client:     &http.Client{Timeout: 10 * time.Second},
	}
}

type document struct {
	Fields map[string]struct {
		BooleanValue *bool `json:"booleanValue"`
	} `json:"fields"`
}

// Validate reports whether the identifier holds an active license.
func (v *Validator) Validate(ctx context.Context, identifier string) (bool, error) {
	if v.ProjectID == "" {
		return false, fmt.Errorf("firestore project is not configured")
	}

	u := fmt.Sprintf("%s/projects/%s/databases/(default)/documents/%s/%s",
		v.BaseURL, url.PathEscape(v.ProjectID), url.PathEscape(v.Collection), url.PathEscape(identifier))
	if v.APIKey != "" {
		u += "?key=" + url.QueryEscape(v.APIKey)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return false, err
	}
	resp, err := v.Client.Do(req)
	if err != nil {
		return false, fmt.Errorf("firestore lookup: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return false, fmt.Errorf("firestore lookup: %s: %s", resp.Status, body)
	}

	var doc document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return false, fmt.Errorf("decode firestore document: %w", err)
	}
	f, ok := doc.Fields["isValid"]
	return ok && f.BooleanValue != nil && *f.BooleanValue, nil
}

var _ ports.LicenseValidator = (*Validator)(nil)
