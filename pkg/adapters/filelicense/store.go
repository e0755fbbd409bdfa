// Package filelicense stores the license record as a YAML file.
package filelicense

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"gopkg.in/yaml.v3"

	"github.com/user/shotframe/pkg/ports"
)

// Store reads and writes one YAML document.
type Store struct {
	path string
	fs   ports.FileSystem
}

// New creates a Store at path.
func New(path string, fs ports.FileSystem) *Store {
	return &Store{path: path, fs: fs}
}

func (s *Store) Load(ctx context.Context) (*ports.License, error) {
	data, err := s.fs.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read license: %w", err)
	}
	var lic ports.License
	if err := yaml.Unmarshal(data, &lic); err != nil {
		return nil, fmt.Errorf("parse license %s: %w", s.path, err)
	}
	return &lic, nil
}

func (s *Store) Save(ctx context.Context, lic ports.License) error {
	data, err := yaml.Marshal(lic)
	if err != nil {
		return fmt.Errorf("marshal license: %w", err)
	}
	return s.fs.WriteFile(s.path, data)
}

func (s *Store) Remove(ctx context.Context) error {
	return s.fs.Remove(s.path)
}

var _ ports.LicenseStore = (*Store)(nil)
