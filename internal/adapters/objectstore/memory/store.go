// Package memory is an in-process ports.ObjectStore for local runs and tests.
package memory

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/jsamuelsen11/project-service/internal/domain"
	"github.com/jsamuelsen11/project-service/internal/ports"
)

// Compile-time check that Store implements ports.ObjectStore.
var _ ports.ObjectStore = (*Store)(nil)

type object struct {
	data        []byte
	contentType string
}

// Store keeps object bodies in a map.
type Store struct {
	mu      sync.RWMutex
	objects map[string]object
}

// New creates an empty Store.
func New() *Store {
	return &Store{objects: make(map[string]object)}
}

// Put stores body under key unless the key is taken.
func (s *Store) Put(ctx context.Context, key string, body io.Reader, _ int64, contentType string) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("reading body for %s: %w", key, err)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.objects[key]; taken {
		return fmt.Errorf("object %s: %w", key, domain.ErrConflict)
	}
	s.objects[key] = object{data: data, contentType: contentType}
	return nil
}

func (s *Store) Get(_ context.Context, key string) (*ports.Object, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	obj, ok := s.objects[key]
	if !ok {
		return nil, fmt.Errorf("object %s: %w", key, domain.ErrNotFound)
	}
	return &ports.Object{
		Body:        io.NopCloser(bytes.NewReader(obj.data)),
		ContentType: obj.contentType,
		Size:        int64(len(obj.data)),
	}, nil
}

func (s *Store) Exists(_ context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.objects[key]
	return ok, nil
}

func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

// Keys returns the stored keys in no particular order.
func (s *Store) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.objects))
	for k := range s.objects {
		keys = append(keys, k)
	}
	return keys
}

// Name identifies the store in readiness output.
func (s *Store) Name() string { return "object-store" }

// HealthCheck always succeeds.
func (s *Store) HealthCheck(context.Context) error { return nil }
