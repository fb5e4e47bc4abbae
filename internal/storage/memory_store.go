package storage

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
)

// ErrInjected is returned by MemoryStore when a failure is injected.
var ErrInjected = errors.New("injected storage failure")

// MemoryStore keeps everything in a map. It backs tests and can be told to
// fail reads or writes.
type MemoryStore struct {
	mu     sync.RWMutex
	data   map[string]string
	loaded bool

	// FailReads and FailWrites make every Get or Set return ErrInjected.
	FailReads  bool
	FailWrites bool
	// FailKey restricts injected failures to one key when non-empty.
	FailKey string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (s *MemoryStore) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loaded = true
	return nil
}

func (s *MemoryStore) Load() error {
	return s.Init()
}

func (s *MemoryStore) Close() error {
	return nil
}

func (s *MemoryStore) fails(flag bool, key string) bool {
	return flag && (s.FailKey == "" || s.FailKey == key)
}

func (s *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return "", false, ErrNotLoaded
	}
	if s.fails(s.FailReads, key) {
		return "", false, ErrInjected
	}
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		return ErrNotLoaded
	}
	if s.fails(s.FailWrites, key) {
		return ErrInjected
	}
	s.data[key] = value
	return nil
}

func (s *MemoryStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return nil, ErrNotLoaded
	}
	keys := make([]string, 0)
	for k := range s.data {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// Raw writes value without any checks, for seeding malformed data in tests.
func (s *MemoryStore) Raw(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}

func (s *MemoryStore) GetConfigPath() string {
	return ":memory:"
}
