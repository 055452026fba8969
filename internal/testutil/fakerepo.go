package testutil

import (
	"sync"

	"simpletasks/internal/store"
)

// FakeRepository is an in-memory snapshot holder for testing the dispatcher.
// The snapshot is kept as encoded bytes so loads go through the real decoder.
type FakeRepository struct {
	mu     sync.Mutex
	data   []byte
	exists bool

	// Saves and Removes count successful calls.
	Saves   int
	Removes int

	// Error injection for testing
	LoadErr   error
	SaveErr   error
	RemoveErr error
}

// NewFakeRepository creates a repository with no snapshot.
func NewFakeRepository() *FakeRepository {
	return &FakeRepository{}
}

// SetRaw installs raw snapshot bytes, valid or not.
func (f *FakeRepository) SetRaw(data string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data = []byte(data)
	f.exists = true
}

// Raw returns the snapshot bytes and whether a snapshot exists.
func (f *FakeRepository) Raw() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return string(f.data), f.exists
}

// Path implements cli.Repository.
func (f *FakeRepository) Path() string {
	return "fake.json"
}

// Load implements cli.Repository.
func (f *FakeRepository) Load() (*store.Store, error) {
	if f.LoadErr != nil {
		return nil, f.LoadErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.exists {
		return store.New(), nil
	}
	s, err := store.Decode(f.data)
	if err != nil {
		return nil, &store.CorruptedError{Path: f.Path(), Err: err}
	}
	return s, nil
}

// Save implements cli.Repository.
func (f *FakeRepository) Save(s *store.Store) error {
	if f.SaveErr != nil {
		return f.SaveErr
	}
	data, err := store.Encode(s)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data = data
	f.exists = true
	f.Saves++
	return nil
}

// Remove implements cli.Repository.
func (f *FakeRepository) Remove() error {
	if f.RemoveErr != nil {
		return f.RemoveErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data = nil
	f.exists = false
	f.Removes++
	return nil
}
