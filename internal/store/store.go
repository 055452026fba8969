// Package store holds the title-keyed task collection and its persisted snapshot.
package store

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultDescription replaces an empty description on creation and edit.
const DefaultDescription = "no description"

var (
	// ErrDuplicateTitle is returned when a title is already taken.
	ErrDuplicateTitle = errors.New("already exists")

	// ErrUnknownTitle is returned when no task has the given title.
	ErrUnknownTitle = errors.New("does not exist")

	// ErrInvalidTitle is returned for empty or whitespace-only titles.
	ErrInvalidTitle = errors.New("invalid task name")
)

// Task is a single record. Its title lives in the Store key, not here.
type Task struct {
	Description string
	Completed   bool
}

// Entry pairs a title with a copy of its task.
type Entry struct {
	Title string
	Task  Task
}

// Store maps titles to tasks and remembers insertion order so that
// listing and saving are deterministic.
type Store struct {
	titles []string
	tasks  map[string]Task
}

// New returns an empty store.
func New() *Store {
	return &Store{tasks: make(map[string]Task)}
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.titles)
}

// Has reports whether a task with the given title exists.
func (s *Store) Has(title string) bool {
	_, ok := s.tasks[title]
	return ok
}

// Get returns the task stored under title.
func (s *Store) Get(title string) (Task, bool) {
	t, ok := s.tasks[title]
	return t, ok
}

// Entries returns copies of all tasks in insertion order.
func (s *Store) Entries() []Entry {
	out := make([]Entry, 0, len(s.titles))
	for _, title := range s.titles {
		out = append(out, Entry{Title: title, Task: s.tasks[title]})
	}
	return out
}

// ValidateTitle rejects empty and whitespace-only titles.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("%w: %q", ErrInvalidTitle, title)
	}
	return nil
}

// Add inserts a new incomplete task. An empty description becomes
// DefaultDescription.
func (s *Store) Add(title, description string) error {
	if err := ValidateTitle(title); err != nil {
		return err
	}
	if s.Has(title) {
		return fmt.Errorf("task %s %w", title, ErrDuplicateTitle)
	}
	s.put(title, Task{Description: normalizeDescription(description)})
	return nil
}

// Delete removes the task stored under title.
func (s *Store) Delete(title string) error {
	if !s.Has(title) {
		return fmt.Errorf("task %s %w", title, ErrUnknownTitle)
	}
	delete(s.tasks, title)
	for i, t := range s.titles {
		if t == title {
			s.titles = append(s.titles[:i], s.titles[i+1:]...)
			break
		}
	}
	return nil
}

// Complete marks the task as completed. Completing a completed task is a no-op.
func (s *Store) Complete(title string) error {
	t, ok := s.tasks[title]
	if !ok {
		return fmt.Errorf("task %s %w", title, ErrUnknownTitle)
	}
	t.Completed = true
	s.tasks[title] = t
	return nil
}

// SetDescription replaces the description in place, keeping the completion flag.
func (s *Store) SetDescription(title, description string) error {
	t, ok := s.tasks[title]
	if !ok {
		return fmt.Errorf("task %s %w", title, ErrUnknownTitle)
	}
	t.Description = normalizeDescription(description)
	s.tasks[title] = t
	return nil
}

// Rename moves the task under oldTitle to newTitle with the given
// description. The renamed task goes through Add, so it is appended at the
// end and its completion flag is reset. Nothing changes on error.
func (s *Store) Rename(oldTitle, newTitle, description string) error {
	if !s.Has(oldTitle) {
		return fmt.Errorf("task %s %w", oldTitle, ErrUnknownTitle)
	}
	if err := ValidateTitle(newTitle); err != nil {
		return err
	}
	if s.Has(newTitle) {
		return fmt.Errorf("task %s %w", newTitle, ErrDuplicateTitle)
	}
	if err := s.Delete(oldTitle); err != nil {
		return err
	}
	return s.Add(newTitle, description)
}

// put stores t under title. A title seen before keeps its original position.
func (s *Store) put(title string, t Task) {
	if _, ok := s.tasks[title]; !ok {
		s.titles = append(s.titles, title)
	}
	s.tasks[title] = t
}

func normalizeDescription(d string) string {
	if d == "" {
		return DefaultDescription
	}
	return d
}
