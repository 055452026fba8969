package store

import (
	"path/filepath"
	"testing"

	"pgregory.net/rapid"
)

func titleGenerator() *rapid.Generator[string] {
	return rapid.StringMatching(`[A-Za-z0-9][A-Za-z0-9 _.-]{0,15}`)
}

func descriptionGenerator() *rapid.Generator[string] {
	return rapid.OneOf(
		rapid.Just(""),
		rapid.StringMatching(`[ -~äöüß€→]{1,40}`),
	)
}

// storeGenerator builds a store through the public mutation API so that
// every generated store is well formed.
func storeGenerator() *rapid.Generator[*Store] {
	return rapid.Custom(func(t *rapid.T) *Store {
		s := New()
		names := rapid.SliceOfDistinct(titleGenerator(), rapid.ID[string]).Draw(t, "titles")
		for _, name := range names {
			if err := s.Add(name, descriptionGenerator().Draw(t, "description")); err != nil {
				t.Fatalf("add %q: %v", name, err)
			}
			if rapid.Bool().Draw(t, "completed") {
				_ = s.Complete(name)
			}
		}
		return s
	})
}

func sameStore(t *rapid.T, want, got *Store) {
	we, ge := want.Entries(), got.Entries()
	if len(we) != len(ge) {
		t.Fatalf("expected %d tasks, got %d", len(we), len(ge))
	}
	for i := range we {
		if we[i] != ge[i] {
			t.Fatalf("entry %d: expected %+v, got %+v", i, we[i], ge[i])
		}
	}
}

func TestEncodeDecodeRoundtrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := storeGenerator().Draw(t, "store")
		data, err := Encode(s)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		got, err := Decode(data)
		if err != nil {
			t.Fatalf("decode %s: %v", data, err)
		}
		sameStore(t, s, got)
	})
}

func TestAddSurvivesReload(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "data.json"))
	rapid.Check(t, func(t *rapid.T) {
		s := storeGenerator().Draw(t, "store")
		title := titleGenerator().Filter(func(v string) bool { return !s.Has(v) }).Draw(t, "new title")
		desc := descriptionGenerator().Draw(t, "new description")

		if err := s.Add(title, desc); err != nil {
			t.Fatalf("add: %v", err)
		}
		if err := f.Save(s); err != nil {
			t.Fatalf("save: %v", err)
		}
		got, err := f.Load()
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		task, ok := got.Get(title)
		if !ok {
			t.Fatalf("task %q missing after reload", title)
		}
		wantDesc := desc
		if wantDesc == "" {
			wantDesc = DefaultDescription
		}
		if task.Description != wantDesc || task.Completed {
			t.Fatalf("expected {%q false}, got %+v", wantDesc, task)
		}
	})
}

func TestAddExistingNeverMutates(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := storeGenerator().Filter(func(s *Store) bool { return s.Len() > 0 }).Draw(t, "store")
		entries := s.Entries()
		pick := rapid.SampledFrom(entries).Draw(t, "existing")

		if err := s.Add(pick.Title, descriptionGenerator().Draw(t, "description")); err == nil {
			t.Fatalf("expected duplicate error for %q", pick.Title)
		}
		sameStore(t, &Store{titles: titlesOf(entries), tasks: tasksOf(entries)}, s)
	})
}

func TestCompleteTwiceEqualsOnce(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := storeGenerator().Filter(func(s *Store) bool { return s.Len() > 0 }).Draw(t, "store")
		pick := rapid.SampledFrom(s.Entries()).Draw(t, "task")

		once, _ := Decode(mustEncode(t, s))
		_ = once.Complete(pick.Title)
		twice, _ := Decode(mustEncode(t, s))
		_ = twice.Complete(pick.Title)
		_ = twice.Complete(pick.Title)

		sameStore(t, once, twice)
	})
}

func mustEncode(t *rapid.T, s *Store) []byte {
	data, err := Encode(s)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	return data
}

func titlesOf(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Title
	}
	return out
}

func tasksOf(entries []Entry) map[string]Task {
	out := make(map[string]Task, len(entries))
	for _, e := range entries {
		out[e.Title] = e.Task
	}
	return out
}
