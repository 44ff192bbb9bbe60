package store

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestGetMissingDocument(t *testing.T) {
	s := openTestStore(t)

	_, ok, err := s.Get(KeyExpenses)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatal("Get reported a document that was never written")
	}
}

func TestPutReplacesWholesale(t *testing.T) {
	s := openTestStore(t)

	if err := s.Put(KeySettings, `{"budget":500}`); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := s.Put(KeySettings, `{"budget":900}`); err != nil {
		t.Fatalf("Put (replace): %v", err)
	}

	value, ok, err := s.Get(KeySettings)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("document missing after Put")
	}
	if value != `{"budget":900}` {
		t.Fatalf("value = %q, want the replacement", value)
	}
}

func TestDocumentsAreIndependent(t *testing.T) {
	s := openTestStore(t)

	if err := s.Put(KeyExpenses, `[]`); err != nil {
		t.Fatalf("Put expenses: %v", err)
	}
	if err := s.Put(KeySettings, `{}`); err != nil {
		t.Fatalf("Put settings: %v", err)
	}

	expenses, _, _ := s.Get(KeyExpenses)
	settings, _, _ := s.Get(KeySettings)
	if expenses != `[]` || settings != `{}` {
		t.Fatalf("documents cross-contaminated: expenses=%q settings=%q", expenses, settings)
	}
}
