package storage

import "testing"

func TestNewStoreMemory(t *testing.T) {
	for _, kind := range []string{"", "memory"} {
		store, err := NewStore(kind, "")
		if err != nil {
			t.Fatalf("kind %q: %v", kind, err)
		}
		if _, ok := store.(*MemoryStore); !ok {
			t.Fatalf("kind %q: expected memory store, got %T", kind, store)
		}
	}
}

func TestNewStoreUnknownKind(t *testing.T) {
	if _, err := NewStore("etcd", ""); err == nil {
		t.Fatalf("expected error for unsupported backend")
	}
}

func TestCloseIfSupportedIgnoresMemoryStore(t *testing.T) {
	if err := CloseIfSupported(NewMemoryStore()); err != nil {
		t.Fatalf("close: %v", err)
	}
}
