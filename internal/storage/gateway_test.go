package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestGateway(t *testing.T) *Gateway {
	t.Helper()
	g, err := NewGateway(filepath.Join(t.TempDir(), "kupa.db"))
	if err != nil {
		t.Fatalf("open gateway: %v", err)
	}
	t.Cleanup(func() { g.Close() })
	return g
}

func TestGetMissingCollection(t *testing.T) {
	g := newTestGateway(t)
	payload, found, err := g.Get(context.Background(), "transactions")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if found {
		t.Fatalf("expected missing collection, got %q", payload)
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	g := newTestGateway(t)
	ctx := context.Background()

	want := []byte(`[{"id":1}]`)
	if err := g.Put(ctx, "transactions", want); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, found, err := g.Get(ctx, "transactions")
	if err != nil || !found {
		t.Fatalf("get after put: found=%v err=%v", found, err)
	}
	if string(got) != string(want) {
		t.Fatalf("payload mismatch: %q != %q", got, want)
	}

	// Put replaces, never appends
	want = []byte(`[]`)
	if err := g.Put(ctx, "transactions", want); err != nil {
		t.Fatalf("second put: %v", err)
	}
	got, _, _ = g.Get(ctx, "transactions")
	if string(got) != string(want) {
		t.Fatalf("payload not replaced: %q", got)
	}
}

func TestCollectionsAreIndependent(t *testing.T) {
	g := newTestGateway(t)
	ctx := context.Background()

	if err := g.Put(ctx, "accounts", []byte(`[{"id":"checking"}]`)); err != nil {
		t.Fatalf("put accounts: %v", err)
	}
	if _, found, _ := g.Get(ctx, "creditCards"); found {
		t.Fatal("creditCards should still be missing")
	}
}

func TestMigrationsAreIdempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "kupa.db")
	g, err := NewGateway(dbPath)
	if err != nil {
		t.Fatalf("first open: %v", err)
	}
	g.Close()

	// Reopening runs migrations again; ErrNoChange must not surface.
	g, err = NewGateway(dbPath)
	if err != nil {
		t.Fatalf("second open: %v", err)
	}
	defer g.Close()

	// Migrations share the gateway's connection; it must survive them.
	if err := g.Put(context.Background(), "transactions", []byte(`[]`)); err != nil {
		t.Fatalf("put on migrated handle: %v", err)
	}
}
