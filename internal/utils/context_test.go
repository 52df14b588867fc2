package utils

import (
	"context"
	"testing"
)

func TestGetIdentityFromContext_Present(t *testing.T) {
	ctx := context.WithValue(context.Background(), IdentityCtxKey, "alice")

	identity, ok := GetIdentityFromContext(ctx)
	if !ok {
		t.Fatal("expected identity to be present")
	}
	if identity != "alice" {
		t.Errorf("expected identity 'alice', got %q", identity)
	}
}

func TestGetIdentityFromContext_Missing(t *testing.T) {
	_, ok := GetIdentityFromContext(context.Background())
	if ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestGetIdentityFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), IdentityCtxKey, 42)

	_, ok := GetIdentityFromContext(ctx)
	if ok {
		t.Error("expected ok=false for non-string value")
	}
}
