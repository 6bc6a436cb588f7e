package product

import (
	"context"
	"errors"
	"testing"
)

func TestMockGetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	svc := NewMockProductService()

	created, err := svc.Create(ctx, CreateParams{Name: "Widget", SKU: "SKU-1", Price: 9.99, IsActive: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	got.Name = "mutated by caller"
	got.SKU = "SKU-HIJACKED"

	again, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if again.Name != "Widget" || again.SKU != "SKU-1" {
		t.Fatalf("caller mutation leaked into store: %+v", again)
	}
}

func TestMockUpdateReturnsCopy(t *testing.T) {
	ctx := context.Background()
	svc := NewMockProductService()

	created, err := svc.Create(ctx, CreateParams{Name: "Widget", SKU: "SKU-1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	name := "Gadget"
	updated, err := svc.Update(ctx, created.ID, UpdateParams{Name: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	updated.Name = "mutated by caller"

	again, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if again.Name != "Gadget" {
		t.Fatalf("caller mutation leaked into store: %q", again.Name)
	}
}

func TestMockSKUUniqueAmongLiveProducts(t *testing.T) {
	ctx := context.Background()
	svc := NewMockProductService()

	first, err := svc.Create(ctx, CreateParams{Name: "Widget", SKU: "SKU-1"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.Create(ctx, CreateParams{Name: "Other", SKU: "SKU-1"}); !errors.Is(err, ErrSKUExists) {
		t.Fatalf("expected ErrSKUExists, got %v", err)
	}

	// Soft-deleting the holder frees the SKU.
	if err := svc.Delete(ctx, first.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Create(ctx, CreateParams{Name: "Other", SKU: "SKU-1"}); err != nil {
		t.Fatalf("expected freed SKU after soft delete, got %v", err)
	}
}
