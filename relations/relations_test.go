package relations

import (
	"errors"
	"testing"
)

func TestCheckSelf(t *testing.T) {
	err := Subscriptions().CheckSelf("u1", "u1")
	if err == nil {
		t.Fatal("expected a conflict for a self-subscription")
	}
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ConflictError, got %T", err)
	}

	if err := Subscriptions().CheckSelf("u1", "u2"); err != nil {
		t.Errorf("distinct actor and target rejected: %v", err)
	}
}

func TestCheckSelfNotEnforcedForRecipes(t *testing.T) {
	// Favorites and carts carry no self restriction; the pair fields are
	// different kinds of ids, equality there is coincidence.
	if err := Favorites().CheckSelf("x", "x"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ShoppingCart().CheckSelf("x", "x"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
