package ingredients

import (
	"testing"

	"provender/models"
)

func fixture() []models.Ingredient {
	// Already normalized and in name order, as the listing fetches them.
	names := []string{"Apple", "Chocolate", "Egg", "Hennessy", "Mango", "Salmon", "Salt", "Sugar"}
	items := make([]models.Ingredient, 0, len(names))
	for i, name := range names {
		items = append(items, models.Ingredient{
			IngredientID:    string(rune('a' + i)),
			Name:            name,
			MeasurementUnit: "g",
		})
	}
	return items
}

func TestSearchStartsBeforeContains(t *testing.T) {
	got := Search(fixture(), "s")
	want := []string{"Salmon", "Salt", "Sugar", "Hennessy"}

	if len(got) != len(want) {
		t.Fatalf("Search returned %d items, want %d", len(got), len(want))
	}
	for i, item := range got {
		if item.Name != want[i] {
			t.Errorf("result[%d] = %q, want %q", i, item.Name, want[i])
		}
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	lower := Search(fixture(), "sal")
	upper := Search(fixture(), "SAL")

	if len(lower) != 2 || len(upper) != 2 {
		t.Fatalf("expected 2 matches for both cases, got %d and %d", len(lower), len(upper))
	}
	for i := range lower {
		if lower[i].Name != upper[i].Name {
			t.Errorf("case-insensitive mismatch at %d: %q vs %q", i, lower[i].Name, upper[i].Name)
		}
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	items := fixture()
	got := Search(items, "")
	if len(got) != len(items) {
		t.Fatalf("empty query returned %d items, want %d", len(got), len(items))
	}
	for i := range got {
		if got[i].Name != items[i].Name {
			t.Errorf("empty query changed order at %d: %q", i, got[i].Name)
		}
	}
}

func TestSearchNoMatches(t *testing.T) {
	if got := Search(fixture(), "zzz"); len(got) != 0 {
		t.Errorf("expected no matches, got %d", len(got))
	}
}
