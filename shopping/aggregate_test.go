package shopping

import (
	"testing"

	"provender/models"
)

func TestAggregateSumsByIdentityFields(t *testing.T) {
	ingredients := map[string]models.Ingredient{
		"i1": {IngredientID: "i1", Name: "Flour", MeasurementUnit: "g"},
		"i2": {IngredientID: "i2", Name: "Sugar", MeasurementUnit: "g"},
	}
	amounts := []models.IngredientAmount{
		{RecipeID: "r1", IngredientID: "i1", Amount: 200},
		{RecipeID: "r2", IngredientID: "i1", Amount: 150},
		{RecipeID: "r2", IngredientID: "i2", Amount: 50},
	}

	lines := Aggregate(amounts, ingredients)
	want := []Line{
		{Name: "Flour", MeasurementUnit: "g", Amount: 350},
		{Name: "Sugar", MeasurementUnit: "g", Amount: 50},
	}

	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %v", len(lines), len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %+v, want %+v", i, lines[i], want[i])
		}
	}
}

func TestAggregateMergesDistinctRowsWithSameIdentity(t *testing.T) {
	// Two ingredient rows normalizing to the same (name, unit) pair sum
	// into one line: grouping is by identity fields, not row id.
	ingredients := map[string]models.Ingredient{
		"i1": {IngredientID: "i1", Name: "Salt", MeasurementUnit: "g"},
		"i2": {IngredientID: "i2", Name: "Salt", MeasurementUnit: "g"},
	}
	amounts := []models.IngredientAmount{
		{RecipeID: "r1", IngredientID: "i1", Amount: 5},
		{RecipeID: "r2", IngredientID: "i2", Amount: 7},
	}

	lines := Aggregate(amounts, ingredients)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %v", len(lines), lines)
	}
	if lines[0].Amount != 12 {
		t.Errorf("summed amount = %d, want 12", lines[0].Amount)
	}
}

func TestAggregateSameNameDifferentUnit(t *testing.T) {
	ingredients := map[string]models.Ingredient{
		"i1": {IngredientID: "i1", Name: "Milk", MeasurementUnit: "ml"},
		"i2": {IngredientID: "i2", Name: "Milk", MeasurementUnit: "g"},
	}
	amounts := []models.IngredientAmount{
		{RecipeID: "r1", IngredientID: "i1", Amount: 100},
		{RecipeID: "r1", IngredientID: "i2", Amount: 30},
	}

	lines := Aggregate(amounts, ingredients)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %v", len(lines), lines)
	}
	// Deterministic ordering: name, then unit.
	if lines[0].MeasurementUnit != "g" || lines[1].MeasurementUnit != "ml" {
		t.Errorf("unexpected order: %v", lines)
	}
}

func TestAggregateEmpty(t *testing.T) {
	lines := Aggregate(nil, nil)
	if len(lines) != 0 {
		t.Errorf("empty input produced %v", lines)
	}
}
