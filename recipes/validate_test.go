package recipes

import "testing"

func validPayload() RecipePayload {
	return RecipePayload{
		Name:        "Borscht",
		Text:        "Chop, boil, serve.",
		CookingTime: 45,
		Tags:        []string{"t1", "t2"},
		Ingredients: []IngredientInput{
			{ID: "i1", Amount: 2},
			{ID: "i2", Amount: 1},
		},
	}
}

func TestValidatePayloadOK(t *testing.T) {
	if problems := ValidatePayload(validPayload()); len(problems) > 0 {
		t.Errorf("valid payload rejected: %v", problems)
	}
}

func TestValidatePayload(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*RecipePayload)
		field  string
	}{
		{"empty name", func(p *RecipePayload) { p.Name = "  " }, "name"},
		{"cooking time below one", func(p *RecipePayload) { p.CookingTime = 0 }, "cooking_time"},
		{"no ingredients", func(p *RecipePayload) { p.Ingredients = nil }, "ingredients"},
		{"missing ingredient id", func(p *RecipePayload) { p.Ingredients[0].ID = "" }, "ingredients"},
		{"duplicate ingredient", func(p *RecipePayload) { p.Ingredients[1].ID = "i1" }, "ingredients"},
		{"amount below one", func(p *RecipePayload) { p.Ingredients[1].Amount = 0 }, "ingredients"},
		{"no tags", func(p *RecipePayload) { p.Tags = nil }, "tags"},
		{"duplicate tags", func(p *RecipePayload) { p.Tags = []string{"t1", "t1"} }, "tags"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			payload := validPayload()
			c.mutate(&payload)
			problems := ValidatePayload(payload)
			if _, ok := problems[c.field]; !ok {
				t.Errorf("expected a problem keyed %q, got %v", c.field, problems)
			}
		})
	}
}
