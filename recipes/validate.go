package recipes

import (
	"fmt"
	"strings"
)

type IngredientInput struct {
	ID     string `json:"id"`
	Amount int    `json:"amount"`
}

type RecipePayload struct {
	Name        string            `json:"name"`
	Text        string            `json:"text"`
	Image       string            `json:"image"`
	CookingTime int               `json:"cooking_time"`
	Tags        []string          `json:"tags"`
	Ingredients []IngredientInput `json:"ingredients"`
}

// ValidatePayload applies the field-level and cross-field rules that need
// no storage access. Returns a field-keyed message map, empty when the
// payload is valid. Existence of the referenced ids and the per-author
// name uniqueness are checked against storage separately.
func ValidatePayload(p RecipePayload) map[string]string {
	problems := map[string]string{}

	if strings.TrimSpace(p.Name) == "" {
		problems["name"] = "Name must not be empty"
	}
	if p.CookingTime < 1 {
		problems["cooking_time"] = "Cooking time must be at least 1 minute"
	}

	if len(p.Ingredients) == 0 {
		problems["ingredients"] = "Ingredients are missing"
	} else {
		seen := map[string]bool{}
		for _, ing := range p.Ingredients {
			if ing.ID == "" {
				problems["ingredients"] = "Ingredient id is missing"
				break
			}
			if seen[ing.ID] {
				problems["ingredients"] = fmt.Sprintf("Duplicate ingredient: %s", ing.ID)
				break
			}
			seen[ing.ID] = true
			if ing.Amount < 1 {
				problems["ingredients"] = fmt.Sprintf("Amount of ingredient %s is less than 1", ing.ID)
				break
			}
		}
	}

	if len(p.Tags) == 0 {
		problems["tags"] = "Tags are missing"
	} else {
		seen := map[string]bool{}
		for _, id := range p.Tags {
			if seen[id] {
				problems["tags"] = fmt.Sprintf("Duplicate tag: %s", id)
				break
			}
			seen[id] = true
		}
	}

	return problems
}
