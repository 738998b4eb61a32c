// Package shopping aggregates the ingredient amounts of every recipe in
// a user's cart and renders the result as a downloadable PDF.
package shopping

import (
	"context"
	"sort"

	"provender/db"
	"provender/models"
	"provender/relations"

	"go.mongodb.org/mongo-driver/bson"
)

// Line is one aggregated shopping-list entry.
type Line struct {
	Name            string
	MeasurementUnit string
	Amount          int
}

// Aggregate groups amount rows by the ingredient's identity fields
// (name, measurement unit), not by row id, and sums the amounts within
// each group. Output is ordered by name, then unit. An empty input
// yields an empty list.
func Aggregate(amounts []models.IngredientAmount, ingredients map[string]models.Ingredient) []Line {
	type key struct {
		name string
		unit string
	}

	totals := map[key]int{}
	for _, amount := range amounts {
		ing, ok := ingredients[amount.IngredientID]
		if !ok {
			continue
		}
		totals[key{ing.Name, ing.MeasurementUnit}] += amount.Amount
	}

	lines := make([]Line, 0, len(totals))
	for k, total := range totals {
		lines = append(lines, Line{Name: k.name, MeasurementUnit: k.unit, Amount: total})
	}
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].Name != lines[j].Name {
			return lines[i].Name < lines[j].Name
		}
		return lines[i].MeasurementUnit < lines[j].MeasurementUnit
	})
	return lines
}

// CollectLines gathers every ingredient amount across the recipes in the
// user's cart and aggregates them. An empty cart is not an error.
func CollectLines(ctx context.Context, userID string) ([]Line, error) {
	recipeIDs, err := relations.ShoppingCart().TargetIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(recipeIDs) == 0 {
		return []Line{}, nil
	}

	cursor, err := db.IngredientAmountCollection.Find(ctx, bson.M{"recipeid": bson.M{"$in": recipeIDs}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var amounts []models.IngredientAmount
	if err := cursor.All(ctx, &amounts); err != nil {
		return nil, err
	}
	if len(amounts) == 0 {
		return []Line{}, nil
	}

	ingredientIDs := make([]string, 0, len(amounts))
	for _, amount := range amounts {
		ingredientIDs = append(ingredientIDs, amount.IngredientID)
	}
	ingCursor, err := db.IngredientCollection.Find(ctx, bson.M{"ingredientid": bson.M{"$in": ingredientIDs}})
	if err != nil {
		return nil, err
	}
	defer ingCursor.Close(ctx)

	var items []models.Ingredient
	if err := ingCursor.All(ctx, &items); err != nil {
		return nil, err
	}
	byID := make(map[string]models.Ingredient, len(items))
	for _, item := range items {
		byID[item.IngredientID] = item
	}

	return Aggregate(amounts, byID), nil
}
