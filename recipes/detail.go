package recipes

import (
	"context"

	"provender/db"
	"provender/models"
	"provender/relations"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// buildDetail assembles the full API representation of a recipe as seen
// by viewerID ("" for anonymous: membership flags come back false).
func buildDetail(ctx context.Context, recipe models.Recipe, viewerID string) (models.RecipeDetail, error) {
	detail := models.RecipeDetail{
		RecipeID:    recipe.RecipeID,
		Name:        recipe.Name,
		Image:       recipe.Image,
		Text:        recipe.Text,
		CookingTime: recipe.CookingTime,
		Tags:        []models.Tag{},
		Ingredients: []models.IngredientAmountDetail{},
	}

	var author models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"userid": recipe.AuthorID}).Decode(&author); err == nil {
		detail.Author = author.Profile()
		subscribed, err := relations.Subscriptions().Exists(ctx, viewerID, author.UserID)
		if err != nil {
			return detail, err
		}
		detail.Author.IsSubscribed = subscribed
	}

	if len(recipe.TagIDs) > 0 {
		cursor, err := db.TagCollection.Find(ctx,
			bson.M{"tagid": bson.M{"$in": recipe.TagIDs}},
			options.Find().SetSort(bson.D{{Key: "name", Value: 1}}),
		)
		if err != nil {
			return detail, err
		}
		if err := cursor.All(ctx, &detail.Tags); err != nil {
			return detail, err
		}
	}

	amounts, err := amountsForRecipe(ctx, recipe.RecipeID)
	if err != nil {
		return detail, err
	}
	if len(amounts) > 0 {
		ingredientsByID, err := ingredientMap(ctx, amounts)
		if err != nil {
			return detail, err
		}
		for _, amount := range amounts {
			ing := ingredientsByID[amount.IngredientID]
			detail.Ingredients = append(detail.Ingredients, models.IngredientAmountDetail{
				IngredientID:    amount.IngredientID,
				Name:            ing.Name,
				MeasurementUnit: ing.MeasurementUnit,
				Amount:          amount.Amount,
			})
		}
	}

	if detail.IsFavorited, err = relations.Favorites().Exists(ctx, viewerID, recipe.RecipeID); err != nil {
		return detail, err
	}
	if detail.IsInShoppingCart, err = relations.ShoppingCart().Exists(ctx, viewerID, recipe.RecipeID); err != nil {
		return detail, err
	}

	return detail, nil
}

func amountsForRecipe(ctx context.Context, recipeID string) ([]models.IngredientAmount, error) {
	cursor, err := db.IngredientAmountCollection.Find(ctx, bson.M{"recipeid": recipeID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var amounts []models.IngredientAmount
	if err := cursor.All(ctx, &amounts); err != nil {
		return nil, err
	}
	return amounts, nil
}

func ingredientMap(ctx context.Context, amounts []models.IngredientAmount) (map[string]models.Ingredient, error) {
	ids := make([]string, 0, len(amounts))
	for _, amount := range amounts {
		ids = append(ids, amount.IngredientID)
	}

	cursor, err := db.IngredientCollection.Find(ctx, bson.M{"ingredientid": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.Ingredient
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	byID := make(map[string]models.Ingredient, len(items))
	for _, item := range items {
		byID[item.IngredientID] = item
	}
	return byID, nil
}
