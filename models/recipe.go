package models

import "time"

type Ingredient struct {
	IngredientID    string `json:"id" bson:"ingredientid"`
	Name            string `json:"name" bson:"name"`
	MeasurementUnit string `json:"measurement_unit" bson:"measurement_unit"`
}

type Tag struct {
	TagID string `json:"id" bson:"tagid"`
	Name  string `json:"name" bson:"name"`
	Color string `json:"color" bson:"color"`
	Slug  string `json:"slug" bson:"slug"`
}

type Recipe struct {
	RecipeID    string    `json:"id" bson:"recipeid"`
	AuthorID    string    `json:"-" bson:"authorid"`
	Name        string    `json:"name" bson:"name"`
	Text        string    `json:"text" bson:"text"`
	Image       string    `json:"image" bson:"image"`
	CookingTime int       `json:"cooking_time" bson:"cooking_time"`
	TagIDs      []string  `json:"-" bson:"tagids"`
	PubDate     time.Time `json:"-" bson:"pub_date"`
}

// IngredientAmount links one ingredient to one recipe with a quantity.
// Rows for a recipe are replaced wholesale on every recipe update.
type IngredientAmount struct {
	RecipeID     string `json:"-" bson:"recipeid"`
	IngredientID string `json:"id" bson:"ingredientid"`
	Amount       int    `json:"amount" bson:"amount"`
}

type Favorite struct {
	UserID   string `json:"user" bson:"userid"`
	RecipeID string `json:"recipe" bson:"recipeid"`
}

type CartEntry struct {
	UserID   string `json:"user" bson:"userid"`
	RecipeID string `json:"recipe" bson:"recipeid"`
}

// ShortRecipe is the reduced recipe view used in toggle responses and
// subscription listings.
type ShortRecipe struct {
	RecipeID    string `json:"id" bson:"recipeid"`
	Name        string `json:"name" bson:"name"`
	Image       string `json:"image" bson:"image"`
	CookingTime int    `json:"cooking_time" bson:"cooking_time"`
}

// IngredientAmountDetail is an ingredient row joined with its identity
// fields, as embedded in recipe responses.
type IngredientAmountDetail struct {
	IngredientID    string `json:"id"`
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
	Amount          int    `json:"amount"`
}

// RecipeDetail is the full recipe representation returned by the API.
type RecipeDetail struct {
	RecipeID         string                   `json:"id"`
	Tags             []Tag                    `json:"tags"`
	Author           UserProfile              `json:"author"`
	Ingredients      []IngredientAmountDetail `json:"ingredients"`
	IsFavorited      bool                     `json:"is_favorited"`
	IsInShoppingCart bool                     `json:"is_in_shopping_cart"`
	Name             string                   `json:"name"`
	Image            string                   `json:"image"`
	Text             string                   `json:"text"`
	CookingTime      int                      `json:"cooking_time"`
}

func (r Recipe) Short() ShortRecipe {
	return ShortRecipe{
		RecipeID:    r.RecipeID,
		Name:        r.Name,
		Image:       r.Image,
		CookingTime: r.CookingTime,
	}
}
