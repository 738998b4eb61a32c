package db

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the unique indexes that back the data-model
// invariants. They are also the last line of defense against concurrent
// duplicate inserts: of two racing "add" requests for the same pair,
// exactly one row survives and the loser sees a duplicate-key error.
func EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	indexes := map[*mongo.Collection][]mongo.IndexModel{
		UserCollection: {
			{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
		IngredientCollection: {
			{Keys: bson.D{{Key: "name", Value: 1}, {Key: "measurement_unit", Value: 1}}, Options: unique},
		},
		TagCollection: {
			{Keys: bson.D{{Key: "name", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "name", Value: 1}, {Key: "color", Value: 1}, {Key: "slug", Value: 1}}, Options: unique},
		},
		RecipeCollection: {
			{Keys: bson.D{{Key: "authorid", Value: 1}, {Key: "name", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "pub_date", Value: -1}}},
		},
		IngredientAmountCollection: {
			{Keys: bson.D{{Key: "recipeid", Value: 1}, {Key: "ingredientid", Value: 1}}, Options: unique},
		},
		FavoriteCollection: {
			{Keys: bson.D{{Key: "userid", Value: 1}, {Key: "recipeid", Value: 1}}, Options: unique},
		},
		CartCollection: {
			{Keys: bson.D{{Key: "userid", Value: 1}, {Key: "recipeid", Value: 1}}, Options: unique},
		},
		SubscriptionCollection: {
			{Keys: bson.D{{Key: "subscriberid", Value: 1}, {Key: "authorid", Value: 1}}, Options: unique},
		},
	}

	for coll, models := range indexes {
		if _, err := coll.Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("creating indexes for %s: %w", coll.Name(), err)
		}
	}
	return nil
}

// IsDuplicate reports whether err is a unique-index violation.
func IsDuplicate(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}
