// Package relations implements the add/remove membership pattern shared
// by favorites, shopping carts and subscriptions: a pair of ids, unique
// together, created and deleted only by the acting user.
package relations

import (
	"context"
	"fmt"

	"provender/db"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ConflictError reports an add against a present pair, a remove against
// an absent pair, or a forbidden self-reference. Surfaced as HTTP 400.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string { return e.Message }

type Relation struct {
	coll        *mongo.Collection
	actorField  string
	targetField string
	alreadyMsg  string // fmt verb %s receives the target's display name
	missingMsg  string
	selfMsg     string // non-empty forbids actor == target
}

func Favorites() Relation {
	return Relation{
		coll:        db.FavoriteCollection,
		actorField:  "userid",
		targetField: "recipeid",
		alreadyMsg:  "Recipe %s is already in favorites",
		missingMsg:  "Recipe %s is not in favorites",
	}
}

func ShoppingCart() Relation {
	return Relation{
		coll:        db.CartCollection,
		actorField:  "userid",
		targetField: "recipeid",
		alreadyMsg:  "Recipe %s is already in the shopping cart",
		missingMsg:  "Recipe %s is not in the shopping cart",
	}
}

func Subscriptions() Relation {
	return Relation{
		coll:        db.SubscriptionCollection,
		actorField:  "subscriberid",
		targetField: "authorid",
		alreadyMsg:  "Already subscribed to %s",
		missingMsg:  "Not subscribed to %s",
		selfMsg:     "cannot subscribe to self",
	}
}

func (rel Relation) pair(actor, target string) bson.M {
	return bson.M{rel.actorField: actor, rel.targetField: target}
}

// CheckSelf enforces the self-reference restriction, if the relation has
// one. Runs before any storage round trip.
func (rel Relation) CheckSelf(actor, target string) error {
	if rel.selfMsg != "" && actor == target {
		return &ConflictError{Message: rel.selfMsg}
	}
	return nil
}

// Add inserts the (actor, target) pair. targetName is the display name
// used in conflict messages. A duplicate-key error from a racing insert
// is reported as the same conflict the pre-check would have produced.
func (rel Relation) Add(ctx context.Context, actor, target, targetName string) error {
	if err := rel.CheckSelf(actor, target); err != nil {
		return err
	}

	count, err := rel.coll.CountDocuments(ctx, rel.pair(actor, target))
	if err != nil {
		return err
	}
	if count > 0 {
		return &ConflictError{Message: fmt.Sprintf(rel.alreadyMsg, targetName)}
	}

	if _, err := rel.coll.InsertOne(ctx, rel.pair(actor, target)); err != nil {
		if db.IsDuplicate(err) {
			return &ConflictError{Message: fmt.Sprintf(rel.alreadyMsg, targetName)}
		}
		return err
	}
	return nil
}

// Remove deletes the (actor, target) pair, failing with a conflict when
// it does not exist.
func (rel Relation) Remove(ctx context.Context, actor, target, targetName string) error {
	res, err := rel.coll.DeleteOne(ctx, rel.pair(actor, target))
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return &ConflictError{Message: fmt.Sprintf(rel.missingMsg, targetName)}
	}
	return nil
}

// Exists reports membership of the pair; false for an empty actor, so
// anonymous callers never error.
func (rel Relation) Exists(ctx context.Context, actor, target string) (bool, error) {
	if actor == "" {
		return false, nil
	}
	count, err := rel.coll.CountDocuments(ctx, rel.pair(actor, target))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// TargetIDs returns every target id the actor holds in this relation.
// An empty actor yields an empty set.
func (rel Relation) TargetIDs(ctx context.Context, actor string) ([]string, error) {
	if actor == "" {
		return nil, nil
	}
	cursor, err := rel.coll.Find(ctx, bson.M{rel.actorField: actor})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []bson.M
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		if id, ok := row[rel.targetField].(string); ok {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
