package users

import (
	"context"
	"net/http"
	"time"

	"provender/db"
	"provender/models"
	"provender/relations"
	"provender/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListUsers returns a page of users, each flagged with is_subscribed
// relative to the caller (always false for anonymous callers).
func ListUsers(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	page := utils.ParsePageOptions(r)
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: 1}}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))

	cursor, err := db.UserCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		http.Error(w, "Failed to list users", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var found []models.User
	if err = cursor.All(ctx, &found); err != nil {
		http.Error(w, "Failed to list users", http.StatusInternalServerError)
		return
	}

	viewerID := utils.GetUserIDFromRequest(r)
	profiles := []models.UserProfile{}
	for _, user := range found {
		profile := user.Profile()
		subscribed, err := relations.Subscriptions().Exists(ctx, viewerID, user.UserID)
		if err != nil {
			http.Error(w, "Failed to list users", http.StatusInternalServerError)
			return
		}
		profile.IsSubscribed = subscribed
		profiles = append(profiles, profile)
	}

	utils.RespondWithJSON(w, http.StatusOK, profiles)
}

func GetUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var user models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"userid": ps.ByName("id")}).Decode(&user)
	if err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	profile := user.Profile()
	subscribed, err := relations.Subscriptions().Exists(ctx, utils.GetUserIDFromRequest(r), user.UserID)
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	profile.IsSubscribed = subscribed

	utils.RespondWithJSON(w, http.StatusOK, profile)
}

// GetProfile returns the authenticated caller's own profile.
func GetProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var user models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&user)
	if err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, user.Profile())
}

// authorListing builds the subscription view of an author: profile plus
// short-form recipes and their count.
func authorListing(ctx context.Context, author models.User, viewerID string) (models.AuthorListing, error) {
	listing := models.AuthorListing{
		UserProfile: author.Profile(),
		Recipes:     []models.ShortRecipe{},
	}

	subscribed, err := relations.Subscriptions().Exists(ctx, viewerID, author.UserID)
	if err != nil {
		return listing, err
	}
	listing.IsSubscribed = subscribed

	opts := options.Find().SetSort(bson.D{{Key: "pub_date", Value: -1}})
	cursor, err := db.RecipeCollection.Find(ctx, bson.M{"authorid": author.UserID}, opts)
	if err != nil {
		return listing, err
	}
	defer cursor.Close(ctx)

	var found []models.Recipe
	if err := cursor.All(ctx, &found); err != nil {
		return listing, err
	}
	for _, recipe := range found {
		listing.Recipes = append(listing.Recipes, recipe.Short())
	}
	listing.RecipesCount = len(listing.Recipes)

	return listing, nil
}
