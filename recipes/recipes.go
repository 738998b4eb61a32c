package recipes

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"slices"
	"time"

	"provender/db"
	"provender/filemgr"
	"provender/models"
	"provender/relations"
	"provender/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetRecipes lists recipes newest first, honoring the tag/author and
// membership filters. Membership filters silently no-op for anonymous
// callers.
func GetRecipes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	viewerID := utils.GetUserIDFromRequest(r)
	filters := Filters{AuthorID: r.URL.Query().Get("author")}

	if slugs := r.URL.Query()["tags"]; len(slugs) > 0 {
		cursor, err := db.TagCollection.Find(ctx, bson.M{"slug": bson.M{"$in": slugs}})
		if err != nil {
			http.Error(w, "Failed to resolve tags", http.StatusInternalServerError)
			return
		}
		var matched []models.Tag
		if err := cursor.All(ctx, &matched); err != nil {
			http.Error(w, "Failed to resolve tags", http.StatusInternalServerError)
			return
		}
		filters.TagIDs = []string{}
		for _, tag := range matched {
			filters.TagIDs = append(filters.TagIDs, tag.TagID)
		}
	}

	if viewerID != "" {
		if utils.ParseBoolParam(r, "is_favorited") {
			ids, err := relations.Favorites().TargetIDs(ctx, viewerID)
			if err != nil {
				http.Error(w, "Failed to resolve favorites", http.StatusInternalServerError)
				return
			}
			filters.IDSets = append(filters.IDSets, ids)
		}
		if utils.ParseBoolParam(r, "is_in_shopping_cart") {
			ids, err := relations.ShoppingCart().TargetIDs(ctx, viewerID)
			if err != nil {
				http.Error(w, "Failed to resolve shopping cart", http.StatusInternalServerError)
				return
			}
			filters.IDSets = append(filters.IDSets, ids)
		}
	}

	page := utils.ParsePageOptions(r)
	opts := options.Find().
		SetSort(bson.D{{Key: "pub_date", Value: -1}}).
		SetSkip(page.Skip()).
		SetLimit(int64(page.Limit))

	cursor, err := db.RecipeCollection.Find(ctx, BuildListQuery(filters), opts)
	if err != nil {
		http.Error(w, "Failed to list recipes", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var found []models.Recipe
	if err = cursor.All(ctx, &found); err != nil {
		http.Error(w, "Failed to list recipes", http.StatusInternalServerError)
		return
	}

	details := []models.RecipeDetail{}
	for _, recipe := range found {
		detail, err := buildDetail(ctx, recipe, viewerID)
		if err != nil {
			log.Printf("Failed to build recipe %s: %v", recipe.RecipeID, err)
			http.Error(w, "Failed to list recipes", http.StatusInternalServerError)
			return
		}
		details = append(details, detail)
	}

	utils.RespondWithJSON(w, http.StatusOK, details)
}

func GetRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var recipe models.Recipe
	err := db.RecipeCollection.FindOne(ctx, bson.M{"recipeid": ps.ByName("id")}).Decode(&recipe)
	if err != nil {
		http.Error(w, "Recipe not found", http.StatusNotFound)
		return
	}

	detail, err := buildDetail(ctx, recipe, utils.GetUserIDFromRequest(r))
	if err != nil {
		http.Error(w, "Failed to load recipe", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, detail)
}

func CreateRecipe(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var payload RecipePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	if problems := ValidatePayload(payload); len(problems) > 0 {
		utils.RespondWithJSON(w, http.StatusBadRequest, problems)
		return
	}
	if problems, err := checkReferences(ctx, payload); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	} else if len(problems) > 0 {
		utils.RespondWithJSON(w, http.StatusBadRequest, problems)
		return
	}

	userID := utils.GetUserIDFromRequest(r)

	count, err := db.RecipeCollection.CountDocuments(ctx, bson.M{"authorid": userID, "name": payload.Name})
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if count > 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "You already have a recipe with this name")
		return
	}

	image := filemgr.DefaultRecipeImage
	if payload.Image != "" {
		saved, err := filemgr.SaveBase64Image(payload.Image)
		if err != nil {
			utils.RespondWithJSON(w, http.StatusBadRequest, map[string]string{"image": err.Error()})
			return
		}
		image = saved
	}

	recipe := models.Recipe{
		RecipeID:    utils.GenerateID("r", 12),
		AuthorID:    userID,
		Name:        payload.Name,
		Text:        payload.Text,
		Image:       image,
		CookingTime: payload.CookingTime,
		TagIDs:      payload.Tags,
		PubDate:     time.Now(),
	}

	if _, err := db.RecipeCollection.InsertOne(ctx, recipe); err != nil {
		if db.IsDuplicate(err) {
			utils.RespondWithError(w, http.StatusBadRequest, "You already have a recipe with this name")
			return
		}
		http.Error(w, "Failed to create recipe", http.StatusInternalServerError)
		return
	}

	if err := replaceAmounts(ctx, recipe.RecipeID, payload.Ingredients); err != nil {
		log.Printf("Failed to store ingredient amounts for %s: %v", recipe.RecipeID, err)
		http.Error(w, "Failed to create recipe", http.StatusInternalServerError)
		return
	}

	detail, err := buildDetail(ctx, recipe, userID)
	if err != nil {
		http.Error(w, "Failed to load recipe", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, detail)
}

func UpdateRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var recipe models.Recipe
	err := db.RecipeCollection.FindOne(ctx, bson.M{"recipeid": ps.ByName("id")}).Decode(&recipe)
	if err != nil {
		http.Error(w, "Recipe not found", http.StatusNotFound)
		return
	}

	userID := utils.GetUserIDFromRequest(r)
	if recipe.AuthorID != userID {
		http.Error(w, "Only the author can edit this recipe", http.StatusForbidden)
		return
	}

	var payload RecipePayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	if problems := ValidatePayload(payload); len(problems) > 0 {
		utils.RespondWithJSON(w, http.StatusBadRequest, problems)
		return
	}
	if problems, err := checkReferences(ctx, payload); err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	} else if len(problems) > 0 {
		utils.RespondWithJSON(w, http.StatusBadRequest, problems)
		return
	}

	// The name must stay unique per author, excluding this recipe itself.
	count, err := db.RecipeCollection.CountDocuments(ctx, bson.M{
		"authorid": userID,
		"name":     payload.Name,
		"recipeid": bson.M{"$ne": recipe.RecipeID},
	})
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	if count > 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "You already have a recipe with this name")
		return
	}

	updates := bson.M{
		"name":         payload.Name,
		"text":         payload.Text,
		"cooking_time": payload.CookingTime,
		"tagids":       payload.Tags,
	}
	if payload.Image != "" {
		saved, err := filemgr.SaveBase64Image(payload.Image)
		if err != nil {
			utils.RespondWithJSON(w, http.StatusBadRequest, map[string]string{"image": err.Error()})
			return
		}
		updates["image"] = saved
	}

	_, err = db.RecipeCollection.UpdateOne(ctx, bson.M{"recipeid": recipe.RecipeID}, bson.M{"$set": updates})
	if err != nil {
		http.Error(w, "Failed to update recipe", http.StatusInternalServerError)
		return
	}

	// Wholesale replacement: old amount rows go away, the submitted set
	// is inserted fresh.
	if err := replaceAmounts(ctx, recipe.RecipeID, payload.Ingredients); err != nil {
		log.Printf("Failed to replace ingredient amounts for %s: %v", recipe.RecipeID, err)
		http.Error(w, "Failed to update recipe", http.StatusInternalServerError)
		return
	}

	err = db.RecipeCollection.FindOne(ctx, bson.M{"recipeid": recipe.RecipeID}).Decode(&recipe)
	if err != nil {
		http.Error(w, "Failed to load recipe", http.StatusInternalServerError)
		return
	}
	detail, err := buildDetail(ctx, recipe, userID)
	if err != nil {
		http.Error(w, "Failed to load recipe", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, detail)
}

// DeleteRecipe removes a recipe and cascades to its ingredient amounts,
// favorites and cart entries. Allowed for the author or an admin.
func DeleteRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var recipe models.Recipe
	err := db.RecipeCollection.FindOne(ctx, bson.M{"recipeid": ps.ByName("id")}).Decode(&recipe)
	if err != nil {
		http.Error(w, "Recipe not found", http.StatusNotFound)
		return
	}

	userID := utils.GetUserIDFromRequest(r)
	if recipe.AuthorID != userID && !isAdmin(ctx, userID) {
		http.Error(w, "Only the author can delete this recipe", http.StatusForbidden)
		return
	}

	pair := bson.M{"recipeid": recipe.RecipeID}
	for _, coll := range []*mongo.Collection{
		db.IngredientAmountCollection,
		db.FavoriteCollection,
		db.CartCollection,
	} {
		if _, err := coll.DeleteMany(ctx, pair); err != nil {
			http.Error(w, "Failed to delete recipe", http.StatusInternalServerError)
			return
		}
	}
	if _, err := db.RecipeCollection.DeleteOne(ctx, pair); err != nil {
		http.Error(w, "Failed to delete recipe", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// checkReferences verifies that every submitted ingredient and tag id
// exists, returning a field-keyed message map naming the first missing id.
func checkReferences(ctx context.Context, payload RecipePayload) (map[string]string, error) {
	problems := map[string]string{}

	ingIDs := make([]string, 0, len(payload.Ingredients))
	for _, ing := range payload.Ingredients {
		ingIDs = append(ingIDs, ing.ID)
	}
	missing, err := missingIDs(ctx, db.IngredientCollection, "ingredientid", ingIDs)
	if err != nil {
		return nil, err
	}
	if missing != "" {
		problems["ingredients"] = fmt.Sprintf("Unknown ingredient: %s", missing)
	}

	missing, err = missingIDs(ctx, db.TagCollection, "tagid", payload.Tags)
	if err != nil {
		return nil, err
	}
	if missing != "" {
		problems["tags"] = fmt.Sprintf("Unknown tag: %s", missing)
	}

	return problems, nil
}

func missingIDs(ctx context.Context, coll *mongo.Collection, field string, ids []string) (string, error) {
	cursor, err := coll.Find(ctx, bson.M{field: bson.M{"$in": ids}})
	if err != nil {
		return "", err
	}
	defer cursor.Close(ctx)

	var rows []bson.M
	if err := cursor.All(ctx, &rows); err != nil {
		return "", err
	}
	found := make(map[string]bool, len(rows))
	for _, row := range rows {
		if id, ok := row[field].(string); ok {
			found[id] = true
		}
	}
	for _, id := range ids {
		if !found[id] {
			return id, nil
		}
	}
	return "", nil
}

func replaceAmounts(ctx context.Context, recipeID string, inputs []IngredientInput) error {
	if _, err := db.IngredientAmountCollection.DeleteMany(ctx, bson.M{"recipeid": recipeID}); err != nil {
		return err
	}

	docs := make([]interface{}, 0, len(inputs))
	for _, input := range inputs {
		docs = append(docs, models.IngredientAmount{
			RecipeID:     recipeID,
			IngredientID: input.ID,
			Amount:       input.Amount,
		})
	}
	_, err := db.IngredientAmountCollection.InsertMany(ctx, docs)
	return err
}

func isAdmin(ctx context.Context, userID string) bool {
	var user models.User
	if err := db.UserCollection.FindOne(ctx, bson.M{"userid": userID}).Decode(&user); err != nil {
		return false
	}
	return slices.Contains(user.Role, "admin")
}
