package ingredients

import (
	"context"
	"net/http"
	"time"

	"provender/db"
	"provender/models"
	"provender/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListIngredients returns all ingredients in name order, optionally
// narrowed by the ?name= search. Unpaginated: the reference data set is
// small and the search needs the whole collection for its two-tier
// ordering anyway.
func ListIngredients(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := db.IngredientCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		http.Error(w, "Failed to list ingredients", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	items := []models.Ingredient{}
	if err = cursor.All(ctx, &items); err != nil {
		http.Error(w, "Failed to list ingredients", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, Search(items, r.URL.Query().Get("name")))
}

func GetIngredient(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var item models.Ingredient
	err := db.IngredientCollection.FindOne(ctx, bson.M{"ingredientid": ps.ByName("id")}).Decode(&item)
	if err != nil {
		http.Error(w, "Ingredient not found", http.StatusNotFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, item)
}
