package recipes

import (
	"context"
	"errors"
	"net/http"
	"time"

	"provender/db"
	"provender/models"
	"provender/relations"
	"provender/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

func Favorite(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	toggleRecipe(w, r, ps, relations.Favorites(), true)
}

func Unfavorite(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	toggleRecipe(w, r, ps, relations.Favorites(), false)
}

func AddToCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	toggleRecipe(w, r, ps, relations.ShoppingCart(), true)
}

func RemoveFromCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	toggleRecipe(w, r, ps, relations.ShoppingCart(), false)
}

func toggleRecipe(w http.ResponseWriter, r *http.Request, ps httprouter.Params, rel relations.Relation, add bool) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var recipe models.Recipe
	err := db.RecipeCollection.FindOne(ctx, bson.M{"recipeid": ps.ByName("id")}).Decode(&recipe)
	if err != nil {
		http.Error(w, "Recipe not found", http.StatusNotFound)
		return
	}

	if add {
		err = rel.Add(ctx, userID, recipe.RecipeID, recipe.Name)
	} else {
		err = rel.Remove(ctx, userID, recipe.RecipeID, recipe.Name)
	}

	var conflict *relations.ConflictError
	if errors.As(err, &conflict) {
		utils.RespondWithError(w, http.StatusBadRequest, conflict.Message)
		return
	}
	if err != nil {
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if add {
		utils.RespondWithJSON(w, http.StatusCreated, recipe.Short())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
