package recipes

import (
	"context"
	"net/http"
	"os"
	"time"

	"provender/db"
	"provender/models"

	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson"
)

// GetRecipeQR returns a QR code PNG pointing at the recipe's public page.
func GetRecipeQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var recipe models.Recipe
	err := db.RecipeCollection.FindOne(ctx, bson.M{"recipeid": ps.ByName("id")}).Decode(&recipe)
	if err != nil {
		http.Error(w, "Recipe not found", http.StatusNotFound)
		return
	}

	base := os.Getenv("FRONTEND_URL")
	if base == "" {
		base = "http://localhost:8080"
	}

	png, err := qrcode.Encode(base+"/recipes/"+recipe.RecipeID, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
