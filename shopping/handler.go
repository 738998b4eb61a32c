package shopping

import (
	"context"
	"log"
	"net/http"
	"time"

	"provender/utils"

	"github.com/julienschmidt/httprouter"
)

// DownloadShoppingCart aggregates the caller's cart and streams it back
// as shopping_cart.pdf.
func DownloadShoppingCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	lines, err := CollectLines(ctx, userID)
	if err != nil {
		log.Printf("Failed to aggregate shopping list for %s: %v", userID, err)
		http.Error(w, "Failed to build shopping list", http.StatusInternalServerError)
		return
	}

	doc, err := Render(lines)
	if err != nil {
		log.Printf("Failed to render shopping list for %s: %v", userID, err)
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="shopping_cart.pdf"`)
	w.WriteHeader(http.StatusOK)
	w.Write(doc)
}
