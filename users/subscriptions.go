package users

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

func Subscribe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	toggleSubscription(w, r, ps, true)
}

func Unsubscribe(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	toggleSubscription(w, r, ps, false)
}

func toggleSubscription(w http.ResponseWriter, r *http.Request, ps httprouter.Params, add bool) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	subscriberID := utils.GetUserIDFromRequest(r)
	if subscriberID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var author models.User
	err := db.UserCollection.FindOne(ctx, bson.M{"userid": ps.ByName("id")}).Decode(&author)
	if err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	rel := relations.Subscriptions()
	if add {
		err = rel.Add(ctx, subscriberID, author.UserID, author.Username)
	} else {
		err = rel.Remove(ctx, subscriberID, author.UserID, author.Username)
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
		listing, err := authorListing(ctx, author, subscriberID)
		if err != nil {
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		utils.RespondWithJSON(w, http.StatusCreated, listing)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListSubscriptions returns the authors the caller subscribes to, each
// with their recipes in short form.
func ListSubscriptions(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	subscriberID := utils.GetUserIDFromRequest(r)
	if subscriberID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	authorIDs, err := relations.Subscriptions().TargetIDs(ctx, subscriberID)
	if err != nil {
		http.Error(w, "Failed to list subscriptions", http.StatusInternalServerError)
		return
	}

	page := utils.ParsePageOptions(r)
	start := int(page.Skip())
	if start > len(authorIDs) {
		start = len(authorIDs)
	}
	end := start + page.Limit
	if end > len(authorIDs) {
		end = len(authorIDs)
	}
	authorIDs = authorIDs[start:end]

	listings := []models.AuthorListing{}
	if len(authorIDs) > 0 {
		cursor, err := db.UserCollection.Find(ctx, bson.M{"userid": bson.M{"$in": authorIDs}})
		if err != nil {
			http.Error(w, "Failed to list subscriptions", http.StatusInternalServerError)
			return
		}
		defer cursor.Close(ctx)

		var authors []models.User
		if err = cursor.All(ctx, &authors); err != nil {
			http.Error(w, "Failed to list subscriptions", http.StatusInternalServerError)
			return
		}

		for _, author := range authors {
			listing, err := authorListing(ctx, author, subscriberID)
			if err != nil {
				http.Error(w, "Failed to list subscriptions", http.StatusInternalServerError)
				return
			}
			listings = append(listings, listing)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, listings)
}
