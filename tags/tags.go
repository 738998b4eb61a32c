package tags

import (
	"context"
	"net/http"
	"regexp"
	"time"

	"provender/db"
	"provender/models"
	"provender/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	ColorPattern = regexp.MustCompile(`^#[a-zA-Z0-9]{6}$`)
	SlugPattern  = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)
)

func ListTags(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := db.TagCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		http.Error(w, "Failed to list tags", http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	items := []models.Tag{}
	if err = cursor.All(ctx, &items); err != nil {
		http.Error(w, "Failed to list tags", http.StatusInternalServerError)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, items)
}

func GetTag(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var tag models.Tag
	err := db.TagCollection.FindOne(ctx, bson.M{"tagid": ps.ByName("id")}).Decode(&tag)
	if err != nil {
		http.Error(w, "Tag not found", http.StatusNotFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, tag)
}
