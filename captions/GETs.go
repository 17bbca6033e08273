package captions

import (
	"context"
	"net/http"
	"time"

	"tagnest/db"
	"tagnest/models"
	"tagnest/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GET /api/v1/tag/:tag/captions
// The route param carries the tag without its marker.
func GetCaptionsByTag(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tag := ps.ByName("tag")
	if tag == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing tag parameter")
		return
	}
	listCaptions(w, r, bson.M{"hashtags": "#" + tag})
}

// GET /api/v1/mention/:handle/captions
func GetCaptionsByMention(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	handle := ps.ByName("handle")
	if handle == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing handle parameter")
		return
	}
	listCaptions(w, r, bson.M{"mentions": "@" + handle})
}

func listCaptions(w http.ResponseWriter, r *http.Request, filter bson.M) {
	page, limit := utils.ParsePagination(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetSkip(int64(page * limit)).
		SetLimit(int64(limit))

	cursor, err := db.CaptionsCollection.Find(ctx, filter, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "DB error")
		return
	}
	defer cursor.Close(ctx)

	captions := []models.Caption{}
	if err := cursor.All(ctx, &captions); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode captions")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, captions)
}
