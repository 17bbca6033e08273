package captions

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"tagnest/db"
	"tagnest/extract"
	"tagnest/middleware"
	"tagnest/models"
	"tagnest/mq"
	"tagnest/rdx"
	"tagnest/stream"
	"tagnest/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

type captionPayload struct {
	Text string `json:"text"`
}

// POST /api/v1/captions
// Ingests one caption: extract both token classes, persist, bump trending,
// emit tag events and push occurrences to live subscribers.
func CreateCaption(hub *stream.Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		ctx := r.Context()
		claims, err := middleware.ValidateJWT(r.Header.Get("Authorization"))
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		var payload captionPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if payload.Text == "" {
			http.Error(w, "Text is required", http.StatusBadRequest)
			return
		}

		result := extract.ParseSocialText(payload.Text, true, true)

		caption := models.Caption{
			CaptionID: uuid.NewString(),
			UserID:    claims.UserID,
			Text:      payload.Text,
			Mentions:  result.Mentions,
			Hashtags:  result.Hashtags,
			CreatedAt: time.Now(),
		}

		if _, err := db.CaptionsCollection.InsertOne(ctx, caption); err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to store caption")
			return
		}

		rdx.BumpTrending(rdx.TrendingHashtagsKey, result.Hashtags)
		rdx.BumpTrending(rdx.TrendingMentionsKey, result.Mentions)

		mq.EmitTagEvents("hashtag", caption.CaptionID, result.Hashtags)
		mq.EmitTagEvents("mention", caption.CaptionID, result.Mentions)

		hub.PublishOccurrences("hashtag", caption.CaptionID, result.Hashtags)
		hub.PublishOccurrences("mention", caption.CaptionID, result.Mentions)

		utils.RespondWithJSON(w, http.StatusCreated, map[string]any{
			"ok":   true,
			"data": caption,
		})
	}
}

// GET /api/v1/captions/:captionid
func GetCaption(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var caption models.Caption
	err := db.CaptionsCollection.FindOne(ctx, bson.M{"captionid": ps.ByName("captionid")}).Decode(&caption)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Caption not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, caption)
}

// DELETE /api/v1/captions/:captionid
func DeleteCaption(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	claims, err := middleware.ValidateJWT(r.Header.Get("Authorization"))
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	captionID := ps.ByName("captionid")

	var caption models.Caption
	if err := db.CaptionsCollection.FindOne(ctx, bson.M{"captionid": captionID}).Decode(&caption); err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Caption not found")
		return
	}
	if caption.UserID != claims.UserID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	if _, err := db.CaptionsCollection.DeleteOne(ctx, bson.M{"captionid": captionID}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete caption")
		return
	}

	utils.SendResponse(w, http.StatusOK, nil, "Caption deleted", nil)
}
