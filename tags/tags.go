package tags

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"tagnest/db"
	"tagnest/models"
	"tagnest/rdx"
	"tagnest/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// trendingKey picks the sorted set for the requested kind (hashtags default).
func trendingKey(r *http.Request) string {
	if r.URL.Query().Get("kind") == "mention" {
		return rdx.TrendingMentionsKey
	}
	return rdx.TrendingHashtagsKey
}

func trendingLimit(r *http.Request) int {
	limit := 20
	if l := r.URL.Query().Get("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 100 {
			limit = v
		}
	}
	return limit
}

// GET /api/v1/tags/trending
func GetTrendingTags(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	limit := trendingLimit(r)

	entries, err := rdx.TopTrending(trendingKey(r), int64(limit))
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch trending tags")
		return
	}

	trending := make([]models.TrendingTag, 0, len(entries))
	for _, z := range entries {
		name, _ := z.Member.(string)
		trending = append(trending, models.TrendingTag{Tag: name, Count: z.Score})
	}

	utils.RespondWithJSON(w, http.StatusOK, trending)
}

// GET /api/v1/tag/:tag
// Returns the index document for one hashtag (or mention via ?kind=mention).
func GetTag(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	name := ps.ByName("tag")
	if name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing tag parameter")
		return
	}

	kind := "hashtag"
	marker := "#"
	if r.URL.Query().Get("kind") == "mention" {
		kind = "mention"
		marker = "@"
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var tag models.Tag
	err := db.TagsCollection.FindOne(ctx, bson.M{"name": marker + name, "kind": kind}).Decode(&tag)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Tag not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, tag)
}
