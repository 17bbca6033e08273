package extract

import (
	"encoding/json"
	"net/http"

	"tagnest/utils"

	"github.com/julienschmidt/httprouter"
)

type extractPayload struct {
	Text     string `json:"text"`
	Mentions bool   `json:"mentions"`
	Hashtags bool   `json:"hashtags"`
}

// POST /api/v1/extract
// Runs the requested passes over the posted text without persisting anything.
func ExtractHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload extractPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	result := ParseSocialText(payload.Text, payload.Mentions, payload.Hashtags)
	utils.RespondWithJSON(w, http.StatusOK, result)
}
