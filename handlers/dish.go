package handlers

import (
	"encoding/json"
	"net/http"

	"dinein/services"
)

type createDishRequest struct {
	Name       string `json:"name"`
	ImageURL   string `json:"image_url"`
	Price      int64  `json:"price"`
	CategoryID int64  `json:"category_id"`
}

func CreateDish(w http.ResponseWriter, r *http.Request) {
	const msg = "All fields are required"

	var req createDishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	// a zero price counts as missing, same as an absent field
	if missingAny(req.Name, req.ImageURL, req.Price, req.CategoryID) {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	d, err := services.CreateDish(r.Context(), req.Name, req.ImageURL, req.Price, req.CategoryID)
	if err != nil {
		internalError(w, "create dish", err)
		return
	}
	writeJSON(w, http.StatusCreated, d)
}
