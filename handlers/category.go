package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"dinein/models"
	"dinein/services"
)

const categoryNotFound = "Category not found"

func ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := services.ListCategories(r.Context())
	if err != nil {
		internalError(w, "list categories", err)
		return
	}
	writeJSON(w, http.StatusOK, categories)
}

func GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		// non-numeric ids name no category
		writeError(w, http.StatusNotFound, categoryNotFound)
		return
	}
	c, err := services.GetCategory(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeError(w, http.StatusNotFound, categoryNotFound)
			return
		}
		internalError(w, "get category", err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

type createCategoryRequest struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

func CreateCategory(w http.ResponseWriter, r *http.Request) {
	const msg = "Both category name and image_url are required"

	var req createCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	if missingAny(req.Name, req.ImageURL) {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	c, err := services.CreateCategory(r.Context(), req.Name, req.ImageURL)
	if err != nil {
		internalError(w, "create category", err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, categoryNotFound)
		return
	}
	if err := services.DeleteCategory(r.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeError(w, http.StatusNotFound, categoryNotFound)
			return
		}
		internalError(w, "delete category", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Category deleted successfully"})
}

// ListCategoryDishes never 404s: the category id is not validated against
// existence, a category with no dishes is just an empty list.
func ListCategoryDishes(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusOK, []models.Dish{})
		return
	}
	dishes, err := services.ListDishesByCategory(r.Context(), id)
	if err != nil {
		internalError(w, "list dishes", err)
		return
	}
	writeJSON(w, http.StatusOK, dishes)
}
