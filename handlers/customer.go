package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"dinein/services"
)

type createCustomerRequest struct {
	Name         string `json:"name"`
	MobileNumber string `json:"mobile_number"`
}

func CreateCustomer(w http.ResponseWriter, r *http.Request) {
	const msg = "Name and Mobile Number are required"

	var req createCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	if missingAny(req.Name, req.MobileNumber) {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	c, err := services.CreateCustomer(r.Context(), req.Name, req.MobileNumber)
	if err != nil {
		internalError(w, "create customer", err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func GetCustomerByMobile(w http.ResponseWriter, r *http.Request) {
	mobile := r.PathValue("mobile_number")
	c, err := services.GetCustomerByMobile(r.Context(), mobile)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Customer not found")
			return
		}
		internalError(w, "get customer", err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}
