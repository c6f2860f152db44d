package handlers

import "net/http"

// Register wires every route onto the mux. One handler per (resource, verb);
// each is independent and stateless.
func Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", Home)
	mux.HandleFunc("GET /dinein", DineIn)

	mux.HandleFunc("GET /api/categories", ListCategories)
	mux.HandleFunc("POST /api/categories", CreateCategory)
	mux.HandleFunc("GET /api/categories/{id}", GetCategory)
	mux.HandleFunc("DELETE /api/categories/{id}", DeleteCategory)
	mux.HandleFunc("GET /api/categories/{id}/dishes", ListCategoryDishes)

	mux.HandleFunc("POST /api/dishes", CreateDish)

	mux.HandleFunc("POST /api/customers", CreateCustomer)
	mux.HandleFunc("GET /api/customers/{mobile_number}", GetCustomerByMobile)
}
