package handlers

import "net/http"

// Home redirects the bare host to the dine-in landing page.
func Home(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/dinein", http.StatusFound)
}

func DineIn(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("Welcome to the Dine-In Page"))
}
