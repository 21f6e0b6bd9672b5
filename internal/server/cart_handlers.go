package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.storage.ListItems(r.Context())
	if err != nil {
		s.respondDomainError(w, "list_items", err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (s *Server) handleGetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := s.storage.GetCart(r.Context(), currentUser(r))
	if err != nil {
		s.respondDomainError(w, "get_cart", err)
		return
	}
	respondJSON(w, http.StatusOK, cart)
}

func (s *Server) handleUpdateCart(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["item_id"]

	var cartRequest struct {
		Action   string `json:"action"`
		Quantity int    `json:"quantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&cartRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID := currentUser(r)
	switch cartRequest.Action {
	case "add":
		cart, err := s.storage.AddToCart(r.Context(), userID, itemID)
		if err != nil {
			s.respondDomainError(w, "cart_add", err)
			return
		}
		respondJSON(w, http.StatusOK, cart)
	case "delete":
		cart, err := s.storage.RemoveFromCart(r.Context(), userID, itemID)
		if err != nil {
			s.respondDomainError(w, "cart_delete", err)
			return
		}
		respondJSON(w, http.StatusOK, cart)
	case "update":
		cart, err := s.storage.UpdateCartQuantity(r.Context(), userID, itemID, cartRequest.Quantity)
		if err != nil {
			s.respondDomainError(w, "cart_update", err)
			return
		}
		respondJSON(w, http.StatusOK, cart)
	default:
		respondError(w, http.StatusBadRequest, "Invalid action. Use 'add', 'delete' or 'update'")
	}
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	profile, err := s.storage.GetProfile(r.Context(), currentUser(r))
	if err != nil {
		s.respondDomainError(w, "get_profile", err)
		return
	}
	respondJSON(w, http.StatusOK, profile)
}
