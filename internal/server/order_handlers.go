package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/tigercart/tigercart/internal/metrics"
	"github.com/tigercart/tigercart/internal/storage"
)

func orderID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id, err == nil && id > 0
}

func (s *Server) handlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	var orderRequest struct {
		DeliveryLocation string `json:"delivery_location"`
	}

	if err := json.NewDecoder(r.Body).Decode(&orderRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	order, err := s.storage.PlaceOrder(r.Context(), currentUser(r), orderRequest.DeliveryLocation)
	if err != nil {
		s.respondDomainError(w, "place_order", err)
		return
	}

	s.deliveries.Set(order)
	metrics.OrdersPlacedTotal.Inc()

	respondJSON(w, http.StatusOK, map[string]int64{"order_id": order.ID})
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	status := storage.Status(r.URL.Query().Get("status"))
	if status == "" {
		status = storage.StatusPlaced
	}

	// The placed feed is what deliverers poll; serve it from the cache.
	if status == storage.StatusPlaced {
		orders := s.deliveries.List()
		summaries := make([]storage.OrderSummary, 0, len(orders))
		for _, order := range orders {
			summaries = append(summaries, order.Summary())
		}
		respondJSON(w, http.StatusOK, summaries)
		return
	}

	orders, err := s.storage.ListOrdersByStatus(r.Context(), status)
	if err != nil {
		s.respondDomainError(w, "list_orders", err)
		return
	}
	summaries := make([]storage.OrderSummary, 0, len(orders))
	for _, order := range orders {
		summaries = append(summaries, order.Summary())
	}
	respondJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	order, err := s.storage.GetOrder(r.Context(), id)
	if err != nil {
		s.respondDomainError(w, "get_order", err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (s *Server) handleClaimOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	order, err := s.storage.ClaimOrder(r.Context(), id, currentUser(r))
	if err != nil {
		if errors.Is(err, storage.ErrAlreadyClaimed) {
			metrics.ClaimConflictsTotal.Inc()
		}
		s.respondDomainError(w, "claim_order", err)
		return
	}

	s.deliveries.Delete(id)
	metrics.OrdersClaimedTotal.Inc()
	respondJSON(w, http.StatusOK, order)
}

func (s *Server) handleDeclineOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	if err := s.storage.DeclineOrder(r.Context(), id, currentUser(r)); err != nil {
		s.respondDomainError(w, "decline_order", err)
		return
	}

	// A successful decline may have put the order back on the feed.
	if order, err := s.storage.GetOrder(r.Context(), id); err == nil {
		s.deliveries.Set(order)
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Order declined"})
}

func (s *Server) handleCancelOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	if err := s.storage.CancelOrder(r.Context(), id, currentUser(r)); err != nil {
		s.respondDomainError(w, "cancel_order", err)
		return
	}

	s.deliveries.Delete(id)
	respondJSON(w, http.StatusOK, map[string]string{"message": "Order cancelled"})
}

func (s *Server) handleGetTimeline(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	timeline, err := s.storage.GetTimeline(r.Context(), id)
	if err != nil {
		s.respondDomainError(w, "get_timeline", err)
		return
	}
	respondJSON(w, http.StatusOK, timeline)
}

func (s *Server) handleSetTimelineStep(w http.ResponseWriter, r *http.Request) {
	id, ok := orderID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "Invalid order ID")
		return
	}
	stepName := mux.Vars(r)["step"]

	var stepRequest struct {
		Checked bool `json:"checked"`
	}
	if err := json.NewDecoder(r.Body).Decode(&stepRequest); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	timeline, status, err := s.storage.SetTimelineStep(r.Context(), id, stepName, stepRequest.Checked, currentUser(r))
	if err != nil {
		s.respondDomainError(w, "set_timeline_step", err)
		return
	}

	if status == storage.StatusFulfilled {
		metrics.OrdersFulfilledTotal.Inc()
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":   status,
		"timeline": timeline,
	})
}

func (s *Server) handleMyOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := s.storage.ListUserOrders(r.Context(), currentUser(r))
	if err != nil {
		s.respondDomainError(w, "my_orders", err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (s *Server) handleMyDeliveries(w http.ResponseWriter, r *http.Request) {
	orders, err := s.storage.ListDeliveries(r.Context(), currentUser(r))
	if err != nil {
		s.respondDomainError(w, "my_deliveries", err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}
