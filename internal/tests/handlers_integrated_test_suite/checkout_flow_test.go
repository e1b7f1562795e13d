package handlers_integrated_test_suite

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"

	handler "github.com/rogerio-castellano/grillaway/internal/http/handlers"
)

func TestCheckoutFlowSurvivesRestart(t *testing.T) {
	for _, b := range backends(t) {
		t.Run(b.name, func(t *testing.T) {
			r, _ := boot(t, b)

			w := send(r, http.MethodPost, "/admin/products", handler.ProductRequest{Name: "Arang Batok 5 kg", Category: "tool", Price: 45000})
			if w.Code != http.StatusCreated {
				t.Fatalf("expected 201 creating a product, got %d", w.Code)
			}
			var created handler.ProductResponse
			json.NewDecoder(w.Body).Decode(&created)

			send(r, http.MethodPost, "/cart/items", handler.CartItemRequest{Id: 2})
			send(r, http.MethodPost, "/cart/items", handler.CartItemRequest{Id: created.Id})

			w = send(r, http.MethodPost, "/checkout", handler.CheckoutRequest{Delivery: "internal", Payment: "transfer", Address: "Jl. Braga 10"})
			if w.Code != http.StatusCreated {
				t.Fatalf("expected 201 placing the order, got %d: %s", w.Code, w.Body.String())
			}
			var order handler.OrderResponse
			json.NewDecoder(w.Body).Decode(&order)
			if order.Total != 170000+45000+20000 {
				t.Errorf("expected total 235000, got %d", order.Total)
			}

			send(r, http.MethodPost, "/cart/items", handler.CartItemRequest{Id: 5})

			restarted, _ := boot(t, b)

			w = send(restarted, http.MethodGet, "/orders/"+order.Id, nil)
			if w.Code != http.StatusOK {
				t.Fatalf("expected the order to survive a restart, got %d", w.Code)
			}

			w = send(restarted, http.MethodGet, "/products/"+fmt.Sprint(created.Id), nil)
			if w.Code != http.StatusOK {
				t.Errorf("expected the created product to survive a restart, got %d", w.Code)
			}

			w = send(restarted, http.MethodGet, "/cart", nil)
			var cart handler.CartResponse
			json.NewDecoder(w.Body).Decode(&cart)
			if cart.Count != 1 || cart.Total != 20000 {
				t.Errorf("expected only the addon added after checkout, got %+v", cart)
			}
		})
	}
}

func TestDeletedProductStaysDanglingAcrossRestart(t *testing.T) {
	for _, b := range backends(t) {
		t.Run(b.name, func(t *testing.T) {
			r, _ := boot(t, b)

			send(r, http.MethodPost, "/cart/items", handler.CartItemRequest{Id: 1})
			send(r, http.MethodPost, "/cart/items", handler.CartItemRequest{Id: 4})
			if w := send(r, http.MethodDelete, "/admin/products/4", nil); w.Code != http.StatusNoContent {
				t.Fatalf("expected 204, got %d", w.Code)
			}

			_, s := boot(t, b)
			if got := len(s.Cart.Lines()); got != 2 {
				t.Errorf("expected the dangling line to be kept, got %d lines", got)
			}
			if got := s.Cart.Total(); got != 120000 {
				t.Errorf("expected total 120000 without the deleted product, got %d", got)
			}
		})
	}
}

func TestConcurrentCartAdds(t *testing.T) {
	for _, b := range backends(t) {
		t.Run(b.name, func(t *testing.T) {
			r, s := boot(t, b)

			const adds = 20
			var wg sync.WaitGroup
			for i := 0; i < adds; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					send(r, http.MethodPost, "/cart/items", handler.CartItemRequest{Id: 3})
				}()
			}
			wg.Wait()

			if got := s.Cart.Count(); got != adds {
				t.Fatalf("expected %d units, got %d", adds, got)
			}

			_, reloaded := boot(t, b)
			if got := reloaded.Cart.Count(); got != adds {
				t.Errorf("expected %d units after restart, got %d", adds, got)
			}
		})
	}
}
