package services

import (
	"fmt"
	"log"
	"sync"

	"streetwear/internal/models"
	"streetwear/pkg/localstore"

	"github.com/google/uuid"
)

// CartService is the cart ledger: an in-memory line list keyed by
// (product, size), persisted whole to the local store after every
// mutation. Totals are derived on every read, never cached.
type CartService struct {
	store *localstore.Store
	lines []models.CartLine
	mu    sync.Mutex
}

// NewCartService creates a CartService and loads any persisted cart.
// A missing or corrupt persisted cart is non-fatal: the service starts
// empty and logs the condition.
func NewCartService(store *localstore.Store) *CartService {
	s := &CartService{store: store}
	if store != nil {
		var lines []models.CartLine
		if err := store.Get(localstore.KeyCart, &lines); err != nil {
			if err != localstore.ErrNotFound {
				log.Printf("Failed to load persisted cart, starting empty: %v", err)
			}
		} else {
			s.lines = lines
		}
	}
	return s
}

// AddItem adds one unit of the product in the given size. An existing
// (product, size) line has its quantity incremented; otherwise a new
// snapshot line is appended with a fresh cart ID.
func (s *CartService) AddItem(product *models.Product, size string) (*models.CartLine, error) {
	if !product.HasSize(size) {
		return nil, fmt.Errorf("product %s is not offered in size %s", product.ID, size)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ProductID == product.ID && s.lines[i].SelectedSize == size {
			s.lines[i].Quantity++
			s.persist()
			line := s.lines[i]
			return &line, nil
		}
	}

	line := models.CartLine{
		CartID:       uuid.New().String(),
		ProductID:    product.ID,
		Name:         product.Name,
		Price:        product.Price,
		Image:        product.PrimaryImage(),
		SelectedSize: size,
		Quantity:     1,
	}
	s.lines = append(s.lines, line)
	s.persist()
	return &line, nil
}

// RemoveItem deletes the line with the given cart ID. Removing an absent
// line is a no-op.
func (s *CartService) RemoveItem(cartID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].CartID == cartID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			s.persist()
			return
		}
	}
}

// UpdateQuantity replaces a line's quantity. Quantities below 1 are
// rejected as a no-op; the decrement control bottoms out at 1.
func (s *CartService) UpdateQuantity(cartID string, quantity int) {
	if quantity < 1 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].CartID == cartID {
			s.lines[i].Quantity = quantity
			s.persist()
			return
		}
	}
}

// Clear empties the cart.
func (s *CartService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	s.persist()
}

// Items returns a copy of the current lines.
func (s *CartService) Items() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.CartLine, len(s.lines))
	copy(items, s.lines)
	return items
}

// Total is the sum of line subtotals, recomputed on every call.
func (s *CartService) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total float64
	for i := range s.lines {
		total += s.lines[i].Subtotal()
	}
	return total
}

// ItemCount is the total number of units across all lines.
func (s *CartService) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for i := range s.lines {
		count += s.lines[i].Quantity
	}
	return count
}

// persist writes the full line list; callers hold the lock. Persistence
// failure is logged, never propagated: the in-memory cart stays valid.
func (s *CartService) persist() {
	if s.store == nil {
		return
	}
	lines := s.lines
	if lines == nil {
		lines = []models.CartLine{}
	}
	if err := s.store.Put(localstore.KeyCart, lines); err != nil {
		log.Printf("Failed to persist cart: %v", err)
	}
}
