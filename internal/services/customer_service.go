package services

import (
	"fmt"
	"time"

	"streetwear/internal/models"
	"streetwear/internal/repositories"
)

// Customer is the admin console's view of a registered user: identity
// plus order volume and spend.
type Customer struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Orders     int       `json:"orders"`
	TotalSpent float64   `json:"total_spent"`
	LastActive time.Time `json:"last_active"`
}

// CustomerService aggregates users with their order history for the
// admin customer list.
type CustomerService struct {
	userRepo  repositories.UserRepository
	orderRepo repositories.OrderRepository
}

// NewCustomerService creates a new CustomerService.
func NewCustomerService(userRepo repositories.UserRepository, orderRepo repositories.OrderRepository) *CustomerService {
	return &CustomerService{
		userRepo:  userRepo,
		orderRepo: orderRepo,
	}
}

// ListCustomers returns every registered user with order count and total
// spend. Cancelled orders still count toward the order tally but not the
// spend.
func (s *CustomerService) ListCustomers() ([]Customer, error) {
	users, err := s.userRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	orders, err := s.orderRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	type stats struct {
		count      int
		spent      float64
		lastActive time.Time
	}
	byUser := make(map[string]stats)
	for _, o := range orders {
		st := byUser[o.UserID]
		st.count++
		if o.Status != models.StatusCancelled {
			st.spent += o.Total
		}
		if o.CreatedAt.After(st.lastActive) {
			st.lastActive = o.CreatedAt
		}
		byUser[o.UserID] = st
	}

	customers := make([]Customer, 0, len(users))
	for _, u := range users {
		st := byUser[u.ID]
		last := st.lastActive
		if last.IsZero() {
			last = u.CreatedAt
		}
		customers = append(customers, Customer{
			ID:         u.ID,
			Name:       u.Username,
			Email:      u.Email,
			Orders:     st.count,
			TotalSpent: st.spent,
			LastActive: last,
		})
	}
	return customers, nil
}
