package catalog

import "strings"

// Store holds the demo catalog: orders, products and policies. All data is
// loaded once in New and never mutated afterwards, so it is safe to share
// between request handlers without locking.
type Store struct {
	orders     map[string]Order
	products   map[string]Product
	orderIDs   []string
	productIDs []string
	policies   Policies
}

func New() *Store {
	s := &Store{
		orders:   make(map[string]Order, len(fixtureOrders)),
		products: make(map[string]Product, len(fixtureProducts)),
		policies: fixturePolicies,
	}
	for _, o := range fixtureOrders {
		s.orders[o.ID] = o
		s.orderIDs = append(s.orderIDs, o.ID)
	}
	for _, p := range fixtureProducts {
		s.products[p.ID] = p
		s.productIDs = append(s.productIDs, p.ID)
	}
	return s
}

// Order looks up an order by ID. Lookup is case-insensitive; absence is a
// normal outcome, not an error.
func (s *Store) Order(id string) (Order, bool) {
	o, ok := s.orders[strings.ToUpper(id)]
	return o, ok
}

// Product looks up a product by SKU, case-insensitively.
func (s *Store) Product(id string) (Product, bool) {
	p, ok := s.products[strings.ToUpper(id)]
	return p, ok
}

// FindProductByName returns the first product whose name contains the given
// keyword, scanning products in fixture order.
func (s *Store) FindProductByName(keyword string) (Product, bool) {
	keyword = strings.ToLower(keyword)
	for _, id := range s.productIDs {
		p := s.products[id]
		if strings.Contains(strings.ToLower(p.Name), keyword) {
			return p, true
		}
	}
	return Product{}, false
}

// Orders returns all orders in fixture order.
func (s *Store) Orders() []Order {
	out := make([]Order, 0, len(s.orderIDs))
	for _, id := range s.orderIDs {
		out = append(out, s.orders[id])
	}
	return out
}

// Products returns all products in fixture order.
func (s *Store) Products() []Product {
	out := make([]Product, 0, len(s.productIDs))
	for _, id := range s.productIDs {
		out = append(out, s.products[id])
	}
	return out
}

func (s *Store) Policies() Policies {
	return s.policies
}
