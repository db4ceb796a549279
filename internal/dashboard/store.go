package dashboard

import (
	"sync"

	"github.com/vreeburg/warehouse-dashboard/internal/record"
)

// Store owns the application state: the canonical record collections
// last fetched from the remote store. All mutation goes through the
// methods below; each replaces or merges its collection atomically, so
// a reader never observes a half-updated list.
type Store struct {
	mu        sync.RWMutex
	products  []record.Product
	orders    []record.Order
	workers   []record.Worker
	customers []record.Customer
	users     []record.User
	settings  record.Settings
}

func NewStore() *Store {
	return &Store{settings: record.Settings{}}
}

func (s *Store) SetProducts(products []record.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = products
}

func (s *Store) Products() []record.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products
}

// UpsertProduct replaces the product with the same id, or appends when
// the id is new (mirrors the post-create merge the UI always did).
func (s *Store) UpsertProduct(p record.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]record.Product, len(s.products))
	copy(next, s.products)
	for i := range next {
		if next[i].ID == p.ID {
			next[i] = p
			s.products = next
			return
		}
	}
	s.products = append(next, p)
}

func (s *Store) SetOrders(orders []record.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = orders
}

func (s *Store) Orders() []record.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.orders
}

// OrderByID looks the order up in the current snapshot.
func (s *Store) OrderByID(id int64) (record.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return record.Order{}, false
}

// ReplaceOrder swaps in the server's updated order, keeping position.
// Unknown ids are appended.
func (s *Store) ReplaceOrder(o record.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := make([]record.Order, len(s.orders))
	copy(next, s.orders)
	for i := range next {
		if next[i].ID == o.ID {
			next[i] = o
			s.orders = next
			return
		}
	}
	s.orders = append(next, o)
}

func (s *Store) SetWorkers(workers []record.Worker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workers = workers
}

func (s *Store) Workers() []record.Worker {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.workers
}

func (s *Store) WorkerByID(id int64) (record.Worker, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, w := range s.workers {
		if w.ID == id {
			return w, true
		}
	}
	return record.Worker{}, false
}

func (s *Store) SetCustomers(customers []record.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = customers
}

func (s *Store) Customers() []record.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.customers
}

func (s *Store) SetUsers(users []record.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = users
}

func (s *Store) Users() []record.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users
}

func (s *Store) SetSettings(settings record.Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
}

func (s *Store) Settings() record.Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}
