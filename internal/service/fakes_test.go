package service

import (
	"errors"
	"sort"
	"sync"
	"time"

	"barakatfresh/internal/domain"
)

// 内存版仓储，测试专用

var errDup = errors.New("Error 1062 (23000): Duplicate entry")

type memUsers struct {
	mu sync.RWMutex
	m  map[string]domain.User
}

func newMemUsers() *memUsers { return &memUsers{m: map[string]domain.User{}} }

func (s *memUsers) Create(u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.m {
		if e.Email == u.Email {
			return errDup
		}
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	s.m[u.ID] = *u
	return nil
}

func (s *memUsers) FindByID(id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if u, ok := s.m[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (s *memUsers) FindByEmail(email string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.m {
		if u.Email == email {
			uc := u
			return &uc, nil
		}
	}
	return nil, nil
}

func (s *memUsers) List() ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.User, 0, len(s.m))
	for _, u := range s.m {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *memUsers) UpdateRole(id, role string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.m[id]
	if !ok {
		return nil, nil
	}
	u.Role = role
	s.m[id] = u
	return &u, nil
}

func (s *memUsers) UpdateStatus(id, status string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.m[id]
	if !ok {
		return nil, nil
	}
	u.Status = status
	s.m[id] = u
	return &u, nil
}

func (s *memUsers) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m[id]; !ok {
		return false, nil
	}
	delete(s.m, id)
	return true, nil
}

func (s *memUsers) Stats(recentSince time.Time) (*domain.UserStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	st := &domain.UserStats{}
	for _, u := range s.m {
		st.TotalUsers++
		if u.Role == domain.RoleAdmin {
			st.AdminUsers++
		} else {
			st.RegularUsers++
		}
		switch u.Status {
		case domain.UserActive:
			st.ActiveUsers++
		case domain.UserInactive:
			st.InactiveUsers++
		case domain.UserSuspended:
			st.SuspendedUsers++
		}
		if !u.CreatedAt.Before(recentSince) {
			st.RecentUsers++
		}
	}
	return st, nil
}

func (s *memUsers) Summaries(ids []string) (map[string]domain.UserSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := map[string]domain.UserSummary{}
	for _, id := range ids {
		if u, ok := s.m[id]; ok {
			out[id] = domain.UserSummary{Name: u.Name, Email: u.Email}
		}
	}
	return out, nil
}

type memCategories struct {
	mu sync.RWMutex
	m  map[string]domain.Category
}

func newMemCategories() *memCategories { return &memCategories{m: map[string]domain.Category{}} }

func (s *memCategories) Create(c *domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.m {
		if e.Name == c.Name {
			return errDup
		}
	}
	now := time.Now()
	c.CreatedAt, c.UpdatedAt = now, now
	s.m[c.ID] = *c
	return nil
}

func (s *memCategories) FindByID(id string) (*domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.m[id]; ok {
		return &c, nil
	}
	return nil, nil
}

func (s *memCategories) FindByName(name string) (*domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.m {
		if c.Name == name {
			cc := c
			return &cc, nil
		}
	}
	return nil, nil
}

func (s *memCategories) List(includeInactive bool) ([]domain.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Category{}
	for _, c := range s.m {
		if !includeInactive && !c.IsActive {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *memCategories) ListForNavbar() ([]domain.NavbarCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.NavbarCategory{}
	for _, c := range s.m {
		if !c.IsActive || len(c.Subcategories) == 0 {
			continue
		}
		out = append(out, domain.NavbarCategory{
			ID: c.ID, Name: c.Name, Image: c.Image, Subcategories: c.Subcategories,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *memCategories) Update(c *domain.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m[c.ID]; !ok {
		return errors.New("not found")
	}
	c.UpdatedAt = time.Now()
	s.m[c.ID] = *c
	return nil
}

func (s *memCategories) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m[id]; !ok {
		return false, nil
	}
	delete(s.m, id)
	return true, nil
}

type memProducts struct {
	mu sync.RWMutex
	m  map[string]domain.Product
}

func newMemProducts() *memProducts { return &memProducts{m: map[string]domain.Product{}} }

func (s *memProducts) Create(p *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	p.CreatedAt, p.UpdatedAt = now, now
	s.m[p.ID] = *p
	return nil
}

func (s *memProducts) FindByID(id string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.m[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (s *memProducts) List() ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, 0, len(s.m))
	for _, p := range s.m {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *memProducts) Update(p *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m[p.ID]; !ok {
		return errors.New("not found")
	}
	p.UpdatedAt = time.Now()
	s.m[p.ID] = *p
	return nil
}

func (s *memProducts) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m[id]; !ok {
		return false, nil
	}
	delete(s.m, id)
	return true, nil
}

type memOrders struct {
	mu  sync.RWMutex
	m   map[string]domain.Order
	seq int
}

func newMemOrders() *memOrders { return &memOrders{m: map[string]domain.Order{}} }

func (s *memOrders) Create(o *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	// 保证倒序排序稳定
	o.CreatedAt = time.Now().Add(time.Duration(s.seq) * time.Millisecond)
	s.m[o.ID] = *o
	return nil
}

func (s *memOrders) FindByID(id string) (*domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if o, ok := s.m[id]; ok {
		return &o, nil
	}
	return nil, nil
}

func (s *memOrders) List() ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Order, 0, len(s.m))
	for _, o := range s.m {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *memOrders) ListByUser(userID string) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Order{}
	for _, o := range s.m {
		if o.UserID != nil && *o.UserID == userID {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *memOrders) UpdateStatus(id, status string) (*domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.m[id]
	if !ok {
		return nil, nil
	}
	o.Status = status
	s.m[id] = o
	return &o, nil
}

func (s *memOrders) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m[id]; !ok {
		return false, nil
	}
	delete(s.m, id)
	return true, nil
}
