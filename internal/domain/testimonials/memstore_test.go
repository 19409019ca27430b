package testimonials

import (
	"context"
	"sort"
	"sync"
	"time"
)

// memStore is an in-memory Store whose timestamps come from a controllable
// clock.
type memStore struct {
	mu     sync.Mutex
	rows   []Testimonial
	nextID int64
	now    func() time.Time

	createErr error
	listErr   error
	statsErr  error
	countErr  error
}

func newMemStore(now func() time.Time) *memStore {
	return &memStore{now: now}
}

func (m *memStore) Create(_ context.Context, t *Testimonial) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	m.nextID++
	t.ID = m.nextID
	if t.Status == "" {
		t.Status = StatusPending
	}
	t.CreatedAt = m.now()
	t.UpdatedAt = t.CreatedAt
	m.rows = append(m.rows, *t)
	return nil
}

func (m *memStore) GetByID(_ context.Context, id int64) (*Testimonial, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range m.rows {
		if r.ID == id {
			cp := r
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *memStore) CountByIPSince(_ context.Context, ip string, since time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.countErr != nil {
		return 0, m.countErr
	}
	n := 0
	for _, r := range m.rows {
		if r.IPAddress == ip && r.CreatedAt.After(since) {
			n++
		}
	}
	return n, nil
}

func (m *memStore) List(_ context.Context, f ListFilter) ([]Testimonial, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	matched := []Testimonial{}
	for _, r := range m.rows {
		if f.Status == nil || r.Status == *f.Status {
			matched = append(matched, r)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID > matched[j].ID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	if f.Offset >= len(matched) {
		return []Testimonial{}, nil
	}
	end := f.Offset + f.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return append([]Testimonial{}, matched[f.Offset:end]...), nil
}

func (m *memStore) Stats(_ context.Context, recentSince time.Time) (Statistics, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.statsErr != nil {
		return Statistics{}, m.statsErr
	}
	var s Statistics
	sum := 0
	for _, r := range m.rows {
		s.TotalCount++
		sum += r.Rating
		if r.Status == StatusApproved {
			s.ApprovedCount++
		}
		if r.CreatedAt.After(recentSince) {
			s.RecentCount++
		}
	}
	if s.TotalCount > 0 {
		s.AverageRating = float64(sum) / float64(s.TotalCount)
	}
	return s, nil
}

func (m *memStore) UpdateStatus(_ context.Context, id int64, status Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].ID == id {
			m.rows[i].Status = status
			m.rows[i].UpdatedAt = m.now()
			return nil
		}
	}
	return ErrNotFound
}

func (m *memStore) BulkUpdateStatus(_ context.Context, ids []int64, status Status) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	want := make(map[int64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var n int64
	for i := range m.rows {
		if want[m.rows[i].ID] {
			m.rows[i].Status = status
			m.rows[i].UpdatedAt = m.now()
			n++
		}
	}
	return n, nil
}

func (m *memStore) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.rows {
		if m.rows[i].ID == id {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *memStore) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rows)
}

// fakeClock advances only when told to.
type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.t = c.t.Add(d)
	c.mu.Unlock()
}
