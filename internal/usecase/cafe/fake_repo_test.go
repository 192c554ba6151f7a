package cafe

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/BruksfildServices01/cafe-api/internal/httperr"
	"github.com/BruksfildServices01/cafe-api/internal/models"
)

var errStore = errors.New("store unavailable")

type fakeRepo struct {
	mu     sync.Mutex
	rows   map[uint]models.Cafe
	nextID uint
	fail   bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rows: map[uint]models.Cafe{}, nextID: 1}
}

func (r *fakeRepo) nameTaken(name string, except uint) bool {
	for id, c := range r.rows {
		if id != except && c.Name == name {
			return true
		}
	}
	return false
}

func (r *fakeRepo) Create(_ context.Context, c *models.Cafe) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errStore
	}
	if r.nameTaken(c.Name, 0) {
		return httperr.ErrField(httperr.CodeDuplicateName, "name")
	}
	c.ID = r.nextID
	r.nextID++
	r.rows[c.ID] = *c
	return nil
}

func (r *fakeRepo) GetByID(_ context.Context, id uint) (*models.Cafe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return nil, errStore
	}
	c, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *fakeRepo) sorted(keep func(models.Cafe) bool) []models.Cafe {
	var out []models.Cafe
	for _, c := range r.rows {
		if keep(c) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *fakeRepo) List(_ context.Context) ([]models.Cafe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return nil, errStore
	}
	return r.sorted(func(models.Cafe) bool { return true }), nil
}

func (r *fakeRepo) ListByLocation(_ context.Context, location string) ([]models.Cafe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return nil, errStore
	}
	return r.sorted(func(c models.Cafe) bool { return c.Location == location }), nil
}

func (r *fakeRepo) ListIDs(_ context.Context) ([]uint, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return nil, errStore
	}
	var ids []uint
	for _, c := range r.sorted(func(models.Cafe) bool { return true }) {
		ids = append(ids, c.ID)
	}
	return ids, nil
}

func (r *fakeRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.rows)), nil
}

func (r *fakeRepo) Update(_ context.Context, c *models.Cafe) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errStore
	}
	if _, ok := r.rows[c.ID]; !ok {
		return httperr.ErrBusiness(httperr.CodeCafeNotFound)
	}
	if r.nameTaken(c.Name, c.ID) {
		return httperr.ErrField(httperr.CodeDuplicateName, "name")
	}
	r.rows[c.ID] = *c
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.fail {
		return errStore
	}
	if _, ok := r.rows[id]; !ok {
		return httperr.ErrBusiness(httperr.CodeCafeNotFound)
	}
	delete(r.rows, id)
	return nil
}
