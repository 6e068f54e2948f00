package users

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/netops/internal/common"
)

// MemoryRepository keeps users in process memory. Returned users are copies.
type MemoryRepository struct {
	mu      sync.RWMutex
	nextID  int
	byID    map[string]*User
	byEmail map[string]string // normalized email -> user id
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		nextID:  1,
		byID:    make(map[string]*User),
		byEmail: make(map[string]string),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Create assigns the numeric id and creation time. It fails with
// common.ErrorAlreadyExists when the email is taken.
func (r *MemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := normalizeEmail(user.Email)
	if _, ok := r.byEmail[key]; ok {
		return nil, common.ErrorAlreadyExists
	}
	if _, ok := r.byID[user.UserID]; ok {
		return nil, common.ErrorAlreadyExists
	}

	u := *user
	u.ID = r.nextID
	u.CreatedAt = time.Now().UTC()
	r.nextID++

	r.byID[u.UserID] = &u
	r.byEmail[key] = u.UserID

	out := u
	return &out, nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[normalizeEmail(email)]
	if !ok {
		return nil, common.ErrorNotFound
	}
	u := *r.byID[id]
	return &u, nil
}

func (r *MemoryRepository) GetByUserID(ctx context.Context, userID string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[userID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	out := *u
	return &out, nil
}

// UpdateProfile holds the write lock across the read-modify-write, so
// concurrent updates of different fields all survive.
func (r *MemoryRepository) UpdateProfile(ctx context.Context, userID string, p ProfileUpdate) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.byID[userID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	updated := *u
	updated.apply(p)
	r.byID[userID] = &updated

	out := updated
	return &out, nil
}
