package staging

import (
	"sync"
	"time"

	"github.com/billwise/billwise/internal/models"
	"github.com/google/uuid"
)

// TTL is how long a staged invoice stays resolvable. Preview pages open
// immediately after staging, so a short window is enough.
const TTL = 15 * time.Minute

type entry struct {
	invoice models.Invoice
	expires time.Time
}

// Store holds draft invoices handed off from the form to the preview view.
// Entries are keyed by random token and consumed on first read, mirroring a
// one-shot staging record.
type Store struct {
	mu      sync.Mutex
	entries map[string]entry
	now     func() time.Time
}

func New() *Store {
	return &Store{entries: map[string]entry{}, now: time.Now}
}

// Put stages a draft invoice and returns its token.
func (s *Store) Put(inv models.Invoice) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evict()
	token := uuid.NewString()
	s.entries[token] = entry{invoice: inv, expires: s.now().Add(TTL)}
	return token
}

// Take resolves a token and removes it. The second read of the same token
// fails, as does an expired or unknown one.
func (s *Store) Take(token string) (models.Invoice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[token]
	if !ok {
		return models.Invoice{}, false
	}
	delete(s.entries, token)
	if s.now().After(e.expires) {
		return models.Invoice{}, false
	}
	return e.invoice, true
}

// evict drops expired entries; called under lock.
func (s *Store) evict() {
	now := s.now()
	for k, e := range s.entries {
		if now.After(e.expires) {
			delete(s.entries, k)
		}
	}
}
