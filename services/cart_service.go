package services

import (
	"context"
	"sync"
	"time"

	"posadmin_server/pos"
	"posadmin_server/structs"
	"posadmin_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

type customerLister interface {
	GetCustomers(ctx context.Context) ([]tables.Customer, error)
}

type sessionCart struct {
	mu      sync.Mutex
	cart    *pos.Cart
	touched time.Time
}

// CartService keeps one in-memory cart per POS session. Sessions are keyed
// by an opaque id the terminal supplies and expire after a configured idle
// period. All access goes through WithCart so cart mutations are serialized
// per session while sessions stay independent.
type CartService struct {
	logger    *gecho.Logger
	cfg       *structs.Config
	customers customerLister

	mu       sync.Mutex
	sessions map[string]*sessionCart
}

func NewCartService(logger *gecho.Logger, cfg *structs.Config, customers customerLister) *CartService {
	return &CartService{
		logger:    logger,
		cfg:       cfg,
		customers: customers,
		sessions:  make(map[string]*sessionCart),
	}
}

// WithCart runs fn with exclusive access to the session's cart, creating the
// cart on first use. New carts default to the walk-in customer when the
// directory holds one.
func (cs *CartService) WithCart(ctx context.Context, sessionID string, fn func(cart *pos.Cart) error) error {
	session := cs.session(ctx, sessionID)

	session.mu.Lock()
	defer session.mu.Unlock()

	return fn(session.cart)
}

// Reset discards the session's cart entirely, customer selection included.
func (cs *CartService) Reset(sessionID string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	delete(cs.sessions, sessionID)
}

func (cs *CartService) session(ctx context.Context, sessionID string) *sessionCart {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.evictStaleLocked()

	if session, ok := cs.sessions[sessionID]; ok {
		session.touched = time.Now()
		return session
	}

	session := &sessionCart{
		cart:    cs.newCart(ctx),
		touched: time.Now(),
	}
	cs.sessions[sessionID] = session
	return session
}

func (cs *CartService) newCart(ctx context.Context) *pos.Cart {
	if cs.customers == nil {
		return pos.New()
	}

	customers, err := cs.customers.GetCustomers(ctx)
	if err != nil {
		cs.logger.Warn("Could not load customers for new cart", gecho.Field("error", err.Error()))
		return pos.New()
	}

	return pos.NewForCustomers(customers, cs.cfg.Pos.WalkInCustomerName)
}

// evictStaleLocked drops sessions idle past the TTL. Caller holds cs.mu.
func (cs *CartService) evictStaleLocked() {
	ttl := cs.cfg.Pos.SessionTTL
	if ttl <= 0 {
		return
	}

	cutoff := time.Now().Add(-ttl)
	for id, session := range cs.sessions {
		if session.touched.Before(cutoff) {
			delete(cs.sessions, id)
		}
	}
}
