// Package session tracks the signed-in state of each user and pushes changes
// to whoever is watching it.
package session

import (
	"context"
	"errors"
	"sync"

	"alcyxob/fitplanner/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var ErrHubClosed = errors.New("session hub is closed")

// State is what a watcher sees. A session nobody has resolved yet is Loading;
// a signed-out session has a nil User.
type State struct {
	User    *domain.User `json:"user"`
	Loading bool         `json:"loading"`
}

type watcher struct {
	ch chan State
}

// push replaces any unread state so a slow reader only ever sees the latest.
// Callers hold the hub lock.
func (w *watcher) push(s State) {
	select {
	case <-w.ch:
	default:
	}
	w.ch <- s
}

type userSession struct {
	state    State
	watchers map[*watcher]struct{}
}

// Hub is created once at startup, shared by the auth service and the
// handlers, and closed at shutdown.
type Hub struct {
	mu       sync.Mutex
	sessions map[primitive.ObjectID]*userSession
	closed   bool
	done     chan struct{}
	wg       sync.WaitGroup
	logger   *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		sessions: make(map[primitive.ObjectID]*userSession),
		done:     make(chan struct{}),
		logger:   logger,
	}
}

// sessionFor returns the session for userID, creating it in the Loading state.
// Callers hold the hub lock.
func (h *Hub) sessionFor(userID primitive.ObjectID) *userSession {
	s, ok := h.sessions[userID]
	if !ok {
		s = &userSession{
			state:    State{Loading: true},
			watchers: make(map[*watcher]struct{}),
		}
		h.sessions[userID] = s
	}
	return s
}

// prune drops a signed-out session nobody watches; it reads as Loading again,
// like a user the hub has never seen. Callers hold the hub lock.
func (h *Hub) prune(userID primitive.ObjectID, s *userSession) {
	if len(s.watchers) > 0 || s.state.User != nil {
		return
	}
	if h.sessions[userID] == s {
		delete(h.sessions, userID)
	}
}

// Current returns the state for userID without subscribing.
func (h *Hub) Current(userID primitive.ObjectID) State {
	h.mu.Lock()
	defer h.mu.Unlock()
	if s, ok := h.sessions[userID]; ok {
		return s.state
	}
	return State{Loading: true}
}

// SignedIn publishes user as the session's user.
func (h *Hub) SignedIn(user *domain.User) {
	h.publish(user.ID, State{User: user})
}

// SignedOut publishes the absent user.
func (h *Hub) SignedOut(userID primitive.ObjectID) {
	h.publish(userID, State{})
}

func (h *Hub) publish(userID primitive.ObjectID, state State) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}

	s := h.sessionFor(userID)
	s.state = state
	for w := range s.watchers {
		w.push(state)
	}
	h.logger.Debug("session state published",
		zap.String("userId", userID.Hex()),
		zap.Bool("signedIn", state.User != nil),
		zap.Int("watchers", len(s.watchers)),
	)
	h.prune(userID, s)
}

// Watch yields the current state, then every later update. The channel is
// closed when ctx is done or the hub is closed.
func (h *Hub) Watch(ctx context.Context, userID primitive.ObjectID) (<-chan State, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil, ErrHubClosed
	}

	s := h.sessionFor(userID)
	w := &watcher{ch: make(chan State, 1)}
	w.push(s.state)
	s.watchers[w] = struct{}{}

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		select {
		case <-ctx.Done():
		case <-h.done:
		}
		h.mu.Lock()
		delete(s.watchers, w)
		close(w.ch)
		h.prune(userID, s)
		h.mu.Unlock()
	}()

	return w.ch, nil
}

// Close ends every watch and waits for the watchers to be released.
// It is safe to call more than once.
func (h *Hub) Close() {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return
	}
	h.closed = true
	close(h.done)
	h.mu.Unlock()

	h.wg.Wait()
	h.logger.Info("session hub closed")
}
