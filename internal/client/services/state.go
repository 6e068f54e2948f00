// Package services contains application services for the netops client.
// This file defines the state container: the single owner of the UI state,
// the reducer that maps presentation events onto it, and the launcher for
// the remote calls those events trigger.
package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/netops/internal/client/client"
	"github.com/dmitrijs2005/netops/internal/client/models"
	"github.com/dmitrijs2005/netops/internal/logging"
)

// StateContainer owns the UI state and is its only writer.
//
// Contract:
//   - Current: latest snapshot, never blocks on network I/O.
//   - Observe: a stream that first replays the latest snapshot and then
//     delivers every later one in order. Closed when ctx is done, or once
//     the snapshots queued before Close have been delivered.
//   - Dispatch: applies one event atomically. Remote calls run in the
//     background; their results go back through the same serialized path.
//   - Wait: blocks until every launched remote call has been applied or dropped.
//   - Close: detaches the container; late results are dropped. Snapshots
//     already queued for an observer are still delivered.
type StateContainer interface {
	Current() models.UiState
	Observe(ctx context.Context) <-chan models.UiState
	Dispatch(ev models.Event)
	Wait()
	Close()
}

// transition computes the success state of a remote call from the state
// current at completion time.
type transition func(models.UiState) models.UiState

type stateContainer struct {
	ctx    context.Context
	client client.AuthClient
	logger logging.Logger

	mu       sync.Mutex
	state    models.UiState
	subs     map[*subscriber]struct{}
	observed bool
	closed   bool
	done     chan struct{}

	inflight sync.WaitGroup
}

// NewStateContainer builds a container in the session-start state. Remote
// calls inherit ctx values but not its cancellation.
func NewStateContainer(ctx context.Context, c client.AuthClient, logger logging.Logger) StateContainer {
	if logger == nil {
		logger = logging.Nop()
	}
	return &stateContainer{
		ctx:    context.WithoutCancel(ctx),
		client: c,
		logger: logger,
		state:  models.NewUiState(),
		subs:   make(map[*subscriber]struct{}),
		done:   make(chan struct{}),
	}
}

func (c *stateContainer) Current() models.UiState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *stateContainer) Dispatch(ev models.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		c.logger.Debug(c.ctx, "event ignored, container closed", "event", fmt.Sprintf("%T", ev))
		return
	}

	switch e := ev.(type) {
	case models.FullNameChanged:
		next := c.state
		next.FullName = e.Text
		c.setLocked(next)
	case models.EmailChanged:
		next := c.state
		next.Email = e.Text
		c.setLocked(next)
	case models.PasswordChanged:
		next := c.state
		next.Password = e.Text
		c.setLocked(next)
	case models.RegisterClicked:
		c.registerLocked()
	case models.LoginClicked:
		c.loginLocked()
	case models.GetProfileClicked:
		c.getProfileLocked()
	default:
		c.logger.Warn(c.ctx, "unknown event", "event", fmt.Sprintf("%T", ev))
	}
}

func (c *stateContainer) registerLocked() {
	snap := c.state
	c.setLocked(snap.WithPhase(models.Loading))

	c.launch("register", func(ctx context.Context) (transition, error) {
		id, err := c.client.Register(ctx, snap.FullName, snap.Email, snap.Password)
		if err != nil {
			return nil, err
		}
		c.logger.Debug(ctx, "registered", "user_id", id)
		return func(s models.UiState) models.UiState {
			return s.WithPhase(models.Registered)
		}, nil
	})
}

func (c *stateContainer) loginLocked() {
	snap := c.state
	c.setLocked(snap.WithPhase(models.Loading))

	c.launch("login", func(ctx context.Context) (transition, error) {
		id, err := c.client.Login(ctx, snap.Email, snap.Password)
		if err != nil {
			return nil, err
		}
		return func(s models.UiState) models.UiState {
			return s.WithUserID(id).WithPhase(models.SignedIn)
		}, nil
	})
}

func (c *stateContainer) getProfileLocked() {
	snap := c.state

	// An Error phase is refused even when a user id is still stored.
	if k := snap.AuthState.Kind; k != models.PhaseSignedIn && k != models.PhaseProfileRetrieved {
		c.rejectLocked(ErrSignInRequired)
		return
	}
	if !snap.HasUserID() {
		c.rejectLocked(ErrUserIDMissing)
		return
	}

	userID := *snap.UserID
	c.setLocked(snap.WithPhase(models.Loading))

	c.launch("profile", func(ctx context.Context) (transition, error) {
		p, err := c.client.FetchProfile(ctx, userID)
		if err != nil {
			return nil, err
		}
		info := p.Format()
		return func(s models.UiState) models.UiState {
			s.ProfileInfo = info
			return s.WithPhase(models.ProfileRetrieved)
		}, nil
	})
}

func (c *stateContainer) rejectLocked(err error) {
	c.logger.Info(c.ctx, "profile request rejected", "reason", err)
	c.setLocked(c.state.WithPhase(models.Error(preconditionMessage(err))))
}

// launch runs call on its own goroutine and posts the outcome back through
// complete. A panicking client is reported as a failure.
func (c *stateContainer) launch(op string, call func(ctx context.Context) (transition, error)) {
	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()

		var (
			next transition
			err  error
		)
		func() {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%s: client panic: %v", op, r)
				}
			}()
			next, err = call(c.ctx)
		}()

		c.complete(op, next, err)
	}()
}

func (c *stateContainer) complete(op string, next transition, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.detachedLocked() {
		c.logger.Debug(c.ctx, "result dropped, no observers", "op", op, "error", err)
		return
	}

	if err != nil {
		c.logger.Warn(c.ctx, "remote call failed", "op", op, "error", err)
		c.setLocked(c.state.WithPhase(models.Error(MsgGeneric)))
		return
	}

	c.setLocked(next(c.state))
}

// detachedLocked reports whether results should no longer be applied: the
// container was closed, or it had observers and the last one went away.
func (c *stateContainer) detachedLocked() bool {
	return c.closed || (c.observed && len(c.subs) == 0)
}

func (c *stateContainer) setLocked(next models.UiState) {
	c.state = next
	for s := range c.subs {
		s.push(next)
	}
}

func (c *stateContainer) Observe(ctx context.Context) <-chan models.UiState {
	out := make(chan models.UiState)
	sub := newSubscriber()

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		close(out)
		return out
	}
	sub.push(c.state)
	c.subs[sub] = struct{}{}
	c.observed = true
	c.mu.Unlock()

	go func() {
		defer func() {
			c.unsubscribe(sub)
			close(out)
		}()
		// closing becomes nil once the container is closed; from then on
		// the queue is finite and is flushed before the stream ends.
		closing := c.done
		for {
			st, ok := sub.pop()
			if !ok {
				if closing == nil {
					return
				}
				select {
				case <-sub.signal:
				case <-closing:
					closing = nil
				case <-ctx.Done():
					return
				}
				continue
			}
			select {
			case out <- st:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

func (c *stateContainer) unsubscribe(s *subscriber) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.subs, s)
}

func (c *stateContainer) subscriberCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs)
}

func (c *stateContainer) Wait() {
	c.inflight.Wait()
}

func (c *stateContainer) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	close(c.done)
}
