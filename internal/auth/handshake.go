package auth

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"

	"go.uber.org/zap"

	"github.com/musicvalue/vault-backend/internal/adapter"
	"github.com/musicvalue/vault-backend/internal/domain"
	"github.com/musicvalue/vault-backend/internal/logger"
	"github.com/musicvalue/vault-backend/internal/providers/audius"
)

// Handshake timing. The popup is polled for closure while a message is
// awaited; once closure is observed, a short grace period still accepts a
// message that raced the close.
const (
	HandshakeTimeout = 2 * time.Minute
	ClosedPollEvery  = 300 * time.Millisecond
	CloseGracePeriod = time.Second
)

// State is the phase of one identity handshake.
type State int

const (
	StateIdle State = iota
	StatePopupOpened
	StateAwaitingMessage
	StateVerifying
	StateAuthenticated
	StateBlocked
	StateTimedOut
	StateClosedByUser
	StateProviderError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePopupOpened:
		return "popup_opened"
	case StateAwaitingMessage:
		return "awaiting_message"
	case StateVerifying:
		return "verifying"
	case StateAuthenticated:
		return "authenticated"
	case StateBlocked:
		return "blocked"
	case StateTimedOut:
		return "timed_out"
	case StateClosedByUser:
		return "closed_by_user"
	case StateProviderError:
		return "provider_error"
	default:
		return "unknown"
	}
}

// Terminal reports whether the handshake can make no further progress.
func (s State) Terminal() bool {
	switch s {
	case StateAuthenticated, StateBlocked, StateTimedOut, StateClosedByUser, StateProviderError:
		return true
	}
	return false
}

// Popup is an opened provider window.
type Popup interface {
	// Closed reports whether the user has dismissed the window
	Closed() bool
	Close()
}

// WindowOpener opens the provider's consent page. Open returns an error when
// the environment refuses to open the window (popup blocker).
//
//go:generate mockgen -source=handshake.go -destination=../mocks/handshake.go -package=mocks
type WindowOpener interface {
	Open(url string) (Popup, error)
}

// Message is a callback posted by the provider window at the end of consent.
type Message struct {
	Origin string
	Token  string
	State  string
	Err    string
}

// Result is the single outcome of a handshake run.
type Result struct {
	State    State
	Identity *domain.LinkedIdentity
	Err      error
}

// Handshake drives one popup-based identity link against the provider.
// A Handshake is single-use; Run may be called at most once.
type Handshake struct {
	opener        WindowOpener
	verifier      audius.Client
	clock         adapter.Clock
	trustedOrigin string
	authorizeURL  string
	appName       string

	mu    sync.Mutex
	state State
	nonce string
	done  bool
}

// NewHandshake prepares a handshake with a fresh state nonce.
func NewHandshake(opener WindowOpener, verifier audius.Client, clock adapter.Clock, trustedOrigin, appName string) *Handshake {
	return &Handshake{
		opener:        opener,
		verifier:      verifier,
		clock:         clock,
		trustedOrigin: trustedOrigin,
		authorizeURL:  trustedOrigin + "/oauth/auth",
		appName:       appName,
		state:         StateIdle,
		nonce:         uuid.NewString(),
	}
}

// State returns the current phase.
func (h *Handshake) State() State {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.state
}

// Nonce returns the state nonce the provider must echo back.
func (h *Handshake) Nonce() string {
	return h.nonce
}

// ConsentURL is the provider page the popup is opened on.
func (h *Handshake) ConsentURL() string {
	q := url.Values{}
	q.Set("scope", "read")
	q.Set("app_name", h.appName)
	q.Set("state", h.nonce)
	q.Set("response_mode", "deep_link")
	return h.authorizeURL + "?" + q.Encode()
}

// Run executes the handshake to its single terminal state. Messages arrive on
// the provided channel; anything with a mismatched origin or state nonce is
// ignored without affecting the flow.
func (h *Handshake) Run(ctx context.Context, messages <-chan Message) Result {
	h.mu.Lock()
	if h.done {
		h.mu.Unlock()
		return Result{State: h.state, Err: fmt.Errorf("handshake already ran")}
	}
	h.done = true
	h.mu.Unlock()

	popup, err := h.opener.Open(h.ConsentURL())
	if err != nil {
		return h.finish(StateBlocked, nil, fmt.Errorf("consent window blocked: %w", err))
	}
	h.setState(StatePopupOpened)
	defer popup.Close()

	h.setState(StateAwaitingMessage)

	deadline := h.clock.After(HandshakeTimeout)
	poll := h.clock.After(ClosedPollEvery)

	for {
		select {
		case <-ctx.Done():
			return h.finish(StateTimedOut, nil, ctx.Err())

		case <-deadline:
			return h.finish(StateTimedOut, nil, fmt.Errorf("no response from provider within %s", HandshakeTimeout))

		case <-poll:
			if popup.Closed() {
				// The close may race a message already in flight.
				if msg, ok := h.awaitGraceMessage(messages); ok {
					return h.complete(ctx, msg)
				}
				return h.finish(StateClosedByUser, nil, fmt.Errorf("consent window closed"))
			}
			poll = h.clock.After(ClosedPollEvery)

		case msg := <-messages:
			if !h.accepts(msg) {
				continue
			}
			return h.complete(ctx, msg)
		}
	}
}

// awaitGraceMessage waits out the grace period for a valid message that was
// posted just before the window closed.
func (h *Handshake) awaitGraceMessage(messages <-chan Message) (Message, bool) {
	grace := h.clock.After(CloseGracePeriod)
	for {
		select {
		case <-grace:
			return Message{}, false
		case msg := <-messages:
			if h.accepts(msg) {
				return msg, true
			}
		}
	}
}

// accepts checks origin and state nonce. Rejections are silent by design of
// the postMessage protocol; logging is the only trace.
func (h *Handshake) accepts(msg Message) bool {
	if msg.Origin != h.trustedOrigin {
		logger.Debug("ignoring message from untrusted origin", zap.String("origin", msg.Origin))
		return false
	}
	if msg.State != h.nonce {
		logger.Debug("ignoring message with mismatched state nonce")
		return false
	}
	return true
}

func (h *Handshake) complete(ctx context.Context, msg Message) Result {
	if msg.Err != "" {
		return h.finish(StateProviderError, nil, fmt.Errorf("provider error: %s", msg.Err))
	}

	h.setState(StateVerifying)
	user, err := h.verifier.VerifyToken(ctx, msg.Token)
	if err != nil {
		return h.finish(StateProviderError, nil, fmt.Errorf("token verification failed: %w", err))
	}

	identity := &domain.LinkedIdentity{
		UserID:         user.UserID,
		Handle:         user.Handle,
		Name:           user.Name,
		ProfilePicture: user.ProfilePicture,
		JWT:            msg.Token,
		LinkedAt:       h.clock.Now().UTC(),
	}
	return h.finish(StateAuthenticated, identity, nil)
}

func (h *Handshake) finish(state State, identity *domain.LinkedIdentity, err error) Result {
	h.setState(state)
	return Result{State: state, Identity: identity, Err: err}
}

func (h *Handshake) setState(state State) {
	h.mu.Lock()
	h.state = state
	h.mu.Unlock()
}
