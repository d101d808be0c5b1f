package auth_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musicvalue/vault-backend/internal/auth"
	"github.com/musicvalue/vault-backend/internal/mocks"
	"github.com/musicvalue/vault-backend/internal/providers/audius"
)

const trustedOrigin = "https://audius.co"

// fakePopup reports closure from an atomic flag so tests can flip it while
// the handshake polls.
type fakePopup struct {
	closed atomic.Bool
}

func (p *fakePopup) Closed() bool { return p.closed.Load() }
func (p *fakePopup) Close()       {}

type fakeOpener struct {
	popup *fakePopup
	err   error
	url   string
}

func (o *fakeOpener) Open(url string) (auth.Popup, error) {
	o.url = url
	if o.err != nil {
		return nil, o.err
	}
	return o.popup, nil
}

// neverFires returns a channel no test ever sends on.
func neverFires() <-chan time.Time {
	return make(chan time.Time)
}

// firesImmediately returns a channel with a tick already queued.
func firesImmediately() <-chan time.Time {
	ch := make(chan time.Time, 1)
	ch <- time.Now()
	return ch
}

func newTestClock(ctrl *gomock.Controller) *mocks.MockClock {
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(time.Unix(1700000000, 0)).AnyTimes()
	return clock
}

func TestHandshake_MismatchedStateIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	verifier := mocks.NewMockAudiusClient(ctrl)
	clock := newTestClock(ctrl)
	opener := &fakeOpener{popup: &fakePopup{}}

	clock.EXPECT().After(auth.HandshakeTimeout).Return(neverFires())
	clock.EXPECT().After(auth.ClosedPollEvery).Return(neverFires()).AnyTimes()

	// Only the correctly-stated token reaches the verifier
	verifier.EXPECT().
		VerifyToken(gomock.Any(), "good-token").
		Return(&audius.VerifiedUser{UserID: "eP9G7", Handle: "nightartist"}, nil).
		Times(1)

	h := auth.NewHandshake(opener, verifier, clock, trustedOrigin, "musicvalue")

	messages := make(chan auth.Message)
	results := make(chan auth.Result, 1)
	go func() { results <- h.Run(context.Background(), messages) }()

	// Forged or stale messages: wrong origin, then wrong state nonce
	messages <- auth.Message{Origin: "https://evil.example", Token: "stolen", State: h.Nonce()}
	messages <- auth.Message{Origin: trustedOrigin, Token: "stale", State: "not-the-nonce"}

	// The flow is still waiting; a valid message completes it
	messages <- auth.Message{Origin: trustedOrigin, Token: "good-token", State: h.Nonce()}

	result := <-results
	require.NoError(t, result.Err)
	assert.Equal(t, auth.StateAuthenticated, result.State)
	require.NotNil(t, result.Identity)
	assert.Equal(t, "eP9G7", result.Identity.UserID)
	assert.Equal(t, "good-token", result.Identity.JWT)
}

func TestHandshake_ClosedByUser_SingleCompletion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	verifier := mocks.NewMockAudiusClient(ctrl)
	clock := newTestClock(ctrl)
	popup := &fakePopup{}
	popup.closed.Store(true)
	opener := &fakeOpener{popup: popup}

	clock.EXPECT().After(auth.HandshakeTimeout).Return(neverFires())
	clock.EXPECT().After(auth.ClosedPollEvery).Return(firesImmediately())
	clock.EXPECT().After(auth.CloseGracePeriod).Return(firesImmediately())

	h := auth.NewHandshake(opener, verifier, clock, trustedOrigin, "musicvalue")

	result := h.Run(context.Background(), make(chan auth.Message))

	assert.Equal(t, auth.StateClosedByUser, result.State)
	assert.Error(t, result.Err)
	assert.Nil(t, result.Identity)

	// The handshake is single-use: a second run must not re-resolve
	again := h.Run(context.Background(), make(chan auth.Message))
	assert.Error(t, again.Err)
	assert.Equal(t, auth.StateClosedByUser, h.State())
}

func TestHandshake_GracePeriodAcceptsRacingMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	verifier := mocks.NewMockAudiusClient(ctrl)
	clock := newTestClock(ctrl)
	popup := &fakePopup{}
	popup.closed.Store(true)
	opener := &fakeOpener{popup: popup}

	clock.EXPECT().After(auth.HandshakeTimeout).Return(neverFires())
	clock.EXPECT().After(auth.ClosedPollEvery).Return(firesImmediately())
	// The grace window stays open; the racing message wins. The buffered
	// message may also be drained before the first poll fires, in which case
	// the grace window is never opened at all.
	clock.EXPECT().After(auth.CloseGracePeriod).Return(neverFires()).AnyTimes()

	verifier.EXPECT().
		VerifyToken(gomock.Any(), "raced-token").
		Return(&audius.VerifiedUser{UserID: "eP9G7"}, nil)

	h := auth.NewHandshake(opener, verifier, clock, trustedOrigin, "musicvalue")

	messages := make(chan auth.Message, 1)
	messages <- auth.Message{Origin: trustedOrigin, Token: "raced-token", State: h.Nonce()}

	result := h.Run(context.Background(), messages)

	require.NoError(t, result.Err)
	assert.Equal(t, auth.StateAuthenticated, result.State)
}

func TestHandshake_PopupBlocked(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	verifier := mocks.NewMockAudiusClient(ctrl)
	clock := newTestClock(ctrl)
	opener := &fakeOpener{err: assert.AnError}

	h := auth.NewHandshake(opener, verifier, clock, trustedOrigin, "musicvalue")

	result := h.Run(context.Background(), make(chan auth.Message))

	assert.Equal(t, auth.StateBlocked, result.State)
	assert.Error(t, result.Err)
}

func TestHandshake_Timeout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	verifier := mocks.NewMockAudiusClient(ctrl)
	clock := newTestClock(ctrl)
	opener := &fakeOpener{popup: &fakePopup{}}

	clock.EXPECT().After(auth.HandshakeTimeout).Return(firesImmediately())
	clock.EXPECT().After(auth.ClosedPollEvery).Return(neverFires()).AnyTimes()

	h := auth.NewHandshake(opener, verifier, clock, trustedOrigin, "musicvalue")

	result := h.Run(context.Background(), make(chan auth.Message))

	assert.Equal(t, auth.StateTimedOut, result.State)
	assert.Error(t, result.Err)
}

func TestHandshake_ProviderError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	verifier := mocks.NewMockAudiusClient(ctrl)
	clock := newTestClock(ctrl)
	opener := &fakeOpener{popup: &fakePopup{}}

	clock.EXPECT().After(auth.HandshakeTimeout).Return(neverFires())
	clock.EXPECT().After(auth.ClosedPollEvery).Return(neverFires()).AnyTimes()

	h := auth.NewHandshake(opener, verifier, clock, trustedOrigin, "musicvalue")

	messages := make(chan auth.Message, 1)
	messages <- auth.Message{Origin: trustedOrigin, State: h.Nonce(), Err: "access_denied"}

	result := h.Run(context.Background(), messages)

	assert.Equal(t, auth.StateProviderError, result.State)
	assert.ErrorContains(t, result.Err, "access_denied")
}

func TestHandshake_VerificationFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	verifier := mocks.NewMockAudiusClient(ctrl)
	clock := newTestClock(ctrl)
	opener := &fakeOpener{popup: &fakePopup{}}

	clock.EXPECT().After(auth.HandshakeTimeout).Return(neverFires())
	clock.EXPECT().After(auth.ClosedPollEvery).Return(neverFires()).AnyTimes()

	verifier.EXPECT().
		VerifyToken(gomock.Any(), "bad-token").
		Return(nil, assert.AnError)

	h := auth.NewHandshake(opener, verifier, clock, trustedOrigin, "musicvalue")

	messages := make(chan auth.Message, 1)
	messages <- auth.Message{Origin: trustedOrigin, Token: "bad-token", State: h.Nonce()}

	result := h.Run(context.Background(), messages)

	assert.Equal(t, auth.StateProviderError, result.State)
	assert.Error(t, result.Err)
}

func TestHandshake_ConsentURLCarriesNonce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	verifier := mocks.NewMockAudiusClient(ctrl)
	clock := newTestClock(ctrl)

	h := auth.NewHandshake(&fakeOpener{popup: &fakePopup{}}, verifier, clock, trustedOrigin, "musicvalue")

	url := h.ConsentURL()
	assert.Contains(t, url, trustedOrigin+"/oauth/auth?")
	assert.Contains(t, url, "state="+h.Nonce())
	assert.Contains(t, url, "app_name=musicvalue")
}
