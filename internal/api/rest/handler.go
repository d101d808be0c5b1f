package rest

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/musicvalue/vault-backend/internal/actions"
	"github.com/musicvalue/vault-backend/internal/adapter"
	"github.com/musicvalue/vault-backend/internal/api/middleware"
	"github.com/musicvalue/vault-backend/internal/auth"
	"github.com/musicvalue/vault-backend/internal/domain"
	"github.com/musicvalue/vault-backend/internal/hydrator"
	"github.com/musicvalue/vault-backend/internal/logger"
	"github.com/musicvalue/vault-backend/internal/messaging"
	"github.com/musicvalue/vault-backend/internal/providers/audius"
	solanaclient "github.com/musicvalue/vault-backend/internal/providers/solana"
	"github.com/musicvalue/vault-backend/internal/store"
	"github.com/musicvalue/vault-backend/internal/vault"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// ListVaults returns all vaults with track metadata and derived values
	// GET /api/v1/vaults
	ListVaults(c *gin.Context)

	// GetVault returns one vault with track metadata and derived values
	// GET /api/v1/vaults/:trackId
	GetVault(c *gin.Context)

	// GetVaultSummary returns only the derived view-model values for a vault
	// GET /api/v1/vaults/:trackId/summary
	GetVaultSummary(c *gin.Context)

	// GetPosition returns a wallet's position in a vault with derived values
	// GET /api/v1/vaults/:trackId/position/:wallet
	GetPosition(c *gin.Context)

	// GetBlink returns the shareable blink URL for a vault
	// GET /api/v1/vaults/:trackId/blink
	GetBlink(c *gin.Context)

	// CreateVault builds an unsigned initialize_vault transaction
	// POST /api/v1/vaults
	CreateVault(c *gin.Context)

	// Deposit builds an unsigned deposit transaction
	// POST /api/v1/vaults/:trackId/deposit
	Deposit(c *gin.Context)

	// DistributeYield builds an unsigned distribute_yield transaction
	// (artist session required)
	// POST /api/v1/vaults/:trackId/yield
	DistributeYield(c *gin.Context)

	// Withdraw builds an unsigned withdraw transaction
	// POST /api/v1/vaults/:trackId/withdraw
	Withdraw(c *gin.Context)

	// SubmitTransaction forwards a signed transaction, invalidates caches and
	// publishes the corresponding vault event
	// POST /api/v1/transactions
	SubmitTransaction(c *gin.Context)

	// GetTrendingTracks proxies the provider's trending feed
	// GET /api/v1/tracks/trending?limit=<n>&genre=<g>&time=<week|month|allTime>
	GetTrendingTracks(c *gin.Context)

	// SearchTracks proxies track search
	// GET /api/v1/tracks/search?query=<q>&limit=<n>
	SearchTracks(c *gin.Context)

	// GetTrack returns one track's metadata
	// GET /api/v1/tracks/:trackId
	GetTrack(c *gin.Context)

	// StreamTrack redirects to the provider's stream URL
	// GET /api/v1/tracks/:trackId/stream
	StreamTrack(c *gin.Context)

	// GetUserTracks returns the tracks uploaded by a provider user
	// GET /api/v1/users/:userId/tracks
	GetUserTracks(c *gin.Context)

	// VerifyIdentity completes the OAuth handshake server side: verifies the
	// provider token, persists the identity and issues a session token
	// POST /api/v1/auth/verify
	VerifyIdentity(c *gin.Context)

	// Logout unlinks an identity (session required, own identity only)
	// DELETE /api/v1/auth/:userId
	Logout(c *gin.Context)

	// GetActionRules serves the actions.json discovery document
	// GET /actions.json
	GetActionRules(c *gin.Context)

	// GetDepositAction returns the action metadata for a track's vault
	// GET /api/actions/back-track?trackId=<id>
	GetDepositAction(c *gin.Context)

	// PostDepositAction builds the deposit transaction for an action request
	// POST /api/actions/back-track?trackId=<id>&amount=<usdc>
	PostDepositAction(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	program    solanaclient.Client
	tracks     audius.Client
	hydrator   *hydrator.Hydrator
	store      store.Store
	actions    *actions.Service
	publisher  messaging.Publisher
	sessions   *auth.SessionIssuer
	cache      adapter.Cache
	json       adapter.JSON
	clock      adapter.Clock
	summaryTTL time.Duration
}

// NewHandler creates a new REST API handler
func NewHandler(
	program solanaclient.Client,
	tracks audius.Client,
	hyd *hydrator.Hydrator,
	st store.Store,
	actionsSvc *actions.Service,
	publisher messaging.Publisher,
	sessions *auth.SessionIssuer,
	cache adapter.Cache,
	json adapter.JSON,
	clock adapter.Clock,
	summaryTTL time.Duration,
) Handler {
	return &handler{
		program:    program,
		tracks:     tracks,
		hydrator:   hyd,
		store:      st,
		actions:    actionsSvc,
		publisher:  publisher,
		sessions:   sessions,
		cache:      cache,
		json:       json,
		clock:      clock,
		summaryTTL: summaryTTL,
	}
}

func summaryKey(trackID string) string {
	return "vault:summary:" + trackID
}

// ListVaults serves from snapshots when available and hydrates live on a cold
// store, so a fresh deployment still lists vaults.
func (h *handler) ListVaults(c *gin.Context) {
	snapshots, err := h.store.ListVaultSnapshots(c.Request.Context())
	if err != nil {
		logger.WarnCtx(c.Request.Context(), "snapshot listing failed, hydrating live", zap.Error(err))
		snapshots = nil
	}

	if len(snapshots) > 0 {
		items := make([]gin.H, 0, len(snapshots))
		for i := range snapshots {
			s := &snapshots[i]
			items = append(items, gin.H{
				"vault":   s.Vault,
				"derived": vault.Summarize(s.Vault),
				"track": gin.H{
					"id":      s.Vault.AudiusTrackID,
					"title":   s.TrackTitle,
					"artist":  s.TrackArtist,
					"artwork": s.TrackArtwork,
				},
				"refreshed_at": s.RefreshedAt,
			})
		}
		c.JSON(http.StatusOK, gin.H{"vaults": items})
		return
	}

	hydrated, err := h.hydrator.HydrateAll(c.Request.Context())
	if err != nil {
		respondUpstreamError(c, err, "Failed to list vaults")
		return
	}
	c.JSON(http.StatusOK, gin.H{"vaults": hydrated})
}

func (h *handler) GetVault(c *gin.Context) {
	trackID := c.Param("trackId")
	if trackID == "" {
		respondBadRequest(c, "Track ID is required")
		return
	}

	v, err := h.program.FetchVault(c.Request.Context(), trackID)
	if errors.Is(err, domain.ErrVaultNotFound) {
		// A missing vault is a valid empty state, not a fetch failure
		respondNotFound(c, "No vault exists for this track")
		return
	}
	if err != nil {
		respondUpstreamError(c, err, "Failed to fetch vault", zap.String("track_id", trackID))
		return
	}

	response := gin.H{"vault": v, "derived": vault.Summarize(*v)}
	if track, err := h.tracks.GetTrack(c.Request.Context(), trackID); err == nil {
		response["track"] = track
	} else {
		logger.WarnCtx(c.Request.Context(), "track metadata unavailable",
			zap.String("track_id", trackID), zap.Error(err))
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) GetVaultSummary(c *gin.Context) {
	trackID := c.Param("trackId")
	if trackID == "" {
		respondBadRequest(c, "Track ID is required")
		return
	}

	ctx := c.Request.Context()
	if raw, err := h.cache.Get(ctx, summaryKey(trackID)); err == nil {
		var cached vault.Summary
		if err := h.json.Unmarshal(raw, &cached); err == nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	} else if !errors.Is(err, adapter.ErrCacheMiss) {
		logger.WarnCtx(ctx, "summary cache read failed", zap.Error(err))
	}

	v, err := h.program.FetchVault(ctx, trackID)
	if errors.Is(err, domain.ErrVaultNotFound) {
		respondNotFound(c, "No vault exists for this track")
		return
	}
	if err != nil {
		respondUpstreamError(c, err, "Failed to fetch vault", zap.String("track_id", trackID))
		return
	}

	summary := vault.Summarize(*v)
	if raw, err := h.json.Marshal(summary); err == nil {
		if err := h.cache.Set(ctx, summaryKey(trackID), raw, h.summaryTTL); err != nil {
			logger.WarnCtx(ctx, "summary cache write failed", zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, summary)
}

func (h *handler) GetPosition(c *gin.Context) {
	trackID := c.Param("trackId")
	wallet := c.Param("wallet")
	if trackID == "" || wallet == "" {
		respondBadRequest(c, "Track ID and wallet are required")
		return
	}

	ctx := c.Request.Context()
	v, err := h.program.FetchVault(ctx, trackID)
	if errors.Is(err, domain.ErrVaultNotFound) {
		respondNotFound(c, "No vault exists for this track")
		return
	}
	if err != nil {
		respondUpstreamError(c, err, "Failed to fetch vault", zap.String("track_id", trackID))
		return
	}

	p, err := h.program.FetchPosition(ctx, trackID, wallet)
	if errors.Is(err, domain.ErrPositionNotFound) {
		respondNotFound(c, "No position for this wallet")
		return
	}
	if err != nil {
		respondUpstreamError(c, err, "Failed to fetch position",
			zap.String("track_id", trackID), zap.String("wallet", wallet))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"position": p,
		"derived":  vault.SummarizePosition(*v, *p, h.clock.Now()),
	})
}

func (h *handler) GetBlink(c *gin.Context) {
	trackID := c.Param("trackId")
	if trackID == "" {
		respondBadRequest(c, "Track ID is required")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"action_url": h.actions.ActionURL(trackID),
		"blink_url":  h.actions.BlinkURL(trackID),
	})
}

// createVaultRequest carries the artist-declared vault terms. The program
// validates the values; only the track ID length is checked here.
type createVaultRequest struct {
	TrackID              string `json:"track_id" binding:"required"`
	Wallet               string `json:"wallet" binding:"required"`
	Cap                  uint64 `json:"cap"`
	RoyaltyPct           uint8  `json:"royalty_pct"`
	DistributionInterval uint8  `json:"distribution_interval"`
	VaultDurationMonths  uint16 `json:"vault_duration_months"`
	PledgeNote           string `json:"pledge_note"`
}

func (h *handler) CreateVault(c *gin.Context) {
	var req createVaultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	interval := domain.DistributionInterval(req.DistributionInterval)
	if !interval.Valid() {
		respondValidationError(c, "unknown distribution interval")
		return
	}

	tx, err := h.program.BuildInitializeVault(c.Request.Context(), req.TrackID, req.Wallet,
		solanaclient.InitializeVaultParams{
			Cap:                  req.Cap,
			RoyaltyPct:           req.RoyaltyPct,
			DistributionInterval: interval,
			VaultDurationMonths:  req.VaultDurationMonths,
			PledgeNote:           req.PledgeNote,
		})
	if errors.Is(err, domain.ErrTrackIDTooLong) {
		respondValidationError(c, err.Error())
		return
	}
	if err != nil {
		respondUpstreamError(c, err, "Failed to build transaction", zap.String("track_id", req.TrackID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": tx})
}

type amountRequest struct {
	Wallet string `json:"wallet" binding:"required"`
	Amount uint64 `json:"amount" binding:"required"`
}

func (h *handler) Deposit(c *gin.Context) {
	trackID := c.Param("trackId")
	var req amountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	v, err := h.program.FetchVault(ctx, trackID)
	if errors.Is(err, domain.ErrVaultNotFound) {
		respondNotFound(c, "No vault exists for this track")
		return
	}
	if err != nil {
		respondUpstreamError(c, err, "Failed to fetch vault", zap.String("track_id", trackID))
		return
	}
	if vault.IsFull(*v) {
		respondWithError(c, http.StatusConflict, errCodeVaultFull, "Vault is fully funded")
		return
	}

	tx, err := h.program.BuildDeposit(ctx, trackID, req.Wallet, req.Amount)
	if err != nil {
		respondUpstreamError(c, err, "Failed to build transaction", zap.String("track_id", trackID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": tx})
}

func (h *handler) DistributeYield(c *gin.Context) {
	trackID := c.Param("trackId")
	var req amountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	tx, err := h.program.BuildDistributeYield(c.Request.Context(), trackID, req.Wallet, req.Amount)
	if err != nil {
		respondUpstreamError(c, err, "Failed to build transaction", zap.String("track_id", trackID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": tx})
}

type withdrawRequest struct {
	Wallet string `json:"wallet" binding:"required"`
	Shares uint64 `json:"shares" binding:"required"`
}

func (h *handler) Withdraw(c *gin.Context) {
	trackID := c.Param("trackId")
	var req withdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	tx, err := h.program.BuildWithdraw(c.Request.Context(), trackID, req.Wallet, req.Shares)
	if err != nil {
		respondUpstreamError(c, err, "Failed to build transaction", zap.String("track_id", trackID))
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": tx})
}

// submitRequest carries a signed transaction plus the event context the
// frontend already knows, so the backend can invalidate and publish without
// parsing the transaction.
type submitRequest struct {
	Transaction string `json:"transaction" binding:"required"`
	Type        string `json:"type" binding:"required"`
	TrackID     string `json:"track_id" binding:"required"`
	Wallet      string `json:"wallet"`
}

var eventTypes = map[string]domain.VaultEventType{
	"initialize": domain.VaultInitialized,
	"deposit":    domain.VaultDeposited,
	"withdraw":   domain.VaultWithdrawn,
	"yield":      domain.VaultYieldDistributed,
}

func (h *handler) SubmitTransaction(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	eventType, ok := eventTypes[req.Type]
	if !ok {
		respondValidationError(c, "unknown transaction type")
		return
	}

	ctx := c.Request.Context()
	sig, err := h.program.SubmitSignedTransaction(ctx, req.Transaction)
	if err != nil {
		// Program rejections pass through verbatim so the wallet UI can show
		// the real reason (cap exceeded, insufficient shares, unauthorized)
		respondWithError(c, http.StatusUnprocessableEntity, errCodeBadRequest,
			"Transaction rejected", err.Error())
		return
	}

	// Stale summaries must not outlive a confirmed write
	if err := h.cache.Delete(ctx, summaryKey(req.TrackID)); err != nil {
		logger.WarnCtx(ctx, "summary invalidation failed",
			zap.String("track_id", req.TrackID), zap.Error(err))
	}

	event := &domain.VaultEvent{
		Type:      eventType,
		TrackID:   req.TrackID,
		Wallet:    req.Wallet,
		Signature: sig,
	}
	if err := h.publisher.PublishVaultEvent(ctx, event); err != nil {
		logger.ErrorCtx(ctx, err, zap.String("track_id", req.TrackID))
	}

	c.JSON(http.StatusOK, gin.H{"signature": sig})
}

func (h *handler) GetTrendingTracks(c *gin.Context) {
	limit := parseLimit(c.Query("limit"), 20)
	tracks, err := h.tracks.GetTrendingTracks(c.Request.Context(), limit, c.Query("genre"), c.DefaultQuery("time", "week"))
	if err != nil {
		respondUpstreamError(c, err, "Failed to fetch trending tracks")
		return
	}
	c.JSON(http.StatusOK, gin.H{"tracks": tracks})
}

func (h *handler) SearchTracks(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		respondBadRequest(c, "query is required")
		return
	}

	tracks, err := h.tracks.SearchTracks(c.Request.Context(), query, parseLimit(c.Query("limit"), 20))
	if err != nil {
		respondUpstreamError(c, err, "Failed to search tracks")
		return
	}
	c.JSON(http.StatusOK, gin.H{"tracks": tracks})
}

func (h *handler) GetTrack(c *gin.Context) {
	trackID := c.Param("trackId")
	if trackID == "" {
		respondBadRequest(c, "Track ID is required")
		return
	}

	track, err := h.tracks.GetTrack(c.Request.Context(), trackID)
	if err != nil {
		respondUpstreamError(c, err, "Failed to fetch track", zap.String("track_id", trackID))
		return
	}
	c.JSON(http.StatusOK, track)
}

func (h *handler) StreamTrack(c *gin.Context) {
	trackID := c.Param("trackId")
	if trackID == "" {
		respondBadRequest(c, "Track ID is required")
		return
	}
	c.Redirect(http.StatusFound, h.tracks.TrackStreamURL(trackID))
}

func (h *handler) GetUserTracks(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		respondBadRequest(c, "User ID is required")
		return
	}

	tracks, err := h.tracks.GetUserTracks(c.Request.Context(), userID)
	if err != nil {
		respondUpstreamError(c, err, "Failed to fetch user tracks", zap.String("user_id", userID))
		return
	}
	c.JSON(http.StatusOK, gin.H{"tracks": tracks})
}

type verifyRequest struct {
	Token string `json:"token" binding:"required"`
}

func (h *handler) VerifyIdentity(c *gin.Context) {
	var req verifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	ctx := c.Request.Context()
	user, err := h.tracks.VerifyToken(ctx, req.Token)
	if err != nil {
		respondWithError(c, http.StatusUnauthorized, errCodeBadRequest,
			"Token verification failed", err.Error())
		return
	}
	if user.UserID == "" {
		respondWithError(c, http.StatusUnauthorized, errCodeBadRequest,
			"Token verification failed", "provider returned no identity")
		return
	}

	identity := &domain.LinkedIdentity{
		UserID:         user.UserID,
		Handle:         user.Handle,
		Name:           user.Name,
		ProfilePicture: user.ProfilePicture,
		JWT:            req.Token,
		LinkedAt:       h.clock.Now().UTC(),
	}
	if err := h.store.SaveIdentity(ctx, identity); err != nil {
		respondInternalError(c, err, "Failed to persist identity")
		return
	}

	session, err := h.sessions.Issue(identity.UserID, identity.Handle)
	if err != nil {
		respondInternalError(c, err, "Failed to issue session")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"identity": identity,
		"session":  session,
	})
}

func (h *handler) Logout(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		respondBadRequest(c, "User ID is required")
		return
	}

	// A session can only unlink its own identity
	if subject := c.GetString(middleware.AuthUserIDKey); subject != userID {
		respondWithError(c, http.StatusForbidden, errCodeBadRequest, "Cannot unlink another identity")
		return
	}

	if err := h.store.DeleteIdentity(c.Request.Context(), userID); err != nil {
		respondInternalError(c, err, "Failed to unlink identity")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *handler) GetActionRules(c *gin.Context) {
	c.JSON(http.StatusOK, h.actions.Rules())
}

func (h *handler) GetDepositAction(c *gin.Context) {
	trackID := c.Query("trackId")
	if trackID == "" {
		respondBadRequest(c, "trackId is required")
		return
	}

	metadata, err := h.actions.DepositMetadata(c.Request.Context(), trackID)
	if errors.Is(err, domain.ErrVaultNotFound) {
		respondNotFound(c, "No vault exists for this track")
		return
	}
	if err != nil {
		respondUpstreamError(c, err, "Failed to build action metadata", zap.String("track_id", trackID))
		return
	}
	c.JSON(http.StatusOK, metadata)
}

func (h *handler) PostDepositAction(c *gin.Context) {
	trackID := c.Query("trackId")
	if trackID == "" {
		respondBadRequest(c, "trackId is required")
		return
	}

	var req actions.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.actions.BuildDeposit(c.Request.Context(), trackID, req.Account, c.Query("amount"))
	switch {
	case errors.Is(err, domain.ErrVaultNotFound):
		respondNotFound(c, "No vault exists for this track")
	case errors.Is(err, domain.ErrInvalidAmount):
		respondValidationError(c, err.Error())
	case errors.Is(err, domain.ErrVaultFull):
		respondWithError(c, http.StatusConflict, errCodeVaultFull, "Vault is fully funded")
	case err != nil:
		respondUpstreamError(c, err, "Failed to build action transaction", zap.String("track_id", trackID))
	default:
		c.JSON(http.StatusOK, response)
	}
}

func (h *handler) HealthCheck(c *gin.Context) {
	if err := h.cache.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "cache": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func parseLimit(raw string, fallback int) int {
	if raw == "" {
		return fallback
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit <= 0 || limit > 100 {
		return fallback
	}
	return limit
}
