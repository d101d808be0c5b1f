package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/musicvalue/vault-backend/internal/actions"
	"github.com/musicvalue/vault-backend/internal/api/middleware"
	"github.com/musicvalue/vault-backend/internal/auth"
	"github.com/musicvalue/vault-backend/internal/rpcproxy"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, sessions *auth.SessionIssuer, proxy *rpcproxy.Proxy) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	// JSON-RPC proxy keeps the node URL and its key server side
	router.POST("/rpc", gin.WrapH(proxy))

	// Solana Actions surface (protocol-mandated paths and CORS)
	actionsCORS := middleware.ActionsCORS(actions.ActionVersion, actions.BlockchainIDs)
	router.GET("/actions.json", actionsCORS, handler.GetActionRules)
	actionGroup := router.Group("/api/actions", actionsCORS)
	{
		actionGroup.GET("/back-track", handler.GetDepositAction)
		actionGroup.POST("/back-track", handler.PostDepositAction)
		actionGroup.OPTIONS("/back-track", func(*gin.Context) {})
	}

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Vault endpoints (public read access)
		v1.GET("/vaults", handler.ListVaults)
		v1.GET("/vaults/:trackId", handler.GetVault)
		v1.GET("/vaults/:trackId/summary", handler.GetVaultSummary)
		v1.GET("/vaults/:trackId/position/:wallet", handler.GetPosition)
		v1.GET("/vaults/:trackId/blink", handler.GetBlink)

		// Transaction building (the wallet signs; nothing here moves funds)
		v1.POST("/vaults", handler.CreateVault)
		v1.POST("/vaults/:trackId/deposit", handler.Deposit)
		v1.POST("/vaults/:trackId/withdraw", handler.Withdraw)

		// Yield distribution requires a linked artist session
		v1.POST("/vaults/:trackId/yield", middleware.Auth(sessions), handler.DistributeYield)

		// Signed transaction submission
		v1.POST("/transactions", handler.SubmitTransaction)

		// Track metadata passthrough
		v1.GET("/tracks/trending", handler.GetTrendingTracks)
		v1.GET("/tracks/search", handler.SearchTracks)
		v1.GET("/tracks/:trackId", handler.GetTrack)
		v1.GET("/tracks/:trackId/stream", handler.StreamTrack)
		v1.GET("/users/:userId/tracks", handler.GetUserTracks)

		// Identity linking
		v1.POST("/auth/verify", handler.VerifyIdentity)
		v1.DELETE("/auth/:userId", middleware.Auth(sessions), handler.Logout)
	}
}
