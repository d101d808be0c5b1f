package audius

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/musicvalue/vault-backend/internal/adapter"
)

// User represents an artist profile from the Audius API
type User struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Handle         string         `json:"handle"`
	ProfilePicture map[string]any `json:"profile_picture"`
	FollowerCount  int            `json:"follower_count"`
}

// Track represents a track from the Audius API
type Track struct {
	ID            string            `json:"id"`
	Title         string            `json:"title"`
	Artwork       map[string]string `json:"artwork"`
	Description   string            `json:"description"`
	Genre         string            `json:"genre"`
	Mood          string            `json:"mood"`
	PlayCount     int               `json:"play_count"`
	FavoriteCount int               `json:"favorite_count"`
	RepostCount   int               `json:"repost_count"`
	Duration      int               `json:"duration"`
	User          User              `json:"user"`
}

// VerifiedUser is the identity returned by the token verification endpoint
type VerifiedUser struct {
	UserID         string `json:"userId"`
	Handle         string `json:"handle"`
	Name           string `json:"name"`
	ProfilePicture string `json:"profilePicture"`
}

// trackResponse is the Audius JSON envelope for a single track
type trackResponse struct {
	Data Track `json:"data"`
}

// tracksResponse is the Audius JSON envelope for a track list
type tracksResponse struct {
	Data []Track `json:"data"`
}

// verifyTokenResponse is the Audius JSON envelope for token verification.
// Older deployments return the fields at the top level, newer ones under
// data; both are accepted.
type verifyTokenResponse struct {
	Data *verifyTokenPayload `json:"data"`
	verifyTokenPayload
}

type verifyTokenPayload struct {
	UserID         string         `json:"userId"`
	Handle         string         `json:"handle"`
	Name           string         `json:"name"`
	ProfilePicture map[string]any `json:"profile_picture"`
}

// Client defines the interface for Audius API operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/audius_client.go -package=mocks -mock_names=Client=MockAudiusClient
type Client interface {
	// GetTrack fetches a single track by ID
	GetTrack(ctx context.Context, trackID string) (*Track, error)

	// GetTrendingTracks fetches trending tracks, optionally filtered by
	// genre and time range ("week", "month", "allTime")
	GetTrendingTracks(ctx context.Context, limit int, genre, timeRange string) ([]Track, error)

	// SearchTracks searches tracks by free-text query
	SearchTracks(ctx context.Context, query string, limit int) ([]Track, error)

	// GetUserTracks fetches the tracks uploaded by a user
	GetUserTracks(ctx context.Context, userID string) ([]Track, error)

	// VerifyToken exchanges an OAuth token for a verified identity
	VerifyToken(ctx context.Context, token string) (*VerifiedUser, error)

	// TrackStreamURL returns the direct stream URL for a track
	TrackStreamURL(trackID string) string
}

// AudiusClient implements the Audius API client
type AudiusClient struct {
	httpClient adapter.HTTPClient
	apiURL     string
	apiKey     string
}

// NewClient creates a new Audius client
func NewClient(httpClient adapter.HTTPClient, apiURL string, apiKey string) Client {
	return &AudiusClient{
		httpClient: httpClient,
		apiURL:     apiURL,
		apiKey:     apiKey,
	}
}

// headers returns the standard request headers. All requests carry the
// bearer credential.
func (c *AudiusClient) headers() map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + c.apiKey,
		"Accept":        "application/json",
	}
}

// buildURL joins the endpoint path with encoded query parameters, skipping
// empty values.
func (c *AudiusClient) buildURL(endpoint string, params map[string]string) string {
	u := c.apiURL + endpoint
	query := url.Values{}
	for key, value := range params {
		if value != "" {
			query.Set(key, value)
		}
	}
	if encoded := query.Encode(); encoded != "" {
		u += "?" + encoded
	}
	return u
}

func (c *AudiusClient) GetTrack(ctx context.Context, trackID string) (*Track, error) {
	var response trackResponse
	u := c.buildURL("/tracks/"+url.PathEscape(trackID), nil)
	if err := c.httpClient.Get(ctx, u, c.headers(), &response); err != nil {
		return nil, fmt.Errorf("failed to fetch track %s: %w", trackID, err)
	}
	return &response.Data, nil
}

func (c *AudiusClient) GetTrendingTracks(ctx context.Context, limit int, genre, timeRange string) ([]Track, error) {
	params := map[string]string{
		"genre": genre,
		"time":  timeRange,
	}
	if limit > 0 {
		params["limit"] = strconv.Itoa(limit)
	}

	var response tracksResponse
	u := c.buildURL("/tracks/trending", params)
	if err := c.httpClient.Get(ctx, u, c.headers(), &response); err != nil {
		return nil, fmt.Errorf("failed to fetch trending tracks: %w", err)
	}
	return response.Data, nil
}

func (c *AudiusClient) SearchTracks(ctx context.Context, query string, limit int) ([]Track, error) {
	params := map[string]string{
		"query": query,
	}
	if limit > 0 {
		params["limit"] = strconv.Itoa(limit)
	}

	var response tracksResponse
	u := c.buildURL("/tracks/search", params)
	if err := c.httpClient.Get(ctx, u, c.headers(), &response); err != nil {
		return nil, fmt.Errorf("failed to search tracks: %w", err)
	}
	return response.Data, nil
}

func (c *AudiusClient) GetUserTracks(ctx context.Context, userID string) ([]Track, error) {
	var response tracksResponse
	u := c.buildURL("/users/"+url.PathEscape(userID)+"/tracks", map[string]string{"limit": "100"})
	if err := c.httpClient.Get(ctx, u, c.headers(), &response); err != nil {
		return nil, fmt.Errorf("failed to fetch user tracks: %w", err)
	}
	return response.Data, nil
}

func (c *AudiusClient) VerifyToken(ctx context.Context, token string) (*VerifiedUser, error) {
	var response verifyTokenResponse
	u := c.buildURL("/users/verify_token", map[string]string{"token": token})
	if err := c.httpClient.Get(ctx, u, c.headers(), &response); err != nil {
		return nil, fmt.Errorf("token verification failed: %w", err)
	}

	payload := response.verifyTokenPayload
	if response.Data != nil {
		payload = *response.Data
	}

	return &VerifiedUser{
		UserID:         payload.UserID,
		Handle:         payload.Handle,
		Name:           payload.Name,
		ProfilePicture: profilePictureURL(payload.ProfilePicture),
	}, nil
}

func (c *AudiusClient) TrackStreamURL(trackID string) string {
	u := c.apiURL + "/tracks/" + url.PathEscape(trackID) + "/stream"
	if c.apiKey != "" {
		u += "?api_key=" + url.QueryEscape(c.apiKey)
	}
	return u
}

// profilePictureURL picks the 150x150 rendition when the provider returns a
// size map.
func profilePictureURL(pictures map[string]any) string {
	if pictures == nil {
		return ""
	}
	if u, ok := pictures["150x150"].(string); ok {
		return u
	}
	return ""
}
