package audius_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/musicvalue/vault-backend/internal/mocks"
	"github.com/musicvalue/vault-backend/internal/providers/audius"
)

const (
	testAPIURL = "https://api.audius.co/v1"
	testAPIKey = "test-api-key"
)

// jsonUnmarshalInto fills the client's response envelope the way the real
// HTTP adapter would.
func jsonUnmarshalInto(result interface{}, payload string) error {
	return json.Unmarshal([]byte(payload), result)
}

func expectedHeaders() map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + testAPIKey,
		"Accept":        "application/json",
	}
}

func TestAudiusClient_GetTrack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	client := audius.NewClient(mockHTTPClient, testAPIURL, testAPIKey)

	ctx := context.Background()
	expectedURL := testAPIURL + "/tracks/D7KyD"

	mockHTTPClient.EXPECT().
		Get(ctx, expectedURL, expectedHeaders(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ map[string]string, result interface{}) error {
			return jsonUnmarshalInto(result, `{
				"data": {
					"id": "D7KyD",
					"title": "Midnight Run",
					"genre": "Electronic",
					"play_count": 120345,
					"user": {"id": "eP9G7", "name": "Night Artist", "handle": "nightartist"}
				}
			}`)
		})

	track, err := client.GetTrack(ctx, "D7KyD")

	require.NoError(t, err)
	assert.Equal(t, "D7KyD", track.ID)
	assert.Equal(t, "Midnight Run", track.Title)
	assert.Equal(t, "Electronic", track.Genre)
	assert.Equal(t, 120345, track.PlayCount)
	assert.Equal(t, "Night Artist", track.User.Name)
}

func TestAudiusClient_GetTrack_UpstreamError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	client := audius.NewClient(mockHTTPClient, testAPIURL, testAPIKey)

	ctx := context.Background()
	mockHTTPClient.EXPECT().
		Get(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	track, err := client.GetTrack(ctx, "D7KyD")

	assert.Error(t, err)
	assert.Nil(t, track)
	assert.Contains(t, err.Error(), "D7KyD")
}

func TestAudiusClient_GetTrendingTracks_BuildsQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	client := audius.NewClient(mockHTTPClient, testAPIURL, testAPIKey)

	ctx := context.Background()
	expectedURL := testAPIURL + "/tracks/trending?genre=Electronic&limit=5&time=week"

	mockHTTPClient.EXPECT().
		Get(ctx, expectedURL, expectedHeaders(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ map[string]string, result interface{}) error {
			return jsonUnmarshalInto(result, `{"data": [{"id": "a"}, {"id": "b"}]}`)
		})

	tracks, err := client.GetTrendingTracks(ctx, 5, "Electronic", "week")

	require.NoError(t, err)
	assert.Len(t, tracks, 2)
}

func TestAudiusClient_GetTrendingTracks_SkipsEmptyParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	client := audius.NewClient(mockHTTPClient, testAPIURL, testAPIKey)

	ctx := context.Background()
	// No genre, no time, no limit: the URL carries no query string at all
	expectedURL := testAPIURL + "/tracks/trending"

	mockHTTPClient.EXPECT().
		Get(ctx, expectedURL, expectedHeaders(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ map[string]string, result interface{}) error {
			return jsonUnmarshalInto(result, `{"data": []}`)
		})

	tracks, err := client.GetTrendingTracks(ctx, 0, "", "")

	require.NoError(t, err)
	assert.Empty(t, tracks)
}

func TestAudiusClient_SearchTracks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	client := audius.NewClient(mockHTTPClient, testAPIURL, testAPIKey)

	ctx := context.Background()
	expectedURL := testAPIURL + "/tracks/search?limit=10&query=midnight+run"

	mockHTTPClient.EXPECT().
		Get(ctx, expectedURL, expectedHeaders(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ map[string]string, result interface{}) error {
			return jsonUnmarshalInto(result, `{"data": [{"id": "D7KyD", "title": "Midnight Run"}]}`)
		})

	tracks, err := client.SearchTracks(ctx, "midnight run", 10)

	require.NoError(t, err)
	require.Len(t, tracks, 1)
	assert.Equal(t, "Midnight Run", tracks[0].Title)
}

func TestAudiusClient_VerifyToken_TopLevelPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	client := audius.NewClient(mockHTTPClient, testAPIURL, testAPIKey)

	ctx := context.Background()
	expectedURL := testAPIURL + "/users/verify_token?token=oauth-token"

	mockHTTPClient.EXPECT().
		Get(ctx, expectedURL, expectedHeaders(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ map[string]string, result interface{}) error {
			return jsonUnmarshalInto(result, `{
				"userId": "eP9G7",
				"handle": "nightartist",
				"name": "Night Artist",
				"profile_picture": {"150x150": "https://cdn.audius.co/pic-150.jpg"}
			}`)
		})

	user, err := client.VerifyToken(ctx, "oauth-token")

	require.NoError(t, err)
	assert.Equal(t, "eP9G7", user.UserID)
	assert.Equal(t, "nightartist", user.Handle)
	assert.Equal(t, "https://cdn.audius.co/pic-150.jpg", user.ProfilePicture)
}

func TestAudiusClient_VerifyToken_DataNestedPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	client := audius.NewClient(mockHTTPClient, testAPIURL, testAPIKey)

	ctx := context.Background()

	mockHTTPClient.EXPECT().
		Get(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ map[string]string, result interface{}) error {
			return jsonUnmarshalInto(result, `{
				"data": {"userId": "eP9G7", "handle": "nightartist", "name": "Night Artist"}
			}`)
		})

	user, err := client.VerifyToken(ctx, "oauth-token")

	require.NoError(t, err)
	assert.Equal(t, "eP9G7", user.UserID)
	assert.Empty(t, user.ProfilePicture)
}

func TestAudiusClient_TrackStreamURL(t *testing.T) {
	client := audius.NewClient(nil, testAPIURL, testAPIKey)

	url := client.TrackStreamURL("D7KyD")

	assert.Equal(t, testAPIURL+"/tracks/D7KyD/stream?api_key="+testAPIKey, url)
}

func TestAudiusClient_TrackStreamURL_NoAPIKey(t *testing.T) {
	client := audius.NewClient(nil, testAPIURL, "")

	url := client.TrackStreamURL("D7KyD")

	assert.Equal(t, testAPIURL+"/tracks/D7KyD/stream", url)
}
