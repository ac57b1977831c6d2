package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_api "github.com/sann404/sannmusic/internal/client/api/mocks"
	"github.com/sann404/sannmusic/internal/config"
	"github.com/sann404/sannmusic/internal/gateway"
	mock_gateway "github.com/sann404/sannmusic/internal/gateway/mocks"
	"github.com/sann404/sannmusic/internal/metadata"
	"github.com/sann404/sannmusic/internal/model"
	"github.com/sann404/sannmusic/internal/service/library"
	mock_library "github.com/sann404/sannmusic/internal/service/library/mocks"
)

// testServer bundles the control API with its mocked collaborators.
type testServer struct {
	base    string
	httpSrv *httptest.Server
	service *mock_library.MockService
	client  *mock_api.MockClient
	sender  *mock_gateway.MockSender
}

func newTestServer(t *testing.T, state gateway.State) *testServer {
	t.Helper()

	ctrl := gomock.NewController(t)
	service := mock_library.NewMockService(ctrl)
	client := mock_api.NewMockClient(ctrl)
	sender := mock_gateway.NewMockSender(ctrl)

	server := NewServer(
		&config.Config{ListenAddr: "127.0.0.1:0"},
		service,
		client,
		sender,
		func() gateway.State { return state },
	)

	httpSrv := httptest.NewServer(server.Router())
	t.Cleanup(httpSrv.Close)

	return &testServer{
		base:    httpSrv.URL,
		httpSrv: httpSrv,
		service: service,
		client:  client,
		sender:  sender,
	}
}

func (ts *testServer) do(t *testing.T, method, path string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader

	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)

		reader = bytes.NewReader(payload)
	}

	request, err := http.NewRequest(method, ts.base+path, reader)
	require.NoError(t, err)

	response, err := ts.httpSrv.Client().Do(request)
	require.NoError(t, err)

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	payload, err := io.ReadAll(response.Body)
	require.NoError(t, err)

	return response.StatusCode, payload
}

func serverTestTrack() *model.TrackDescriptor {
	return &model.TrackDescriptor{
		ID:       "a1",
		Title:    "Track Title",
		Artist:   "Track Artist",
		AudioURL: "https://music.example.com/songs/a1.mp3",
	}
}

func TestServer_Health(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, gateway.StateServing)

	status, payload := ts.do(t, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, status)

	var body map[string]string
	require.NoError(t, json.Unmarshal(payload, &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "serving", body["gateway"])
}

func TestServer_Search(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, gateway.StateServing)
	track := serverTestTrack()

	ts.client.EXPECT().
		Search(gomock.Any(), "test query").
		Return([]*model.TrackDescriptor{track}, nil)

	status, payload := ts.do(t, http.MethodGet, "/api/search?q=test+query", nil)
	require.Equal(t, http.StatusOK, status)

	var tracks []*model.TrackDescriptor
	require.NoError(t, json.Unmarshal(payload, &tracks))
	require.Len(t, tracks, 1)
	assert.Equal(t, track.ID, tracks[0].ID)
}

func TestServer_SearchFailureRendersEmptyList(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, gateway.StateServing)

	ts.client.EXPECT().
		Search(gomock.Any(), "test query").
		Return(nil, io.ErrUnexpectedEOF)

	status, payload := ts.do(t, http.MethodGet, "/api/search?q=test+query", nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, "[]", string(payload))
}

func TestServer_SearchWithoutQuery(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, gateway.StateServing)

	status, payload := ts.do(t, http.MethodGet, "/api/search", nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, "[]", string(payload))
}

func TestServer_ListDownloadsFailureRendersEmptyList(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, gateway.StateServing)

	ts.service.EXPECT().
		ListDownloads(gomock.Any()).
		Return(nil, metadata.ErrStoreNotReady)

	status, payload := ts.do(t, http.MethodGet, "/api/downloads", nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, "[]", string(payload))
}

func TestServer_Download(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, gateway.StateServing)
	track := serverTestTrack()

	ts.service.EXPECT().
		Download(gomock.Any(), track).
		Return(nil)

	status, _ := ts.do(t, http.MethodPost, "/api/downloads", track)
	assert.Equal(t, http.StatusCreated, status)
}

func TestServer_DownloadWithoutAudioURL(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, gateway.StateServing)
	track := &model.TrackDescriptor{ID: "a1", Title: "Track Title"}

	ts.service.EXPECT().
		Download(gomock.Any(), track).
		Return(library.ErrMissingAudioURL)

	status, payload := ts.do(t, http.MethodPost, "/api/downloads", track)
	require.Equal(t, http.StatusBadRequest, status)

	var body map[string]string
	require.NoError(t, json.Unmarshal(payload, &body))
	assert.NotEmpty(t, body["error"])
}

func TestServer_RemoveDownload(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, gateway.StateServing)

	ts.service.EXPECT().
		Remove(gomock.Any(), "a1", "https://music.example.com/songs/a1.mp3")

	status, _ := ts.do(t, http.MethodDelete,
		"/api/downloads/a1?url=https%3A%2F%2Fmusic.example.com%2Fsongs%2Fa1.mp3", nil)
	assert.Equal(t, http.StatusNoContent, status)
}

func TestServer_ToggleLike(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, gateway.StateServing)
	track := serverTestTrack()

	ts.service.EXPECT().
		ToggleLike(gomock.Any(), track).
		Return(true, nil)

	status, payload := ts.do(t, http.MethodPost, "/api/likes", track)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"liked":true}`, string(payload))
}

func TestServer_CreatePlaylist(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, gateway.StateServing)

	expected := &model.Playlist{
		ID:     "1756700000000",
		Name:   "Driving",
		Tracks: []*model.TrackDescriptor{},
	}

	ts.service.EXPECT().
		CreatePlaylist(gomock.Any(), "Driving", "").
		Return(expected, nil)

	status, payload := ts.do(t, http.MethodPost, "/api/playlists",
		createPlaylistRequest{Name: "Driving"})
	require.Equal(t, http.StatusCreated, status)

	var playlist model.Playlist
	require.NoError(t, json.Unmarshal(payload, &playlist))
	assert.Equal(t, expected.ID, playlist.ID)
	assert.Equal(t, expected.Name, playlist.Name)
}

func TestServer_CreatePlaylistWithoutName(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, gateway.StateServing)

	ts.service.EXPECT().
		CreatePlaylist(gomock.Any(), "", "").
		Return(nil, library.ErrPlaylistNameEmpty)

	status, _ := ts.do(t, http.MethodPost, "/api/playlists", createPlaylistRequest{})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestServer_GetPlaylistNotFound(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, gateway.StateServing)

	ts.service.EXPECT().
		GetPlaylist(gomock.Any(), "missing").
		Return(nil, metadata.ErrRecordNotFound)

	status, _ := ts.do(t, http.MethodGet, "/api/playlists/missing", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestServer_AddTrackToPlaylist(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, gateway.StateServing)
	track := serverTestTrack()

	ts.service.EXPECT().
		AddTrackToPlaylist(gomock.Any(), "1756700000000", track).
		Return(true, nil)

	status, payload := ts.do(t, http.MethodPost, "/api/playlists/1756700000000/tracks", track)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"duplicate":true}`, string(payload))
}

func TestServer_CacheAudio(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		ack            *gateway.Ack
		err            error
		expectedStatus int
	}{
		{
			name:           "acknowledged",
			ack:            &gateway.Ack{OK: true},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "rejected by gateway",
			ack:            &gateway.Ack{OK: false, Error: "unexpected HTTP status: 404"},
			expectedStatus: http.StatusBadGateway,
		},
		{
			name:           "gateway not serving",
			err:            gateway.ErrGatewayNotServing,
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name:           "command timeout",
			err:            gateway.ErrCommandTimeout,
			expectedStatus: http.StatusGatewayTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := newTestServer(t, gateway.StateServing)

			ts.sender.EXPECT().
				Send(gomock.Any(), gateway.Command{
					Type: gateway.CommandTypeCacheAudio,
					URL:  "https://music.example.com/songs/a1.mp3",
				}).
				Return(tt.ack, tt.err)

			status, _ := ts.do(t, http.MethodPost, "/control/cache-audio",
				cacheAudioRequest{URL: "https://music.example.com/songs/a1.mp3"})
			assert.Equal(t, tt.expectedStatus, status)
		})
	}
}

func TestServer_CacheAudioWithoutURL(t *testing.T) {
	t.Parallel()

	ts := newTestServer(t, gateway.StateServing)

	status, _ := ts.do(t, http.MethodPost, "/control/cache-audio", cacheAudioRequest{})
	assert.Equal(t, http.StatusBadRequest, status)
}
