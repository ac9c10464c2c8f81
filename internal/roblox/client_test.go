package roblox

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(groups, users, thumbs string) *Client {
	return &Client{
		httpClient:    &http.Client{Timeout: time.Second},
		groupsBaseURL: groups,
		usersBaseURL:  users,
		thumbsBaseURL: thumbs,
		groupID:       36094836,
		defaultAvatar: "https://example.com/default.png",
		logger:        zap.NewNop(),
	}
}

func TestGroupMembers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/groups/36094836/users", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
			{"user":{"userId":1001,"username":"alpha"},"role":{"name":"Moderator","rank":5}},
			{"user":{"userId":1002,"username":"beta"},"role":{"name":"Guest","rank":1}}
		]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.URL, server.URL)

	members, err := client.GroupMembers(context.Background())
	require.NoError(t, err)
	require.Len(t, members, 2)

	assert.Equal(t, int64(1001), members[0].UserID)
	assert.Equal(t, "alpha", members[0].Username)
	assert.Equal(t, 5, members[0].Rank)
	assert.Equal(t, "Moderator", members[0].RankName)
}

func TestGroupMembersUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.URL, server.URL)

	_, err := client.GroupMembers(context.Background())
	require.Error(t, err)
}

func TestAvatarURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1001", r.URL.Query().Get("userIds"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"imageUrl":"https://cdn.example.com/headshot.png"}]}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.URL, server.URL)

	url := client.AvatarURL(context.Background(), "1001")
	assert.Equal(t, "https://cdn.example.com/headshot.png", url)
}

func TestAvatarURLFallsBackToDefault(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "upstream failure",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "empty response",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"data":[]}`))
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			client := newTestClient(server.URL, server.URL, server.URL)
			assert.Equal(t, client.defaultAvatar, client.AvatarURL(context.Background(), "1001"))
		})
	}
}

func TestFetchUserDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/users/1001", r.URL.Path)
		_, _ = w.Write([]byte(`{"id":1001,"name":"alpha"}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL, server.URL, server.URL)

	details, err := client.FetchUserDetails(context.Background(), "1001")
	require.NoError(t, err)
	assert.Equal(t, int64(1001), details.ID)
	assert.Equal(t, "alpha", details.Name)
}
