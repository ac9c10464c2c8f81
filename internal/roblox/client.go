// Package roblox wraps the group, user and thumbnail APIs the dashboard
// depends on. Lookups degrade gracefully: avatar failures fall back to a
// default URL and never fail the surrounding request.
package roblox

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/attendance-service/internal/config"
	"github.com/spec-kit/attendance-service/internal/persistence"
	apperrors "github.com/spec-kit/attendance-service/pkg/util"
)

const userAgent = "staff-attendance-service/1.0"

// GroupMember is one entry of the group roster.
type GroupMember struct {
	UserID   int64
	Username string
	Rank     int
	RankName string
}

// Client calls the Roblox web APIs.
type Client struct {
	httpClient    *http.Client
	groupsBaseURL string
	usersBaseURL  string
	thumbsBaseURL string
	groupID       int64
	cache         *persistence.Redis
	cacheTTL      time.Duration
	defaultAvatar string
	logger        *zap.Logger
}

// NewClient builds a client for the configured group.
func NewClient(cfg config.RobloxConfig, cache *persistence.Redis, logger *zap.Logger) *Client {
	return &Client{
		httpClient:    &http.Client{Timeout: 10 * time.Second},
		groupsBaseURL: "https://groups.roblox.com",
		usersBaseURL:  "https://users.roblox.com",
		thumbsBaseURL: "https://thumbnails.roblox.com",
		groupID:       cfg.GroupID,
		cache:         cache,
		cacheTTL:      time.Duration(cfg.AvatarCacheTTLMin) * time.Minute,
		defaultAvatar: cfg.DefaultAvatarURL,
		logger:        logger,
	}
}

type groupUsersResponse struct {
	Data []struct {
		User struct {
			UserID   int64  `json:"userId"`
			Username string `json:"username"`
		} `json:"user"`
		Role struct {
			Name string `json:"name"`
			Rank int    `json:"rank"`
		} `json:"role"`
	} `json:"data"`
}

// GroupMembers fetches the group roster page used for staff sync.
func (c *Client) GroupMembers(ctx context.Context) ([]GroupMember, error) {
	url := fmt.Sprintf("%s/v1/groups/%d/users?sortOrder=Asc&limit=100", c.groupsBaseURL, c.groupID)

	var resp groupUsersResponse
	if err := c.getJSON(ctx, url, &resp); err != nil {
		return nil, apperrors.NewUpstreamFailure("failed to fetch group members", err)
	}

	members := make([]GroupMember, 0, len(resp.Data))
	for _, item := range resp.Data {
		members = append(members, GroupMember{
			UserID:   item.User.UserID,
			Username: item.User.Username,
			Rank:     item.Role.Rank,
			RankName: item.Role.Name,
		})
	}
	return members, nil
}

// UserDetails is the subset of the users API response the dashboard needs.
type UserDetails struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// FetchUserDetails fetches display data for a single user.
func (c *Client) FetchUserDetails(ctx context.Context, userID string) (*UserDetails, error) {
	url := fmt.Sprintf("%s/v1/users/%s", c.usersBaseURL, userID)

	var resp UserDetails
	if err := c.getJSON(ctx, url, &resp); err != nil {
		return nil, apperrors.NewUpstreamFailure("failed to fetch user details", err)
	}
	return &resp, nil
}

type thumbnailResponse struct {
	Data []struct {
		ImageURL string `json:"imageUrl"`
	} `json:"data"`
}

// AvatarURL resolves a user's headshot thumbnail. Results are cached in
// redis; on any upstream or cache failure the default avatar is returned.
func (c *Client) AvatarURL(ctx context.Context, userID string) string {
	cacheKey := "avatar:" + userID
	if c.cache != nil && c.cache.Client != nil {
		if cached, err := c.cache.Client.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			return cached
		}
	}

	url := fmt.Sprintf("%s/v1/users/avatar-headshot?userIds=%s&size=150x150&format=Png&isCircular=true", c.thumbsBaseURL, userID)

	var resp thumbnailResponse
	if err := c.getJSON(ctx, url, &resp); err != nil {
		c.logger.Warn("avatar lookup failed, using default", zap.String("user_id", userID), zap.Error(err))
		return c.defaultAvatar
	}
	if len(resp.Data) == 0 || resp.Data[0].ImageURL == "" {
		return c.defaultAvatar
	}

	imageURL := resp.Data[0].ImageURL
	if c.cache != nil && c.cache.Client != nil {
		if err := c.cache.Client.Set(ctx, cacheKey, imageURL, c.cacheTTL).Err(); err != nil {
			c.logger.Debug("avatar cache write failed", zap.Error(err))
		}
	}
	return imageURL
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
