package upstream

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"gramgate.io/profile-api-gateway/app/domain/profile"
	"gramgate.io/profile-api-gateway/config/environment_variables"
	"resty.dev/v3"
)

// resolveTimeout is the upstream call budget. It is enforced here,
// independently of the gateway's lock TTL, which must stay comfortably
// larger.
const resolveTimeout = 5 * time.Second

const defaultGraphAPIVersion = "v19.0"

var RestyClient *resty.Client

func Init() {
	RestyClient = resty.New().SetTimeout(resolveTimeout)
}

// InstagramClient resolves profiles through the Graph API business
// discovery edge. It implements profile.Resolver.
type InstagramClient struct {
	baseURL     string
	accountID   string
	accessToken string
}

// NewInstagramClient builds the upstream client from the environment. A
// missing credential is a startup error, not a per-request one.
func NewInstagramClient() (*InstagramClient, error) {
	env := &environment_variables.EnvironmentVariables
	if err := env.ValidateUpstreamCredentials(); err != nil {
		return nil, err
	}
	version := env.INSTAGRAM_GRAPH_API_VERSION
	if version == "" {
		version = defaultGraphAPIVersion
	}
	return &InstagramClient{
		baseURL:     fmt.Sprintf("https://graph.facebook.com/%s", version),
		accountID:   env.INSTAGRAM_BUSINESS_ACCOUNT_ID,
		accessToken: env.INSTAGRAM_ACCESS_TOKEN,
	}, nil
}

type businessDiscoveryResponse struct {
	BusinessDiscovery *struct {
		Username          string `json:"username"`
		Name              string `json:"name"`
		Biography         string `json:"biography"`
		Website           string `json:"website"`
		FollowersCount    int64  `json:"followers_count"`
		FollowsCount      int64  `json:"follows_count"`
		MediaCount        int64  `json:"media_count"`
		ProfilePictureURL string `json:"profile_picture_url"`
	} `json:"business_discovery"`
}

type graphErrorResponse struct {
	Error struct {
		Message      string `json:"message"`
		Code         int    `json:"code"`
		ErrorSubcode int    `json:"error_subcode"`
	} `json:"error"`
}

// cannotFindUserSubcode is what the Graph API reports when business
// discovery cannot locate the requested username.
const cannotFindUserSubcode = 2207013

// Resolve fetches the public profile for a username.
func (c *InstagramClient) Resolve(ctx context.Context, username string) (*profile.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, resolveTimeout)
	defer cancel()

	fields := fmt.Sprintf(
		"business_discovery.username(%s){username,name,biography,website,followers_count,follows_count,media_count,profile_picture_url}",
		username,
	)

	var result businessDiscoveryResponse
	var apiErr graphErrorResponse
	resp, err := RestyClient.R().
		SetContext(ctx).
		SetQueryParam("fields", fields).
		SetQueryParam("access_token", c.accessToken).
		SetResult(&result).
		SetError(&apiErr).
		Get(fmt.Sprintf("%s/%s", c.baseURL, c.accountID))
	if err != nil {
		if isTimeout(err) {
			return nil, profile.ErrUpstreamTimeout
		}
		return nil, fmt.Errorf("business discovery request: %w", err)
	}

	if resp.IsError() {
		if apiErr.Error.ErrorSubcode == cannotFindUserSubcode {
			return nil, profile.ErrNotFound
		}
		return nil, fmt.Errorf("business discovery error %d: %s", apiErr.Error.Code, apiErr.Error.Message)
	}

	bd := result.BusinessDiscovery
	if bd == nil {
		return nil, profile.ErrNotFound
	}

	return &profile.Profile{
		Username:          bd.Username,
		FullName:          bd.Name,
		Biography:         bd.Biography,
		Website:           bd.Website,
		FollowersCount:    bd.FollowersCount,
		FollowsCount:      bd.FollowsCount,
		MediaCount:        bd.MediaCount,
		ProfilePictureURL: bd.ProfilePictureURL,
	}, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
