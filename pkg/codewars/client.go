package codewars

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/imroc/req/v3"

	errs "katasync/pkg/errors"
	"katasync/pkg/logger"
	"katasync/pkg/models"
)

// Options configures a Client. Zero values select the defaults.
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	Logger    logger.Logger
}

// Client fetches public data from the Codewars API.
type Client struct {
	http    *req.Client
	baseURL string
	logger  logger.Logger
}

// NewClient creates a new Codewars API client
func NewClient(opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = BaseURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "katasync/1.0"
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = logger.GetLogger()
	}

	httpClient := req.C().
		SetUserAgent(opts.UserAgent).
		SetTimeout(opts.Timeout).
		SetCommonHeader("Accept", "application/json")

	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		logger:  opts.Logger.WithField("component", "codewars"),
	}
}

// FetchUser returns the public profile of username.
func (c *Client) FetchUser(ctx context.Context, username string) (*models.UserProfile, error) {
	if strings.TrimSpace(username) == "" {
		return nil, errs.New(errs.ErrorTypeConfig, "fetch user", "username is required")
	}

	url := GetUserURL(c.baseURL, username)

	c.logger.DebugWithFields("fetching user profile", map[string]interface{}{
		"username": username,
		"url":      url,
	})

	start := time.Now()
	resp, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		c.logger.ErrorWithFields("HTTP request failed", map[string]interface{}{
			"url":      url,
			"error":    err.Error(),
			"duration": time.Since(start),
		})
		return nil, &errs.Error{
			Type: errs.ErrorTypeNetwork,
			Op:   "fetch user",
			Path: username,
			Err:  err,
		}
	}
	logger.LogRequest(c.logger, http.MethodGet, url, resp.StatusCode, time.Since(start))

	if err := checkResponseStatus(resp, username); err != nil {
		return nil, err
	}

	var profile models.UserProfile
	if err := json.Unmarshal(resp.Bytes(), &profile); err != nil {
		bodyPreview := resp.String()
		if len(bodyPreview) > 200 {
			bodyPreview = bodyPreview[:200] + "..."
		}
		c.logger.ErrorWithFields("failed to parse JSON response", map[string]interface{}{
			"url":          url,
			"error":        err.Error(),
			"body_preview": bodyPreview,
		})
		return nil, &errs.Error{
			Type: errs.ErrorTypeParsing,
			Op:   "fetch user",
			Path: username,
			Code: resp.StatusCode,
			Err:  err,
		}
	}

	c.logger.DebugWithFields("successfully fetched user profile", map[string]interface{}{
		"username":  profile.Username,
		"languages": len(profile.Ranks.Languages),
	})

	return &profile, nil
}

// apiError is the body Codewars sends with failed requests
type apiError struct {
	Success bool   `json:"success"`
	Reason  string `json:"reason"`
}

func checkResponseStatus(resp *req.Response, username string) error {
	if resp.IsSuccessState() {
		return nil
	}

	e := &errs.Error{
		Type: errs.FromStatusCode(resp.StatusCode),
		Op:   "fetch user",
		Path: username,
		Code: resp.StatusCode,
	}
	if e.Type != errs.ErrorTypeNotFound {
		e.Type = errs.ErrorTypeServerError
	}

	var body apiError
	if json.Unmarshal(resp.Bytes(), &body) == nil && body.Reason != "" {
		e.Message = body.Reason
	} else {
		e.Message = fmt.Sprintf("unexpected status code: %d", resp.StatusCode)
	}
	return e
}
