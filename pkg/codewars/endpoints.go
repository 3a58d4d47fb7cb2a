package codewars

import (
	"net/url"
	"strings"
)

const (
	// BaseURL is the public Codewars site
	BaseURL = "https://www.codewars.com"

	// UserEndpoint returns a user's public profile
	UserEndpoint = "/api/v1/users/{username}"
)

// GetUserURL constructs the profile URL for username against baseURL.
func GetUserURL(baseURL, username string) string {
	if baseURL == "" {
		baseURL = BaseURL
	}
	return strings.TrimRight(baseURL, "/") +
		strings.Replace(UserEndpoint, "{username}", url.PathEscape(username), 1)
}

// GetProfilePageURL returns the human-facing profile page for username.
func GetProfilePageURL(username string) string {
	return BaseURL + "/users/" + url.PathEscape(username)
}
