package tmdb

import (
	"context"
	"strings"
)

// ImagesConfiguration describes how to build image URLs.
type ImagesConfiguration struct {
	BaseURL       string   `json:"base_url"`
	SecureBaseURL string   `json:"secure_base_url"`
	BackdropSizes []string `json:"backdrop_sizes"`
	LogoSizes     []string `json:"logo_sizes"`
	PosterSizes   []string `json:"poster_sizes"`
	ProfileSizes  []string `json:"profile_sizes"`
	StillSizes    []string `json:"still_sizes"`
}

// ImageURL joins the secure base URL, a size such as "w500" or "original",
// and an image path from a result. It returns "" when path is empty.
func (c ImagesConfiguration) ImageURL(size, path string) string {
	if strings.TrimSpace(path) == "" {
		return ""
	}
	base := c.SecureBaseURL
	if base == "" {
		base = c.BaseURL
	}
	if size == "" {
		size = "original"
	}
	return strings.TrimRight(base, "/") + "/" + size + "/" + strings.TrimLeft(path, "/")
}

type Configuration struct {
	Images     ImagesConfiguration `json:"images"`
	ChangeKeys []string            `json:"change_keys"`
}

var routeConfiguration = get("configuration")

// ConfigurationService wraps GET /configuration.
type ConfigurationService struct {
	b *bundle
}

func (s *ConfigurationService) Get(ctx context.Context) (*Configuration, error) {
	return call[Configuration](ctx, s.b, routeConfiguration, nil, nil)
}
