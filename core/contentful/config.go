package contentful

import "strings"

// ContentTypes maps each synced category to its upstream content type id.
type ContentTypes struct {
	// Products is the content type id of catalog items.
	Products string `mapstructure:"products" default:"NVpVj8LwkehFy7TfbDiCu"`
	// Tours is the content type id of experiences.
	Tours string `mapstructure:"tours" default:"70oPrCNwUtqI05YuxYLW9D"`
	// Donations is the content type id of contribution tiers.
	Donations string `mapstructure:"donations" default:"5YmWnOsbaqjCb367hRLpST"`
	// Posts is the content type id of articles.
	Posts string `mapstructure:"posts" default:"blog"`
}

// Config holds configuration for the upstream content delivery API.
type Config struct {
	// BaseURL is the API root, without a trailing slash.
	BaseURL string `mapstructure:"base_url" default:"https://cdn.contentful.com"`
	// SpaceID identifies the content space.
	SpaceID string `mapstructure:"space_id" default:""`
	// Environment is the space environment to read from.
	Environment string `mapstructure:"environment" default:"master"`
	// DeliveryToken is the bearer token for the delivery API.
	DeliveryToken string `mapstructure:"delivery_token" default:""`
	// Limit is the page size requested per content type.
	Limit int `mapstructure:"limit" default:"1000"`
	// TimeoutSeconds bounds each request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// ContentTypes holds the content type ids per category.
	ContentTypes ContentTypes `mapstructure:"content_types"`
}

// Validate checks that the credentials needed to reach the API are present.
func (c Config) Validate() error {
	var missing []string
	if strings.TrimSpace(c.SpaceID) == "" {
		missing = append(missing, "CONTENTFUL_SPACE_ID")
	}
	if strings.TrimSpace(c.DeliveryToken) == "" {
		missing = append(missing, "CONTENTFUL_DELIVERY_TOKEN")
	}
	if len(missing) > 0 {
		return &ConfigError{Missing: missing}
	}
	return nil
}
