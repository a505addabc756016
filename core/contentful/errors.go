package contentful

import (
	"fmt"
	"strings"
)

// ConfigError reports required credentials or identifiers that are absent.
type ConfigError struct {
	Missing []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("missing configuration: %s (token may also be set as CONTENTFUL_TOKEN or CONTENTFUL_ACCESS_TOKEN)",
		strings.Join(e.Missing, ", "))
}

// FetchError is returned when the upstream API answers with a non-success status.
type FetchError struct {
	ContentType string
	StatusCode  int
	Status      string
	Body        string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("contentful request failed (%s): %d %s %s", e.ContentType, e.StatusCode, e.Status, e.Body)
}
