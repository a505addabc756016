package resolve

import (
	"content-sync/core/utils"

	"github.com/tidwall/gjson"
)

// Locale preference order for localized maps.
const (
	PrimaryLocale  = "en-US"
	FallbackLocale = "en"
)

// Localize collapses a locale-keyed map to the value of the preferred locale.
// Scalars and arrays are returned unchanged, as are objects holding neither locale;
// callers coerce the result themselves.
func Localize(v gjson.Result) gjson.Result {
	if !utils.Truthy(v) || !v.IsObject() {
		return v
	}
	for _, locale := range []string{PrimaryLocale, FallbackLocale} {
		if value := utils.Child(v, locale); value.Exists() {
			return value
		}
	}
	return v
}

// Field reads key from obj and localizes it.
func Field(obj gjson.Result, key string) gjson.Result {
	return Localize(utils.Child(obj, key))
}
