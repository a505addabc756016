// Package variants normalizes the purchasable options of a catalog item.
//
// Over time the upstream content model has stored variants in several shapes:
//
//	{"variants": {"small": {...}, "large": {...}}, "defaultKey": "large"}
//	{"small": {...}, "large": {...}, "defaultVariant": "small"}
//	{"small": "{\"price\": 5}"}                       (per-variant JSON text)
//	"{\"variants\": {...}}"                           (whole value as JSON text)
//
// and the external price reference has been spelled four different ways. Normalize
// reduces all of them to one ordered VariantMap and a valid default key.
package variants
