package variants

import (
	"math"

	"content-sync/core/utils"
	"content-sync/feature/content/models"
	"content-sync/feature/content/resolve"

	"github.com/tidwall/gjson"
)

// DefaultVariantKey is the key of the variant synthesized when none are declared.
const DefaultVariantKey = "default"

// PriceRefFields lists, in order of preference, every field name that has been
// used upstream for the external price reference. Add new spellings here.
var PriceRefFields = []string{"stripePriceId", "priceId", "priceID", "stripe_price_id"}

// maxImageIndex bounds imageIndex so the float to int conversion stays defined.
const maxImageIndex = math.MaxInt32

// metaKeys are top-level keys of a direct encoding that never denote a variant.
var metaKeys = map[string]struct{}{
	"variants":       {},
	"defaultKey":     {},
	"defaultVariant": {},
}

// Result is the canonical variant set of a catalog item.
type Result struct {
	Variants   *models.VariantMap
	DefaultKey string
}

// Normalize unifies the historical encodings of a catalog item's variants.
//
// The source may be localized and may be JSON text. Variants are read from a nested
// "variants" object when present, otherwise from the top-level keys that hold a string
// or an object. When nothing is declared a single "default" variant is synthesized
// from the top-level price fields. explicitDefault, then the source's own defaultKey
// and defaultVariant, name the default; an unknown key falls back to the first variant.
// Normalize never fails.
func Normalize(raw gjson.Result, explicitDefault string) Result {
	source := utils.AsObject(resolve.Localize(raw))

	variants := models.NewVariantMap()
	for _, entry := range candidates(source) {
		variants.Set(entry.key, readVariant(entry.key, entry.value))
	}

	if variants.Len() == 0 {
		variants.Set(DefaultVariantKey, models.Variant{
			Label:         "Default",
			Description:   "",
			Price:         nonNegative(utils.ToNumber(resolve.Field(source, "price"), 0)),
			ImageIndex:    0,
			StripePriceID: PickPriceRef(source),
		})
	}

	return Result{
		Variants:   variants,
		DefaultKey: defaultKey(variants, explicitDefault, source),
	}
}

type candidate struct {
	key   string
	value gjson.Result
}

// candidates returns the raw variant entries of source in declaration order.
func candidates(source gjson.Result) []candidate {
	var out []candidate

	if nested := utils.Child(source, "variants"); nested.IsObject() {
		nested.ForEach(func(key, value gjson.Result) bool {
			out = append(out, candidate{key: key.Str, value: value})
			return true
		})
		return out
	}

	source.ForEach(func(key, value gjson.Result) bool {
		if _, meta := metaKeys[key.Str]; meta {
			return true
		}
		if value.Type == gjson.String || value.IsObject() {
			out = append(out, candidate{key: key.Str, value: value})
		}
		return true
	})
	return out
}

func readVariant(key string, raw gjson.Result) models.Variant {
	data := utils.AsObject(resolve.Localize(raw))

	label := utils.ToString(utils.FirstTruthy(resolve.Field(data, "label"), resolve.Field(data, "name")))
	if label == "" {
		label = key
	}

	return models.Variant{
		Label:         label,
		Description:   utils.ToString(resolve.Field(data, "description")),
		Price:         nonNegative(utils.ToNumber(resolve.Field(data, "price"), 0)),
		ImageIndex:    imageIndex(resolve.Field(data, "imageIndex")),
		StripePriceID: PickPriceRef(data),
	}
}

// PickPriceRef returns the first non-empty price reference found under PriceRefFields.
func PickPriceRef(data gjson.Result) string {
	for _, field := range PriceRefFields {
		if ref := utils.ToString(resolve.Field(data, field)); ref != "" {
			return ref
		}
	}
	return ""
}

func defaultKey(variants *models.VariantMap, explicitDefault string, source gjson.Result) string {
	declared := explicitDefault
	if declared == "" {
		declared = utils.ToString(utils.FirstTruthy(
			resolve.Field(source, "defaultKey"),
			resolve.Field(source, "defaultVariant"),
		))
	}

	if _, ok := variants.Get(declared); ok && declared != "" {
		return declared
	}
	return variants.Oldest().Key
}

// imageIndex truncates to an integer in [0, maxImageIndex].
func imageIndex(v gjson.Result) int {
	n := nonNegative(utils.ToNumber(v, 0))
	if n > maxImageIndex {
		return maxImageIndex
	}
	return int(n)
}

func nonNegative(n float64) float64 {
	if n < 0 {
		return 0
	}
	return n
}
