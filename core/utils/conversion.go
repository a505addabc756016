package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// emptyObject is returned wherever a structured value is required but the input has none.
var emptyObject = gjson.Parse("{}")

// decimalLiteral matches the decimal forms accepted by a JavaScript numeric conversion.
var decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// ToString converts a raw JSON value to a string.
// Objects, arrays, null and missing values become the empty string.
func ToString(v gjson.Result) string {
	switch v.Type {
	case gjson.String:
		return v.Str
	case gjson.Number:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case gjson.True:
		return "true"
	case gjson.False:
		return "false"
	default:
		return ""
	}
}

// ToNumber converts a raw JSON value to a finite number, returning fallback when
// the value has no finite numeric reading.
// Strings follow the JavaScript Number() rules: surrounding whitespace is ignored,
// the empty string is zero, and 0x/0o/0b integer prefixes are honoured.
func ToNumber(v gjson.Result, fallback float64) float64 {
	switch v.Type {
	case gjson.Number:
		if math.IsInf(v.Num, 0) || math.IsNaN(v.Num) {
			return fallback
		}
		return v.Num
	case gjson.True:
		return 1
	case gjson.False:
		return 0
	case gjson.String:
		if n, ok := parseNumeric(v.Str); ok {
			return n
		}
		return fallback
	default:
		return fallback
	}
}

func parseNumeric(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}

	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			u, err := strconv.ParseUint(s[2:], base, 64)
			if err != nil {
				return 0, false
			}
			return float64(u), true
		}
	}

	if !decimalLiteral.MatchString(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ToHTTPS upgrades a protocol-relative URL ("//host/path") to https.
func ToHTTPS(url string) string {
	if strings.HasPrefix(url, "//") {
		return "https:" + url
	}
	return url
}

// Truthy reports whether a value would pass a JavaScript truthiness test.
func Truthy(v gjson.Result) bool {
	switch v.Type {
	case gjson.Null:
		return false
	case gjson.False:
		return false
	case gjson.Number:
		return v.Num != 0
	case gjson.String:
		return v.Str != ""
	default:
		return v.Exists()
	}
}

// FirstTruthy returns the first truthy value, or an empty result.
func FirstTruthy(values ...gjson.Result) gjson.Result {
	for _, v := range values {
		if Truthy(v) {
			return v
		}
	}
	return gjson.Result{}
}

// AsObject coerces a value into a JSON object.
// JSON text is parsed; falsy input, unparsable text and non-object values all
// become an empty object.
func AsObject(v gjson.Result) gjson.Result {
	if !Truthy(v) {
		return emptyObject
	}
	if v.Type == gjson.String {
		if !gjson.Valid(v.Str) {
			return emptyObject
		}
		v = gjson.Parse(v.Str)
	}
	if !v.IsObject() {
		return emptyObject
	}
	return v
}

// Child returns the member of obj stored under key.
// Keys are matched literally, so dots and wildcards in key names are safe.
// When key repeats, the last occurrence wins.
func Child(obj gjson.Result, key string) gjson.Result {
	if !obj.IsObject() {
		return gjson.Result{}
	}
	var found gjson.Result
	obj.ForEach(func(k, value gjson.Result) bool {
		if k.Str == key {
			found = value
		}
		return true
	})
	return found
}
