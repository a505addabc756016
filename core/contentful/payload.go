package contentful

import (
	"errors"

	"github.com/tidwall/gjson"
)

// ErrInvalidPayload is returned when a response body is not a JSON object.
var ErrInvalidPayload = errors.New("payload is not a JSON object")

// Payload is the raw result of one entries request.
// Entries and assets are linked only by id; nothing is embedded.
type Payload struct {
	// Items are the entries in response order.
	Items []gjson.Result
	// Assets are the records of includes.Asset.
	Assets []gjson.Result
}

// ParsePayload decodes an entries response body.
// Missing items or includes are treated as empty collections.
func ParsePayload(body []byte) (*Payload, error) {
	if !gjson.ValidBytes(body) {
		return nil, ErrInvalidPayload
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return nil, ErrInvalidPayload
	}

	return &Payload{
		Items:  arrayOf(root.Get("items")),
		Assets: arrayOf(root.Get("includes.Asset")),
	}, nil
}

func arrayOf(v gjson.Result) []gjson.Result {
	if !v.IsArray() {
		return []gjson.Result{}
	}
	return v.Array()
}
