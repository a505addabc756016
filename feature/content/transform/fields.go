package transform

import (
	"encoding/json"

	"content-sync/core/utils"
	"content-sync/feature/content/resolve"

	"github.com/tidwall/gjson"
)

// entry wraps one raw upstream entry for defensive field reads.
type entry struct {
	id     string
	fields gjson.Result
}

func newEntry(raw gjson.Result) entry {
	return entry{
		id:     utils.ToString(raw.Get("sys.id")),
		fields: resolve.Localize(raw.Get("fields")),
	}
}

// field returns the localized value stored under key.
func (e entry) field(key string) gjson.Result {
	return resolve.Field(e.fields, key)
}

// str returns the field as a string, or fallback when it is empty.
func (e entry) str(key, fallback string) string {
	if s := utils.ToString(e.field(key)); s != "" {
		return s
	}
	return fallback
}

// first returns the first truthy field among keys.
func (e entry) first(keys ...string) gjson.Result {
	values := make([]gjson.Result, 0, len(keys))
	for _, key := range keys {
		values = append(values, e.field(key))
	}
	return utils.FirstTruthy(values...)
}

// number returns the field as a finite number, defaulting to zero.
func (e entry) number(key string) float64 {
	return utils.ToNumber(e.field(key), 0)
}

// tags returns the non-empty string forms of the scalar items of an array field.
func (e entry) tags(key string) []string {
	tags := []string{}
	value := e.field(key)
	if !value.IsArray() {
		return tags
	}
	for _, item := range value.Array() {
		if tag := utils.ToString(resolve.Localize(item)); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// raw returns the field's JSON verbatim, or an empty JSON string when it is falsy.
func (e entry) raw(key string) json.RawMessage {
	value := e.field(key)
	if !utils.Truthy(value) {
		return json.RawMessage(`""`)
	}
	return json.RawMessage(value.Raw)
}
