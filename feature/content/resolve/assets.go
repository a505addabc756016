package resolve

import (
	"content-sync/core/utils"

	"github.com/tidwall/gjson"
)

// AssetIndex looks up included asset records by id.
type AssetIndex struct {
	byID map[string]gjson.Result
}

// NewAssetIndex indexes the assets included in one fetch response.
// Records without an id are skipped.
func NewAssetIndex(assets []gjson.Result) *AssetIndex {
	idx := &AssetIndex{byID: make(map[string]gjson.Result, len(assets))}
	for _, asset := range assets {
		id := asset.Get("sys.id").String()
		if id == "" {
			continue
		}
		idx.byID[id] = asset
	}
	return idx
}

// Len returns the number of indexed assets.
func (idx *AssetIndex) Len() int {
	return len(idx.byID)
}

// URL resolves a link of the form {"sys":{"id":...}} to an https URL.
// A reference that already embeds the asset fields is used as is. Missing,
// unresolved or malformed references yield "".
func (idx *AssetIndex) URL(ref gjson.Result) string {
	ref = Localize(ref)
	if !ref.IsObject() {
		return ""
	}

	asset, ok := idx.byID[ref.Get("sys.id").String()]
	if !ok {
		asset = ref
	}
	return AssetURL(asset)
}

// URLs resolves a list of links, dropping the ones that do not resolve.
func (idx *AssetIndex) URLs(refs gjson.Result) []string {
	urls := []string{}
	refs = Localize(refs)
	if !refs.IsArray() {
		return urls
	}
	for _, ref := range refs.Array() {
		if url := idx.URL(ref); url != "" {
			urls = append(urls, url)
		}
	}
	return urls
}

// AssetURL extracts the file URL of an asset record.
func AssetURL(asset gjson.Result) string {
	file := Field(Localize(asset.Get("fields")), "file")
	if !file.IsObject() {
		return ""
	}
	return utils.ToHTTPS(utils.ToString(Field(file, "url")))
}
