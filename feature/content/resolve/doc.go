// Package resolve turns localized values and asset links into plain values.
//
// Localize picks the en-US value of a locale map, then en, and otherwise passes the
// value through untouched. AssetIndex resolves {"sys":{"id":...}} links against the
// assets included in the same response and upgrades protocol-relative URLs to https.
// Neither ever fails: unresolvable input becomes "" or passes through.
package resolve
