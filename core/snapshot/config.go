package snapshot

// Config holds configuration for snapshot persistence.
type Config struct {
	// Dir is the local directory receiving the snapshot files.
	Dir string `mapstructure:"dir" default:"data"`
	// Publish also uploads the snapshot to the storage bucket.
	Publish bool `mapstructure:"publish" default:"false"`
	// Prefix is the object prefix used when publishing.
	Prefix string `mapstructure:"prefix" default:"data"`
}
