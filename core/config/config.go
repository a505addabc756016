package config

import (
	"reflect"
	"strings"

	"content-sync/core/contentful"
	"content-sync/core/database"
	"content-sync/core/logger"
	"content-sync/core/server"
	"content-sync/core/snapshot"
	"content-sync/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	// Server holds configuration for the HTTP trigger server.
	Server server.Config `mapstructure:"server"`
	// Contentful holds the upstream content API settings.
	Contentful contentful.Config `mapstructure:"contentful"`
	// Snapshot holds the snapshot output settings.
	Snapshot snapshot.Config `mapstructure:"snapshot"`
	// Storage holds configuration for the object storage used when publishing.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the sync history store.
	Database database.Config `mapstructure:"database"`
}

// envAliases lists the environment variables read for a key, highest precedence first.
// The first name is always the canonical SECTION_FIELD form.
var envAliases = map[string][]string{
	"contentful.space_id":       {"CONTENTFUL_SPACE_ID"},
	"contentful.delivery_token": {"CONTENTFUL_DELIVERY_TOKEN", "CONTENTFUL_TOKEN", "CONTENTFUL_ACCESS_TOKEN"},
	"server.revalidate_secret":  {"SERVER_REVALIDATE_SECRET", "REVALIDATE_SECRET"},
	"server.deploy_hook":        {"SERVER_DEPLOY_HOOK", "VERCEL_DEPLOY_HOOK"},
}

// LoadConfig loads configuration from environment variables and an optional .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Missing .env is normal in production.
	_ = godotenv.Overload(envPath)

	v := viper.New()

	bindValues(v, Config{}, "")

	// SERVER_PORT -> server.port
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, envs := range envAliases {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues walks the struct and registers every 'mapstructure' key in Viper with
// its 'default' tag value.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Registering empty defaults too makes the key visible to AutomaticEnv.
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
