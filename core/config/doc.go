// Package config provides configuration management for content-sync.
//
// It uses Viper for environment variables and godotenv for an optional .env file.
// Defaults come from the 'default' struct tags of each section and every key maps to
// a SECTION_FIELD variable (contentful.space_id -> CONTENTFUL_SPACE_ID).
//
// A few keys also accept historical variable names, highest precedence first:
//   - contentful.delivery_token: CONTENTFUL_DELIVERY_TOKEN, CONTENTFUL_TOKEN, CONTENTFUL_ACCESS_TOKEN
//   - server.revalidate_secret: SERVER_REVALIDATE_SECRET, REVALIDATE_SECRET
//   - server.deploy_hook: SERVER_DEPLOY_HOOK, VERCEL_DEPLOY_HOOK
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Snapshot.Dir)
package config
