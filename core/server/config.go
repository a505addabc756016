package server

// Config holds configuration for the HTTP trigger server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey protects the operator endpoints. Empty disables the check.
	ApiKey string `mapstructure:"api_key" default:""`
	// RevalidateSecret must be passed as ?secret= to trigger a rebuild.
	RevalidateSecret string `mapstructure:"revalidate_secret" default:""`
	// WebhookSecret, when set, must match the X-Webhook-Secret header of webhook calls.
	WebhookSecret string `mapstructure:"webhook_secret" default:""`
	// DeployHook is POSTed after a webhook-triggered rebuild.
	DeployHook string `mapstructure:"deploy_hook" default:""`
}

// CanRevalidate reports whether the revalidate endpoint accepts the given secret.
// An unconfigured secret accepts nothing.
func (c Config) CanRevalidate(secret string) bool {
	return c.RevalidateSecret != "" && secret == c.RevalidateSecret
}

// AcceptsWebhook reports whether a webhook call carrying secret is authorized.
func (c Config) AcceptsWebhook(secret string) bool {
	return c.WebhookSecret == "" || secret == c.WebhookSecret
}
