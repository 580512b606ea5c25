package webhook

// SecurityConfig holds webhook security settings
type SecurityConfig struct {
	Secret          string   // Shared token; empty disables token checks
	AllowedIPs      []string // IP or CIDR whitelist (optional)
	RateLimitPerMin int      // Max requests per minute per source
}

const (
	// TokenHeader carries the shared token. The token query parameter is
	// accepted as well since Memos webhooks cannot set headers.
	TokenHeader = "X-Webhook-Token"
	TokenQuery  = "token"
)
