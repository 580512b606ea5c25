package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"task-metadata-sync/internal/mapping"
	"task-metadata-sync/internal/model"
)

const (
	StoreDriverVault = "vault"
	StoreDriverMemos = "memos"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Documents
	Store StoreConfig
	Sync  SyncConfig
	Rules RulesConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port   int
	Mode   string
	APIKey string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type StoreConfig struct {
	Driver string
	Vault  VaultConfig
	Memos  MemosConfig
}

type VaultConfig struct {
	Root string
}

type MemosConfig struct {
	URL         string
	AccessToken string
	PageSize    int
}

type SyncConfig struct {
	Watch    bool
	DryRun   bool
	Debounce time.Duration
	Cooldown time.Duration
	Webhook  WebhookConfig
}

type WebhookConfig struct {
	Enabled         bool
	Secret          string
	AllowedIPs      []string
	RateLimitPerMin int
}

// RulesConfig is the mapping section as written in config.yaml.
type RulesConfig struct {
	DirectMappings     []model.DirectMapping    `mapstructure:"direct_mappings"`
	OperationMappings  []model.OperationMapping `mapstructure:"operation_mappings"`
	ExpandDateLiterals bool                     `mapstructure:"expand_date_literals"`
	Timezone           string                   `mapstructure:"timezone"`
}

// Mapping returns the rules as the resolver consumes them.
func (r RulesConfig) Mapping() mapping.Rules {
	return mapping.Rules{
		DirectMappings:     r.DirectMappings,
		OperationMappings:  r.OperationMappings,
		ExpandDateLiterals: r.ExpandDateLiterals,
	}.Clone()
}

// Load loads configuration using Viper. An empty path searches for
// config.yaml in ./config, . and /etc/taskmeta/.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/taskmeta/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.APIKey = expandEnvVar(v, v.GetString("http_server.api_key"))
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Store
	cfg.Store.Driver = v.GetString("store.driver")
	cfg.Store.Vault.Root = v.GetString("store.vault.root")
	cfg.Store.Memos.URL = strings.TrimRight(v.GetString("store.memos.url"), "/")
	cfg.Store.Memos.AccessToken = expandEnvVar(v, v.GetString("store.memos.access_token"))
	cfg.Store.Memos.PageSize = v.GetInt("store.memos.page_size")
	if memosToken := v.GetString("memos_access_token"); memosToken != "" {
		cfg.Store.Memos.AccessToken = memosToken
	}

	// Sync
	cfg.Sync.Watch = v.GetBool("sync.watch")
	cfg.Sync.DryRun = v.GetBool("sync.dry_run")
	cfg.Sync.Debounce = v.GetDuration("sync.debounce")
	cfg.Sync.Cooldown = v.GetDuration("sync.cooldown")
	cfg.Sync.Webhook.Enabled = v.GetBool("sync.webhook.enabled")
	cfg.Sync.Webhook.Secret = expandEnvVar(v, v.GetString("sync.webhook.secret"))
	if webhookSecret := v.GetString("webhook_secret"); webhookSecret != "" {
		cfg.Sync.Webhook.Secret = webhookSecret
	}
	cfg.Sync.Webhook.RateLimitPerMin = v.GetInt("sync.webhook.rate_limit_per_min")
	cfg.Sync.Webhook.AllowedIPs = splitList(v, "sync.webhook.allowed_ips")

	// Rules
	if err := v.UnmarshalKey("rules", &cfg.Rules); err != nil {
		return nil, fmt.Errorf("error decoding rules: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	switch cfg.Store.Driver {
	case StoreDriverVault:
		if cfg.Store.Vault.Root == "" {
			return errors.New("store.vault.root is required for the vault driver")
		}
	case StoreDriverMemos:
		if cfg.Store.Memos.URL == "" {
			return errors.New("store.memos.url is required for the memos driver")
		}
	default:
		return fmt.Errorf("unknown store.driver %q (want %s or %s)", cfg.Store.Driver, StoreDriverVault, StoreDriverMemos)
	}

	if _, err := time.LoadLocation(cfg.Rules.Timezone); err != nil {
		return fmt.Errorf("invalid rules.timezone %q: %w", cfg.Rules.Timezone, err)
	}

	if err := mapping.Validate(cfg.Rules.Mapping()); err != nil {
		return fmt.Errorf("invalid rules:\n%w", err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("store.driver", StoreDriverVault)
	v.SetDefault("store.vault.root", ".")
	v.SetDefault("store.memos.page_size", 50)

	v.SetDefault("sync.watch", true)
	v.SetDefault("sync.debounce", "2s")
	v.SetDefault("sync.cooldown", "5s")
	v.SetDefault("sync.webhook.enabled", false)
	v.SetDefault("sync.webhook.rate_limit_per_min", 60)

	v.SetDefault("rules.timezone", "Local")
}

// splitList reads a list that may come from YAML or a comma separated env var.
func splitList(v *viper.Viper, key string) []string {
	var out []string
	for _, item := range v.GetStringSlice(key) {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// expandEnvVar expands values written as ${VAR_NAME}.
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := os.Getenv(envVar); envValue != "" {
		return envValue
	}
	return v.GetString(strings.ToLower(envVar))
}
