package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration. Built once at startup and passed
// into constructors; nothing reads viper after Load returns.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Gene Woo Fallback specifics
	Service ServiceConfig
	Auth    AuthConfig
	Rules   RulesConfig
	Forward ForwardConfig

	// Inbound protection
	Security SecurityConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type ServiceConfig struct {
	Name string
}

type AuthConfig struct {
	APIKey string
}

// RulesConfig holds the decision-table thresholds, in whole dollars.
type RulesConfig struct {
	DebtHigh       int    // auto-qualify at/above
	SecondaryLow   int    // self-help cutoff (exclusive)
	MidApptLow     int    // unfiled-exception band, inclusive low
	MidApptHigh    int    // unfiled-exception band, inclusive high
	CampaignBooked string // CRM campaign label stamped on booking decisions
}

// ForwardConfig configures the outbound decision webhook. Empty URL disables
// forwarding.
type ForwardConfig struct {
	URL            string
	Token          string
	TimeoutSeconds int
}

type SecurityConfig struct {
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Service identity
	cfg.Service.Name = viper.GetString("service.name")
	if name := viper.GetString("service_name"); name != "" {
		cfg.Service.Name = name
	}

	// Bearer auth
	cfg.Auth.APIKey = viper.GetString("auth.api_key")
	if key := viper.GetString("gene_api_key"); key != "" {
		cfg.Auth.APIKey = key
	}

	// Decision-table thresholds; flat env names kept for the legacy deploy.
	cfg.Rules.DebtHigh = viper.GetInt("rules.debt_high")
	if v := viper.GetInt("primary_debt_high"); v > 0 {
		cfg.Rules.DebtHigh = v
	}
	cfg.Rules.SecondaryLow = viper.GetInt("rules.secondary_low")
	if v := viper.GetInt("secondary_debt_low"); v > 0 {
		cfg.Rules.SecondaryLow = v
	}
	cfg.Rules.MidApptLow = viper.GetInt("rules.mid_appt_low")
	if v := viper.GetInt("mid_appt_low"); v > 0 {
		cfg.Rules.MidApptLow = v
	}
	cfg.Rules.MidApptHigh = viper.GetInt("rules.mid_appt_high")
	if v := viper.GetInt("mid_appt_high"); v > 0 {
		cfg.Rules.MidApptHigh = v
	}
	cfg.Rules.CampaignBooked = viper.GetString("rules.campaign_booked")
	if v := viper.GetString("campaign_booked"); v != "" {
		cfg.Rules.CampaignBooked = v
	}

	// Outbound decision webhook
	cfg.Forward.URL = viper.GetString("forward.url")
	if v := viper.GetString("forward_webhook_url"); v != "" {
		cfg.Forward.URL = v
	}
	cfg.Forward.Token = viper.GetString("forward.token")
	if v := viper.GetString("forward_webhook_token"); v != "" {
		cfg.Forward.Token = v
	}
	cfg.Forward.TimeoutSeconds = viper.GetInt("forward.timeout_seconds")

	// Inbound protection
	cfg.Security.RateLimitPerMin = viper.GetInt("security.rate_limit_per_min")

	if err := validateRules(cfg.Rules); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "release")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("service.name", "gene-woofallback")
	viper.SetDefault("auth.api_key", "dev-key")

	viper.SetDefault("rules.debt_high", 8000)
	viper.SetDefault("rules.secondary_low", 6000)
	viper.SetDefault("rules.mid_appt_low", 5000)
	viper.SetDefault("rules.mid_appt_high", 7000)
	viper.SetDefault("rules.campaign_booked", "gene-booked")

	viper.SetDefault("forward.timeout_seconds", 10)
	viper.SetDefault("security.rate_limit_per_min", 120)
}

// validateRules rejects threshold combinations the decision table cannot
// evaluate sensibly.
func validateRules(r RulesConfig) error {
	if r.DebtHigh <= 0 || r.SecondaryLow <= 0 || r.MidApptLow <= 0 || r.MidApptHigh <= 0 {
		return fmt.Errorf("rule thresholds must be positive: %+v", r)
	}
	if r.MidApptLow > r.MidApptHigh {
		return fmt.Errorf("mid_appt_low %d exceeds mid_appt_high %d", r.MidApptLow, r.MidApptHigh)
	}
	if r.SecondaryLow > r.DebtHigh {
		return fmt.Errorf("secondary_low %d exceeds debt_high %d", r.SecondaryLow, r.DebtHigh)
	}
	return nil
}
