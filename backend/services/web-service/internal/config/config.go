package config

import (
	"encoding/base64"
	"errors"
	"time"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-utils"
)

// Config holds the web frontend's configuration.
type Config struct {
	OrganizationName string
	AppName          string
	Env              string
	AppPort          string
	APIBaseURL       string
	APITimeout       time.Duration
	SessionKey       []byte
	SessionTTL       time.Duration
	FeaturedLimit    int
	RedirectDelay    time.Duration

	// Static flags fetched once from LaunchDarkly (or the FLAG_* env fallbacks)
	LDFlag_SecureCookies bool
}

const (
	OrganizationName     = utils.OrganizationName
	DefaultAPITimeout    = 15 * time.Second
	DefaultSessionTTL    = 24 * time.Hour
	DefaultRedirectDelay = 2 * time.Second
	DefaultFeaturedLimit = 4
	LDConnectionTimeout  = 5 * time.Second
	sessionKeyLength     = 32
)

var errMissingSessionSecret = errors.New("SESSION_SECRET is required in prod")

// Global compile-time overrides, set with -ldflags.
var (
	AppName             = "web-service"
	LDServerContextKey  = "web-service"
	LDServerContextKind = "service"
)

// LoadConfig reads the environment, resolves feature flags and returns a *Config.
func LoadConfig() *Config {
	utils.Logger.Info("Loading config for app: ", AppName)

	env := utils.GetEnv("ENV", "dev")

	sessionKey, err := loadSessionKey(utils.GetEnv("SESSION_SECRET", ""), env)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to load session secret")
	}

	flags, err := utils.NewFlagSource(
		utils.GetEnv("LD_SDK_KEY", ""),
		LDServerContextKind,
		LDServerContextKey,
		LDConnectionTimeout,
	)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to initialize feature flags")
	}
	defer flags.Close()

	cfg := &Config{
		OrganizationName: OrganizationName,
		AppName:          AppName,
		Env:              env,
		AppPort:          utils.GetEnv("APP_PORT", "8080"),
		APIBaseURL:       utils.GetEnv("API_BASE_URL", "http://localhost:8081"),
		APITimeout:       utils.GetEnvDuration("API_TIMEOUT", DefaultAPITimeout),
		SessionKey:       sessionKey,
		SessionTTL:       utils.GetEnvDuration("SESSION_TTL", DefaultSessionTTL),
		FeaturedLimit:    DefaultFeaturedLimit,
		RedirectDelay:    utils.GetEnvDuration("RESET_REDIRECT_DELAY", DefaultRedirectDelay),
	}
	if cfg.LDFlag_SecureCookies, err = flags.BoolVariation("secure_cookies", env != "dev"); err != nil {
		utils.Logger.WithError(err).Fatal("Error retrieving feature flags")
	}
	utils.Logger.Debugf("secure_cookies flag: %t", cfg.LDFlag_SecureCookies)

	utils.Logger.Infof("Loaded config for %s (%s), API at %s", AppName, env, cfg.APIBaseURL)
	return cfg
}

// loadSessionKey accepts a base64 secret, or the raw string when it does not
// decode. Outside production a random key is generated when none is set.
func loadSessionKey(secret, env string) ([]byte, error) {
	if secret == "" {
		if env == "prod" {
			return nil, errMissingSessionSecret
		}
		utils.Logger.Warn("SESSION_SECRET not set; sessions will not survive a restart")
		return []byte(utils.RandomString(sessionKeyLength)), nil
	}
	if key, err := base64.StdEncoding.DecodeString(secret); err == nil && len(key) >= sessionKeyLength {
		return key, nil
	}
	return []byte(secret), nil
}
