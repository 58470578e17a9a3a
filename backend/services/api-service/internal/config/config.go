package config

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/2022ce33-coder/Real-Estate2-sub001/backend/shared/go-utils"
)

// Config holds all application configuration, including secrets, flags, etc.
type Config struct {
	OrganizationName string
	AppName          string
	Env              string
	AppPort          string
	AppUrl           string // origin of the web frontend, used for CORS
	DBUrl            string
	TokenExpiry      time.Duration
	ResetTokenExpiry time.Duration
	SendGridAPIKey   string
	RSAPrivateKey    *rsa.PrivateKey
	RSAPublicKey     *rsa.PublicKey

	// Static flags fetched once from LaunchDarkly (or the FLAG_* env fallbacks)
	LDFlag_SendgridFromEmail      string
	LDFlag_SendgridSandboxMode    bool
	LDFlag_ExposeResetToken       bool
	LDFlag_SeedDbWithTestAccounts bool
	LDFlag_CORSHighSecurity       bool
}

// Constants for time-based configuration defaults.
const (
	OrganizationName        = utils.OrganizationName
	DefaultTokenExpiry      = 24 * time.Hour
	DefaultResetTokenExpiry = 1 * time.Hour
	LDConnectionTimeout     = 5 * time.Second
	devRSAKeyBits           = 2048
)

var errMissingRSAKeys = errors.New("RSA_PRIVATE_KEY_BASE64 and RSA_PUBLIC_KEY_BASE64 are required in prod")

// Global compile-time overrides, set with -ldflags.
var (
	AppName             = "api-service"
	LDServerContextKey  = "api-service"
	LDServerContextKind = "service"
)

// LoadConfig reads the environment, resolves feature flags and returns a *Config.
func LoadConfig() *Config {
	utils.Logger.Info("Loading config for app: ", AppName)

	//----------------------------------------------------------------------
	// Load environment variables.
	//----------------------------------------------------------------------
	env := utils.GetEnv("ENV", "dev")
	appUrl := utils.GetEnv("APP_URL_FROM_ANYWHERE", "http://localhost:8080")
	appPort := utils.GetEnv("APP_PORT", "8081")

	dbUrl := utils.GetEnv("DB_URL", "")
	if dbUrl == "" {
		utils.Logger.Fatal("DB_URL env var is missing")
	}

	//----------------------------------------------------------------------
	// RSA keys for access tokens.
	//----------------------------------------------------------------------
	privateKey, publicKey, err := loadRSAKeys(
		utils.GetEnv("RSA_PRIVATE_KEY_BASE64", ""),
		utils.GetEnv("RSA_PUBLIC_KEY_BASE64", ""),
		env,
	)
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to load RSA keys")
	}

	//----------------------------------------------------------------------
	// Feature flags.
	//----------------------------------------------------------------------
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
		AppPort:          appPort,
		AppUrl:           appUrl,
		DBUrl:            dbUrl,
		TokenExpiry:      utils.GetEnvDuration("TOKEN_EXPIRY", DefaultTokenExpiry),
		ResetTokenExpiry: utils.GetEnvDuration("RESET_TOKEN_EXPIRY", DefaultResetTokenExpiry),
		SendGridAPIKey:   utils.GetEnv("SENDGRID_API_KEY", ""),
		RSAPrivateKey:    privateKey,
		RSAPublicKey:     publicKey,
	}
	if err := cfg.applyFlags(flags); err != nil {
		utils.Logger.WithError(err).Fatal("Error retrieving feature flags")
	}

	if cfg.SendGridAPIKey == "" && !cfg.LDFlag_ExposeResetToken {
		utils.Logger.Warn("SENDGRID_API_KEY is empty and expose_reset_token is off; reset tokens cannot reach users")
	}

	utils.Logger.Infof("Loaded config for %s (%s)", AppName, env)
	return cfg
}

func (c *Config) applyFlags(flags utils.FlagSource) error {
	var err error
	if c.LDFlag_SendgridFromEmail, err = flags.StringVariation("sendgrid_from_email", "no-reply@estatehub.dev"); err != nil {
		return err
	}
	if c.LDFlag_SendgridSandboxMode, err = flags.BoolVariation("sendgrid_sandbox_mode", false); err != nil {
		return err
	}
	if c.LDFlag_ExposeResetToken, err = flags.BoolVariation("expose_reset_token", c.Env == "dev"); err != nil {
		return err
	}
	if c.LDFlag_SeedDbWithTestAccounts, err = flags.BoolVariation("seed_db_with_test_accounts", c.Env == "dev"); err != nil {
		return err
	}
	if c.LDFlag_CORSHighSecurity, err = flags.BoolVariation("cors_high_security", c.Env != "dev"); err != nil {
		return err
	}

	utils.Logger.Debugf("sendgrid_from_email flag: %s", c.LDFlag_SendgridFromEmail)
	utils.Logger.Debugf("sendgrid_sandbox_mode flag: %t", c.LDFlag_SendgridSandboxMode)
	utils.Logger.Debugf("expose_reset_token flag: %t", c.LDFlag_ExposeResetToken)
	utils.Logger.Debugf("seed_db_with_test_accounts flag: %t", c.LDFlag_SeedDbWithTestAccounts)
	utils.Logger.Debugf("cors_high_security flag: %t", c.LDFlag_CORSHighSecurity)
	return nil
}

// loadRSAKeys decodes base64 PEM keys. Outside production an ephemeral pair
// is generated when none is configured; tokens then die with the process.
func loadRSAKeys(privB64, pubB64, env string) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	if privB64 == "" || pubB64 == "" {
		if env == "prod" {
			return nil, nil, errMissingRSAKeys
		}
		utils.Logger.Warn("RSA keys not configured; generating an ephemeral development key pair")
		priv, err := rsa.GenerateKey(rand.Reader, devRSAKeyBits)
		if err != nil {
			return nil, nil, err
		}
		return priv, &priv.PublicKey, nil
	}

	privateKeyPEM, err := base64.StdEncoding.DecodeString(privB64)
	if err != nil {
		return nil, nil, err
	}
	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(privateKeyPEM)
	if err != nil {
		return nil, nil, err
	}

	publicKeyPEM, err := base64.StdEncoding.DecodeString(pubB64)
	if err != nil {
		return nil, nil, err
	}
	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(publicKeyPEM)
	if err != nil {
		return nil, nil, err
	}
	return privateKey, publicKey, nil
}
