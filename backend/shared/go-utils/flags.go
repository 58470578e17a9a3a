// go-utils/flags.go
package utils

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/launchdarkly/go-sdk-common/v3/ldcontext"
	ld "github.com/launchdarkly/go-server-sdk/v7"
)

// FlagSource is where a service reads its static feature flags: LaunchDarkly
// when an SDK key is configured, FLAG_<NAME> env vars otherwise.
type FlagSource interface {
	BoolVariation(key string, def bool) (bool, error)
	StringVariation(key string, def string) (string, error)
	Close()
}

// NewFlagSource connects to LaunchDarkly as the given server context, or
// falls back to env vars when sdkKey is empty.
func NewFlagSource(sdkKey, contextKind, contextKey string, timeout time.Duration) (FlagSource, error) {
	if sdkKey == "" {
		Logger.Info("LD_SDK_KEY not set; reading feature flags from FLAG_* env vars")
		return EnvFlags{}, nil
	}

	ldClient, err := ld.MakeClient(sdkKey, timeout)
	if err != nil {
		return nil, err
	}
	if !ldClient.Initialized() {
		_ = ldClient.Close()
		return nil, errors.New("LaunchDarkly client failed to initialize")
	}
	return &ldFlags{
		client: ldClient,
		ctx:    ldcontext.NewWithKind(ldcontext.Kind(contextKind), contextKey),
	}, nil
}

type ldFlags struct {
	client *ld.LDClient
	ctx    ldcontext.Context
}

func (f *ldFlags) BoolVariation(key string, def bool) (bool, error) {
	return f.client.BoolVariation(key, f.ctx, def)
}

func (f *ldFlags) StringVariation(key string, def string) (string, error) {
	v, err := f.client.StringVariation(key, f.ctx, def)
	if err == nil && v == "" {
		v = def
	}
	return v, err
}

func (f *ldFlags) Close() {
	_ = f.client.Close()
}

// EnvFlags reads flag "some_flag" from FLAG_SOME_FLAG.
type EnvFlags struct{}

func envFlagName(key string) string {
	return "FLAG_" + strings.ToUpper(key)
}

func (EnvFlags) BoolVariation(key string, def bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(envFlagName(key)))
	if raw == "" {
		return def, nil
	}
	return strconv.ParseBool(raw)
}

func (EnvFlags) StringVariation(key string, def string) (string, error) {
	return GetEnv(envFlagName(key), def), nil
}

func (EnvFlags) Close() {}
