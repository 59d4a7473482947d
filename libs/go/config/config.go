// Package config carries the engine's injected options. Nothing in the
// engine reads the environment directly; gameplay hosts either fill Options
// by hand or call LoadFromEnv at startup.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	solclient "github.com/chaindepth/chaindepth-client/libs/go/client/solana"
	"github.com/chaindepth/chaindepth-client/libs/go/constants"
	"github.com/chaindepth/chaindepth-client/libs/go/helpers"
	"github.com/chaindepth/chaindepth-client/libs/go/program/chaindepth"
)

// Options configures the engine.
type Options struct {
	// Endpoints is the prioritized RPC endpoint list (primary, fallback,
	// wallet-supplied). De-duplicated by URL at pool construction.
	Endpoints []solclient.EndpointDescriptor

	// DefaultCapabilities is the capability mask granted when a gameplay
	// flow starts a session without naming one.
	DefaultCapabilities uint32

	// DefaultSpendCap is the maximum cumulative token amount a default
	// session may authorize, in SKR base units.
	DefaultSpendCap uint64

	// DefaultDurationMinutes bounds a default session's lifetime.
	DefaultDurationMinutes uint64

	// MinSessionLamports is the session signer balance below which the
	// signer counts as unfunded.
	MinSessionLamports uint64

	// TopUpLamports is the fixed transfer issued by a funding repair.
	TopUpLamports uint64

	// SessionFundingLamports is bundled into every session grant.
	SessionFundingLamports uint64

	// MaxAttemptsPerEndpoint bounds transaction sends per endpoint.
	MaxAttemptsPerEndpoint int

	// BackoffBase scales the wait between transient retries on one endpoint.
	BackoffBase time.Duration

	// RequestTimeout bounds every individual network call.
	RequestTimeout time.Duration
}

// DefaultOptions returns the engine defaults; endpoints must still be set.
func DefaultOptions() Options {
	return Options{
		DefaultCapabilities:    chaindepth.CapAllGameplay,
		DefaultSpendCap:        1_000_000_000,
		DefaultDurationMinutes: constants.DefaultSessionDurationMinutes,
		MinSessionLamports:     constants.SessionMinimumLamports,
		TopUpLamports:          constants.SessionTopUpLamports,
		SessionFundingLamports: constants.SessionFundingLamports,
		MaxAttemptsPerEndpoint: constants.DefaultMaxAttemptsPerEndpoint,
		BackoffBase:            constants.DefaultBackoffBase,
		RequestTimeout:         constants.DefaultRequestTimeout,
	}
}

// Validate rejects unusable option sets before any network call.
func (o Options) Validate() error {
	if len(o.Endpoints) == 0 {
		return fmt.Errorf("at least one RPC endpoint is required")
	}
	if o.MaxAttemptsPerEndpoint < 1 {
		return fmt.Errorf("max attempts per endpoint must be at least 1")
	}
	if o.DefaultDurationMinutes == 0 {
		return fmt.Errorf("default session duration must be positive")
	}
	return nil
}

// LoadFromEnv builds Options from the environment. In the local stage a
// .env file is loaded first if present.
func LoadFromEnv(stage string) (Options, error) {
	if !helpers.IsValidStage(stage) {
		return Options{}, fmt.Errorf("unknown stage %q", stage)
	}
	if stage == constants.LocalEnvironment {
		// Missing .env is fine locally; explicit env vars still apply.
		_ = godotenv.Load()
	}

	opts := DefaultOptions()

	primary := os.Getenv("CHAINDEPTH_RPC_URL")
	if primary == "" {
		return Options{}, fmt.Errorf("CHAINDEPTH_RPC_URL is required")
	}
	opts.Endpoints = append(opts.Endpoints, solclient.EndpointDescriptor{
		URL:  primary,
		Role: solclient.RolePrimary,
	})
	for _, url := range splitList(os.Getenv("CHAINDEPTH_FALLBACK_RPC_URLS")) {
		opts.Endpoints = append(opts.Endpoints, solclient.EndpointDescriptor{
			URL:  url,
			Role: solclient.RoleFallback,
		})
	}

	var err error
	if opts.DefaultCapabilities, err = envUint32("CHAINDEPTH_SESSION_CAPABILITIES", opts.DefaultCapabilities); err != nil {
		return Options{}, err
	}
	if opts.DefaultSpendCap, err = envUint64("CHAINDEPTH_SESSION_SPEND_CAP", opts.DefaultSpendCap); err != nil {
		return Options{}, err
	}
	if opts.DefaultDurationMinutes, err = envUint64("CHAINDEPTH_SESSION_DURATION_MINUTES", opts.DefaultDurationMinutes); err != nil {
		return Options{}, err
	}
	if opts.MinSessionLamports, err = envUint64("CHAINDEPTH_SESSION_MIN_LAMPORTS", opts.MinSessionLamports); err != nil {
		return Options{}, err
	}
	if opts.TopUpLamports, err = envUint64("CHAINDEPTH_SESSION_TOPUP_LAMPORTS", opts.TopUpLamports); err != nil {
		return Options{}, err
	}
	if opts.SessionFundingLamports, err = envUint64("CHAINDEPTH_SESSION_FUNDING_LAMPORTS", opts.SessionFundingLamports); err != nil {
		return Options{}, err
	}

	return opts, opts.Validate()
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func envUint64(key string, fallback uint64) (uint64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return value, nil
}

func envUint32(key string, fallback uint32) (uint32, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return uint32(value), nil
}
