package constants

import "time"

// Lamport denominations
const (
	LamportsPerSOL uint64 = 1_000_000_000
)

// Session signer funding policy. The grant transaction bundles a generous
// fixed transfer so the session never needs a mid-session top-up under
// normal play; undersizing here causes failures with no cheap recovery.
const (
	// SessionFundingLamports is transferred to a fresh session signer as part
	// of the grant transaction.
	SessionFundingLamports uint64 = 10_000_000 // 0.01 SOL

	// SessionTopUpLamports is the fixed top-up issued when a session signer
	// balance drops below the minimum.
	SessionTopUpLamports uint64 = 5_000_000 // 0.005 SOL

	// SessionMinimumLamports is the balance below which a session signer is
	// considered unfunded.
	SessionMinimumLamports uint64 = 2_000_000 // 0.002 SOL
)

// Session expiry policy. The program enforces the slot expiry; the client
// schedules renewal off the wall-clock expiry. Both are set from the same
// duration at grant time.
const (
	// SlotsPerMinute assumes the network's 400ms slot target.
	SlotsPerMinute uint64 = 150

	DefaultSessionDurationMinutes = 60
)

// Submission retry policy defaults.
const (
	DefaultMaxAttemptsPerEndpoint = 2
	DefaultBackoffBase            = 500 * time.Millisecond
	DefaultRequestTimeout         = 15 * time.Second
)
