package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gagliardetto/solana-go"
	associatedtokenaccount "github.com/gagliardetto/solana-go/programs/associated-token-account"
	"github.com/gagliardetto/solana-go/programs/system"
	"go.uber.org/zap"

	"github.com/chaindepth/chaindepth-client/libs/go/client/wallet"
	"github.com/chaindepth/chaindepth-client/libs/go/config"
	"github.com/chaindepth/chaindepth-client/libs/go/constants"
	"github.com/chaindepth/chaindepth-client/libs/go/logger"
	"github.com/chaindepth/chaindepth-client/libs/go/program/chaindepth"
)

// SigningContext names the identity one action will sign with. Resolved
// fresh per action and never stored.
type SigningContext struct {
	Signer          wallet.TransactionSigner
	AuthorityRecord *solana.PublicKey // nil when signing with the wallet
	Player          solana.PublicKey
	UsesDelegated   bool
}

// sessionState is the single owned value holding everything about the
// active delegated session. Only SessionService mutates it; every other
// component reads through accessors.
type sessionState struct {
	signer          *wallet.Keypair
	authorityRecord solana.PublicKey
	capabilities    uint32
	spendCap        uint64
	spent           uint64
	expirySlot      uint64
	expiryUnix      int64
	funded          bool
}

// SessionService owns the delegated session lifecycle: key generation,
// on-chain registration, funding, expiry tracking, and teardown.
type SessionService struct {
	mu        sync.Mutex
	chain     ChainReader
	submitter TransactionSubmitter
	primary   wallet.TransactionSigner
	skrMint   solana.PublicKey
	options   config.Options
	session   *sessionState
	logger    *zap.Logger
	slog      *logger.StructuredLogger
	now       func() time.Time
}

// NewSessionService creates a session manager for one connected wallet.
func NewSessionService(chain ChainReader, submitter TransactionSubmitter, primary wallet.TransactionSigner, skrMint solana.PublicKey, options config.Options) *SessionService {
	return &SessionService{
		chain:     chain,
		submitter: submitter,
		primary:   primary,
		skrMint:   skrMint,
		options:   options,
		logger:    logger.Log,
		slog:      logger.NewStructuredLogger(logger.ComponentSession),
		now:       time.Now,
	}
}

// Player returns the connected wallet's public key.
func (s *SessionService) Player() solana.PublicKey {
	return s.primary.PublicKey()
}

// EnsureGameplaySession is the single entry point gameplay code calls before
// any delegated action. Concurrent callers queue on the mutex and observe
// the outcome of a single establishment attempt instead of racing duplicate
// sessions. Exactly one grant attempt is made per call.
func (s *SessionService) EnsureGameplaySession(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeLocked() {
		// Funding repair is cheaper than a fresh grant; the balance is read
		// every time because the signer can be drained between actions.
		funded, err := s.ensureFundedLocked(ctx)
		if err == nil && funded {
			return true, nil
		}
		if err != nil {
			s.logger.Warn("session funding repair failed, starting new session",
				zap.String("session_key", s.session.signer.PublicKey().String()),
				zap.Error(err))
		}
	}

	if err := s.beginSessionLocked(ctx, s.options.DefaultCapabilities, s.options.DefaultSpendCap, s.options.DefaultDurationMinutes); err != nil {
		return false, err
	}
	return true, nil
}

// BeginSession establishes a fresh delegated session. Any existing session
// handle is replaced; the old on-chain grant is left to expire or to an
// explicit revocation by the wallet owner.
func (s *SessionService) BeginSession(ctx context.Context, capabilityMask uint32, spendCap uint64, durationMinutes uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.beginSessionLocked(ctx, capabilityMask, spendCap, durationMinutes)
}

func (s *SessionService) beginSessionLocked(ctx context.Context, capabilityMask uint32, spendCap uint64, durationMinutes uint64) error {
	if capabilityMask == 0 {
		return fmt.Errorf("session capability mask must not be empty")
	}
	if durationMinutes == 0 {
		durationMinutes = s.options.DefaultDurationMinutes
	}
	player := s.primary.PublicKey()

	if err := s.ensureTokenAccountLocked(ctx, player); err != nil {
		return fmt.Errorf("failed to ensure player token account: %w", err)
	}

	signer, err := wallet.NewKeypair()
	if err != nil {
		return fmt.Errorf("failed to generate session keypair: %w", err)
	}
	authorityRecord, err := chaindepth.FindSessionAuthority(player, signer.PublicKey())
	if err != nil {
		return fmt.Errorf("failed to derive session authority record: %w", err)
	}

	slot, err := s.chain.GetSlot(ctx)
	if err != nil {
		return fmt.Errorf("failed to read current slot: %w", err)
	}
	expirySlot := slot + durationMinutes*constants.SlotsPerMinute
	expiryUnix := s.now().Unix() + int64(durationMinutes)*60

	grant, err := chaindepth.NewGrantSessionInstruction(player, signer.PublicKey(), chaindepth.GrantSessionArgs{
		AllowedInstructions: capabilityMask,
		SpendCap:            spendCap,
		ExpirySlot:          expirySlot,
		ExpiryUnix:          expiryUnix,
	})
	if err != nil {
		return fmt.Errorf("failed to build grant instruction: %w", err)
	}

	// Funding rides in the same transaction as the grant so a successful
	// session is funded by construction. The amount is a fixed generous
	// constant; undersizing causes mid-session failures with no cheap
	// recovery.
	funding := system.NewTransferInstruction(
		s.options.SessionFundingLamports,
		player,
		signer.PublicKey(),
	).Build()

	result := s.submitter.Send(ctx,
		[]solana.Instruction{funding, grant},
		player,
		[]wallet.TransactionSigner{s.primary, signer},
	)
	if !result.Ok {
		// No partial state survives a failed grant.
		return fmt.Errorf("failed to establish session: %s", result.FailureReason)
	}

	s.session = &sessionState{
		signer:          signer,
		authorityRecord: authorityRecord,
		capabilities:    capabilityMask,
		spendCap:        spendCap,
		expirySlot:      expirySlot,
		expiryUnix:      expiryUnix,
		funded:          true,
	}
	s.slog.LogSessionEvent(signer.PublicKey().String(), "session_established", map[string]interface{}{
		"player":       player.String(),
		"capabilities": capabilityMask,
		"spend_cap":    spendCap,
		"expiry_slot":  expirySlot,
		"signature":    result.Signature.String(),
	})
	return nil
}

// EnsureSessionSignerFunded checks the session signer's fee balance and
// issues a fixed top-up transfer from the wallet when it has dropped below
// the minimum. Idempotent; cheap to call speculatively.
func (s *SessionService) EnsureSessionSignerFunded(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureFundedLocked(ctx)
}

func (s *SessionService) ensureFundedLocked(ctx context.Context) (bool, error) {
	if s.session == nil {
		return false, fmt.Errorf("no active session to fund")
	}

	balance, err := s.chain.GetBalance(ctx, s.session.signer.PublicKey())
	if err != nil {
		return false, fmt.Errorf("failed to read session signer balance: %w", err)
	}
	if balance >= s.options.MinSessionLamports {
		s.session.funded = true
		return true, nil
	}

	player := s.primary.PublicKey()
	topUp := system.NewTransferInstruction(
		s.options.TopUpLamports,
		player,
		s.session.signer.PublicKey(),
	).Build()

	result := s.submitter.Send(ctx,
		[]solana.Instruction{topUp},
		player,
		[]wallet.TransactionSigner{s.primary},
	)
	if !result.Ok {
		s.session.funded = false
		return false, fmt.Errorf("failed to top up session signer: %s", result.FailureReason)
	}

	s.session.funded = true
	s.slog.LogSessionEvent(s.session.signer.PublicKey().String(), "session_topped_up", map[string]interface{}{
		"player":    player.String(),
		"lamports":  s.options.TopUpLamports,
		"signature": result.Signature.String(),
	})
	return true, nil
}

// EndSession revokes the on-chain grant and clears all in-memory session
// state unconditionally. A session key is never reused after EndSession,
// regardless of transaction outcome ambiguity.
func (s *SessionService) EndSession(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil
	}
	player := s.primary.PublicKey()
	sessionKey := s.session.signer.PublicKey()
	defer func() {
		s.session = nil
	}()

	revoke, err := chaindepth.NewRevokeSessionInstruction(player, sessionKey)
	if err != nil {
		return fmt.Errorf("failed to build revoke instruction: %w", err)
	}

	result := s.submitter.Send(ctx,
		[]solana.Instruction{revoke},
		player,
		[]wallet.TransactionSigner{s.primary},
	)
	if !result.Ok {
		return fmt.Errorf("failed to revoke session: %s", result.FailureReason)
	}

	s.slog.LogSessionEvent(sessionKey.String(), "session_ended", map[string]interface{}{
		"player":    player.String(),
		"signature": result.Signature.String(),
	})
	return nil
}

// Invalidate drops the in-memory session handle without touching the chain.
// Called when the program rejects the session; the on-chain record is
// already useless or expired.
func (s *SessionService) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session != nil {
		s.logger.Info("session invalidated",
			zap.String("session_key", s.session.signer.PublicKey().String()))
	}
	s.session = nil
}

// HasActiveAuthority reports whether a non-expired session grant exists.
func (s *SessionService) HasActiveAuthority() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeLocked()
}

// CanSignLocally reports whether the next action can be signed with the
// session key without prompting the wallet.
func (s *SessionService) CanSignLocally() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeLocked() && s.session.funded
}

// ResolveSigningContext picks the signing identity for one action. The
// session key is used only when the session is active, funded, and holds
// the capability bit; otherwise the wallet signs.
func (s *SessionService) ResolveSigningContext(capability uint32) SigningContext {
	s.mu.Lock()
	defer s.mu.Unlock()

	player := s.primary.PublicKey()
	if s.activeLocked() && s.session.funded && s.session.capabilities&capability == capability {
		record := s.session.authorityRecord
		return SigningContext{
			Signer:          s.session.signer,
			AuthorityRecord: &record,
			Player:          player,
			UsesDelegated:   true,
		}
	}
	return SigningContext{
		Signer: s.primary,
		Player: player,
	}
}

// PrimaryContext returns a wallet-signed context regardless of session
// state.
func (s *SessionService) PrimaryContext() SigningContext {
	return SigningContext{
		Signer: s.primary,
		Player: s.primary.PublicKey(),
	}
}

// AuthorizeSpend records a token amount against the session's spend cap,
// rejecting before any network call when the cap would be exceeded.
func (s *SessionService) AuthorizeSpend(amount uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return fmt.Errorf("no active session")
	}
	if s.session.spent+amount > s.session.spendCap {
		return fmt.Errorf("spend of %d would exceed session cap (%d of %d used)",
			amount, s.session.spent, s.session.spendCap)
	}
	s.session.spent += amount
	return nil
}

// ReleaseSpend hands a previously authorized amount back to the session's
// spend headroom. Called when the authorized action never landed on chain,
// so the program-side cap was never consumed either.
func (s *SessionService) ReleaseSpend(amount uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return
	}
	if amount > s.session.spent {
		amount = s.session.spent
	}
	s.session.spent -= amount
}

// SpentAmount returns the cumulative token amount authorized by the active
// session, or zero without one.
func (s *SessionService) SpentAmount() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return 0
	}
	return s.session.spent
}

func (s *SessionService) activeLocked() bool {
	return s.session != nil &&
		!s.session.authorityRecord.IsZero() &&
		s.now().Unix() < s.session.expiryUnix
}

// ensureTokenAccountLocked creates the player's SKR associated token account
// when missing. Idempotent precondition, not part of the grant itself.
func (s *SessionService) ensureTokenAccountLocked(ctx context.Context, player solana.PublicKey) error {
	tokenAccount, _, err := solana.FindAssociatedTokenAddress(player, s.skrMint)
	if err != nil {
		return fmt.Errorf("failed to derive token account: %w", err)
	}

	exists, err := s.chain.AccountExists(ctx, tokenAccount)
	if err != nil {
		return fmt.Errorf("failed to check token account: %w", err)
	}
	if exists {
		return nil
	}

	create := associatedtokenaccount.NewCreateInstruction(player, player, s.skrMint).Build()
	result := s.submitter.Send(ctx,
		[]solana.Instruction{create},
		player,
		[]wallet.TransactionSigner{s.primary},
	)
	if !result.Ok {
		return fmt.Errorf("failed to create token account: %s", result.FailureReason)
	}

	s.logger.Info("player token account created",
		zap.String("player", player.String()),
		zap.String("token_account", tokenAccount.String()),
		zap.String("signature", result.Signature.String()))
	return nil
}
