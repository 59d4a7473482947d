package services

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/gagliardetto/solana-go"
	"github.com/google/uuid"
	"go.uber.org/zap"

	solclient "github.com/chaindepth/chaindepth-client/libs/go/client/solana"
	"github.com/chaindepth/chaindepth-client/libs/go/client/wallet"
	"github.com/chaindepth/chaindepth-client/libs/go/config"
	"github.com/chaindepth/chaindepth-client/libs/go/helpers"
	"github.com/chaindepth/chaindepth-client/libs/go/logger"
)

// SubmissionAttempt records one transaction-send attempt against one
// endpoint. Used only for retry decisions and diagnostics; never persisted.
type SubmissionAttempt struct {
	Endpoint      string
	AttemptNumber int
	FailureReason string
	FailureClass  FailureClass
}

// SendResult is the outcome of one Send invocation. Ok with a signature, or
// not Ok with the last non-empty failure reason and its classification.
type SendResult struct {
	Signature      solana.Signature
	Ok             bool
	FailureReason  string
	Classification Classification
	Attempts       []SubmissionAttempt
}

// SubmissionService drives the endpoint pool and retry policy to get one
// assembled transaction accepted. Endpoints are tried strictly in priority
// order, attempts within an endpoint are sequential, and nothing races.
type SubmissionService struct {
	pool    *solclient.Pool
	options config.Options
	logger  *zap.Logger
	slog    *logger.StructuredLogger
}

// NewSubmissionService creates a new submission service over the pool.
func NewSubmissionService(pool *solclient.Pool, options config.Options) *SubmissionService {
	return &SubmissionService{
		pool:    pool,
		options: options,
		logger:  logger.Log,
		slog:    logger.NewStructuredLogger(logger.ComponentSubmission),
	}
}

// Send assembles and submits one transaction. All network and assembly
// faults are converted into the classified-failure model here; nothing is
// thrown across this boundary.
func (s *SubmissionService) Send(ctx context.Context, instructions []solana.Instruction, feePayer solana.PublicKey, signers []wallet.TransactionSigner) *SendResult {
	result := &SendResult{Classification: Classification{ProgramError: -1}}
	if len(instructions) == 0 {
		result.FailureReason = "no instructions to send"
		return result
	}
	if len(signers) == 0 {
		result.FailureReason = "no signers provided"
		return result
	}

	submissionID := uuid.New().String()
	slog := s.slog.WithCorrelationID(submissionID)

	for _, endpoint := range s.pool.Endpoints() {
		policy := backoff.NewExponentialBackOff()
		policy.InitialInterval = s.options.BackoffBase
		policy.MaxElapsedTime = 0 // attempt count bounds the loop, not wall time

		for attempt := 1; attempt <= s.options.MaxAttemptsPerEndpoint; attempt++ {
			// A failed blockhash read abandons this endpoint without
			// consuming a transaction-send attempt.
			blockhash, _, err := endpoint.RPC.GetLatestBlockhash(ctx)
			if err != nil {
				s.logger.Warn("blockhash read failed, abandoning endpoint",
					zap.String("submission_id", submissionID),
					zap.String("endpoint", endpoint.RPC.URL()),
					zap.Error(err))
				// Keep a diagnosis even when no send attempt ever runs; a
				// real send failure always takes precedence.
				if len(result.Attempts) == 0 {
					result.FailureReason = fmt.Sprintf("failed to read blockhash from %s: %v", endpoint.RPC.URL(), err)
					result.Classification = Classify(err.Error())
				}
				break
			}

			txBytes, err := s.assemble(ctx, instructions, blockhash, feePayer, signers)
			if err != nil {
				// Structural assembly failures are fatal everywhere:
				// resending incorrectly-assembled bytes cannot succeed on
				// any endpoint.
				result.FailureReason = err.Error()
				result.Classification = Classification{
					Class:        FailureSimulationRejected,
					Transient:    false,
					ProgramError: -1,
				}
				s.logger.Error("transaction assembly failed",
					zap.String("submission_id", submissionID),
					zap.Error(err))
				return result
			}

			signature, err := endpoint.RPC.SendRawTransaction(ctx, txBytes)
			if err == nil {
				s.logger.Info("transaction accepted",
					zap.String("submission_id", submissionID),
					zap.String("endpoint", endpoint.RPC.URL()),
					zap.String("signature", signature.String()),
					zap.Int("attempt", attempt))
				result.Ok = true
				result.Signature = signature
				return result
			}

			reason := err.Error()
			classification := Classify(reason)
			result.FailureReason = reason
			result.Classification = classification
			result.Attempts = append(result.Attempts, SubmissionAttempt{
				Endpoint:      endpoint.RPC.URL(),
				AttemptNumber: attempt,
				FailureReason: reason,
				FailureClass:  classification.Class,
			})
			slog.LogSubmissionAttempt(endpoint.RPC.URL(), attempt, classification.Class.String(), reason)

			// An unparseable response is ambiguous: the send may have been
			// accepted. Probe once over the raw transport with the same
			// payload before giving up on this attempt.
			if IsRawProbeCandidate(classification) {
				if probeSig, probeErr := endpoint.Raw.Broadcast(ctx, txBytes); probeErr == nil {
					s.logger.Info("raw probe recovered accepted transaction",
						zap.String("submission_id", submissionID),
						zap.String("endpoint", endpoint.RPC.URL()),
						zap.String("signature", probeSig.String()))
					result.Ok = true
					result.Signature = probeSig
					return result
				} else {
					s.logger.Debug("raw probe did not recover a signature",
						zap.String("submission_id", submissionID),
						zap.String("endpoint", endpoint.RPC.URL()),
						zap.Error(probeErr))
				}
			}

			if !classification.Transient {
				// Clear rejection: this endpoint will keep saying no.
				break
			}
			if attempt < s.options.MaxAttemptsPerEndpoint {
				if err := s.wait(ctx, policy.NextBackOff()); err != nil {
					result.FailureReason = fmt.Sprintf("submission abandoned: %v", err)
					return result
				}
			}
		}
	}

	s.logger.Error("all endpoints exhausted",
		zap.String("submission_id", submissionID),
		zap.String("last_reason", result.FailureReason),
		zap.Int("attempts", len(result.Attempts)))
	return result
}

// assemble freezes the canonical message once and collects every signature
// against the frozen bytes: local partial signatures first, external wallet
// prompts after, final wire bytes by manual concatenation.
func (s *SubmissionService) assemble(ctx context.Context, instructions []solana.Instruction, blockhash solana.Hash, feePayer solana.PublicKey, signers []wallet.TransactionSigner) ([]byte, error) {
	frozen, err := helpers.FreezeTransaction(instructions, blockhash, feePayer)
	if err != nil {
		return nil, fmt.Errorf("failed to freeze transaction: %w", err)
	}

	for _, signer := range signers {
		if signer.RequiresPrompt() {
			continue
		}
		if err := signer.SignFrozen(ctx, frozen); err != nil {
			return nil, fmt.Errorf("local signature from %s failed: %w", signer.PublicKey(), err)
		}
	}
	for _, signer := range signers {
		if !signer.RequiresPrompt() {
			continue
		}
		if err := signer.SignFrozen(ctx, frozen); err != nil {
			return nil, fmt.Errorf("external signature from %s failed: %w", signer.PublicKey(), err)
		}
	}

	txBytes, err := frozen.Assemble()
	if err != nil {
		return nil, fmt.Errorf("failed to assemble signed transaction: %w", err)
	}
	return txBytes, nil
}

func (s *SubmissionService) wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
