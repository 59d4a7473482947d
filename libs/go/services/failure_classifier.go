package services

import (
	"regexp"
	"strconv"
	"strings"
)

// FailureClass is the closed set of semantic failure classes the engine
// distinguishes. Everything downstream (retry policy, endpoint advancement,
// the raw probe, session renewal) keys off this classification rather than
// off raw error text.
type FailureClass int

const (
	FailureUnknown FailureClass = iota
	FailureConnection
	FailureTimeout
	FailureRateLimit
	FailureMalformedResponse
	FailureSimulationRejected
	FailureProgramError
)

func (c FailureClass) String() string {
	switch c {
	case FailureConnection:
		return "connection"
	case FailureTimeout:
		return "timeout"
	case FailureRateLimit:
		return "rate_limit"
	case FailureMalformedResponse:
		return "malformed_response"
	case FailureSimulationRejected:
		return "simulation_rejected"
	case FailureProgramError:
		return "program_error"
	default:
		return "unknown"
	}
}

// Classification is the outcome of classifying one failure reason string.
type Classification struct {
	Class     FailureClass
	Transient bool
	// ProgramError is the custom program error code extracted from the
	// reason, or -1 when the failure carried none.
	ProgramError int
}

type classificationRule struct {
	substring string
	class     FailureClass
	transient bool
}

// classificationRules maps known reason-text patterns to failure classes.
// The table is matched top to bottom, first hit wins; it is data, not
// scattered conditionals, so the rules are testable in isolation.
var classificationRules = []classificationRule{
	// Program rejections carry an error code and are never transient:
	// retrying the same transaction cannot change the program's answer.
	{"custom program error", FailureProgramError, false},
	{"instructionerror", FailureProgramError, false},

	// An expired or unknown blockhash is cured by re-fetching, so it stays
	// transient even though it surfaces as a simulation failure.
	{"blockhash not found", FailureSimulationRejected, true},

	// A sanitation rejection means the signature block does not line up
	// with the message; resending identical bytes cannot succeed.
	{"sanitize", FailureSimulationRejected, false},
	{"signature verification failure", FailureSimulationRejected, false},
	{"simulation failed", FailureSimulationRejected, false},

	{"too many requests", FailureRateLimit, true},
	{"rate limit", FailureRateLimit, true},
	{"429", FailureRateLimit, true},

	{"context deadline exceeded", FailureTimeout, true},
	{"timed out", FailureTimeout, true},
	{"timeout", FailureTimeout, true},

	{"connection refused", FailureConnection, true},
	{"connection reset", FailureConnection, true},
	{"no such host", FailureConnection, true},
	{"broken pipe", FailureConnection, true},

	// Truncated or unparseable bodies: the send may have been accepted even
	// though the client could not read the answer.
	{"unexpected eof", FailureMalformedResponse, true},
	{"unexpected end of json", FailureMalformedResponse, true},
	{"invalid character", FailureMalformedResponse, true},
	{"cannot unmarshal", FailureMalformedResponse, true},
	{"failed to decode", FailureMalformedResponse, true},
}

var programErrorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`custom program error: (0x[0-9a-fA-F]+)`),
	regexp.MustCompile(`custom program error: (\d+)`),
	regexp.MustCompile(`"Custom":\s*(\d+)`),
	regexp.MustCompile(`Custom\((\d+)\)`),
}

// Classify maps a failure reason string to its class, transience, and any
// embedded program error code. An empty or unrecognized reason classifies
// as an unknown, non-transient failure: the endpoint gave a clear rejection
// the engine has no rule for, and blind same-endpoint retries are wasted.
func Classify(reason string) Classification {
	result := Classification{Class: FailureUnknown, Transient: false, ProgramError: -1}
	if reason == "" {
		return result
	}

	if code, ok := extractProgramError(reason); ok {
		result.Class = FailureProgramError
		result.ProgramError = code
		return result
	}

	lowered := strings.ToLower(reason)
	for _, rule := range classificationRules {
		if strings.Contains(lowered, rule.substring) {
			result.Class = rule.class
			result.Transient = rule.transient
			return result
		}
	}
	return result
}

// IsRawProbeCandidate reports whether a classified failure matches the
// specific ambiguous pattern worth one raw-transport probe: the response
// could not be parsed, so the transaction may have landed.
func IsRawProbeCandidate(c Classification) bool {
	return c.Class == FailureMalformedResponse
}

func extractProgramError(reason string) (int, bool) {
	for _, pattern := range programErrorPatterns {
		match := pattern.FindStringSubmatch(reason)
		if match == nil {
			continue
		}
		raw := match[1]
		if strings.HasPrefix(raw, "0x") || strings.HasPrefix(raw, "0X") {
			code, err := strconv.ParseInt(raw[2:], 16, 32)
			if err != nil {
				continue
			}
			return int(code), true
		}
		code, err := strconv.Atoi(raw)
		if err != nil {
			continue
		}
		return code, true
	}
	return 0, false
}
