package chaindepth

// Custom program error codes. Anchor numbers custom errors from 6000 in
// declaration order, so these values track the program's error enum exactly.
const (
	ErrNotAdjacent                  = 6000
	ErrWallNotOpen                  = 6001
	ErrOutOfBounds                  = 6002
	ErrInvalidDirection             = 6003
	ErrNotRubble                    = 6004
	ErrAlreadyJoined                = 6005
	ErrJobFull                      = 6006
	ErrNotHelper                    = 6007
	ErrJobNotReady                  = 6008
	ErrNoActiveJob                  = 6009
	ErrJobAlreadyCompleted          = 6010
	ErrJobNotCompleted              = 6011
	ErrTooManyActiveJobs            = 6012
	ErrInventoryFull                = 6013
	ErrInvalidItemId                = 6014
	ErrInvalidItemAmount            = 6015
	ErrInsufficientItemAmount       = 6016
	ErrNoChest                      = 6017
	ErrAlreadyLooted                = 6018
	ErrTreasuryInsufficientFunds    = 6019
	ErrNotInRoom                    = 6020
	ErrNoBoss                       = 6021
	ErrBossAlreadyDefeated          = 6022
	ErrBossNotDefeated              = 6023
	ErrAlreadyFightingBoss          = 6024
	ErrNotBossFighter               = 6025
	ErrInvalidCenterType            = 6026
	ErrDisplayNameTooLong           = 6027
	ErrInvalidSessionExpiry         = 6028
	ErrInvalidSessionAllowlist      = 6029
	ErrSessionExpired               = 6030
	ErrSessionInactive              = 6031
	ErrSessionInstructionNotAllowed = 6032
	ErrSessionSpendCapExceeded      = 6033
	ErrSeasonNotEnded               = 6034
	ErrUnauthorized                 = 6035
	ErrInsufficientBalance          = 6036
	ErrTransferFailed               = 6037
	ErrOverflow                     = 6038
)

// Framework-level error codes surfaced through the same channel.
const (
	ErrAccountNotInitialized = 3012
)

// errorNames maps known codes to short names for diagnostics.
var errorNames = map[int]string{
	ErrNotAdjacent:                  "not_adjacent",
	ErrWallNotOpen:                  "wall_not_open",
	ErrOutOfBounds:                  "out_of_bounds",
	ErrInvalidDirection:             "invalid_direction",
	ErrNotRubble:                    "not_rubble",
	ErrAlreadyJoined:                "already_joined",
	ErrJobFull:                      "job_full",
	ErrNotHelper:                    "not_helper",
	ErrJobNotReady:                  "job_not_ready",
	ErrNoActiveJob:                  "no_active_job",
	ErrJobAlreadyCompleted:          "job_already_completed",
	ErrJobNotCompleted:              "job_not_completed",
	ErrTooManyActiveJobs:            "too_many_active_jobs",
	ErrInventoryFull:                "inventory_full",
	ErrInvalidItemId:                "invalid_item_id",
	ErrInvalidItemAmount:            "invalid_item_amount",
	ErrInsufficientItemAmount:       "insufficient_item_amount",
	ErrNoChest:                      "no_chest",
	ErrAlreadyLooted:                "already_looted",
	ErrTreasuryInsufficientFunds:    "treasury_insufficient_funds",
	ErrNotInRoom:                    "not_in_room",
	ErrNoBoss:                       "no_boss",
	ErrBossAlreadyDefeated:          "boss_already_defeated",
	ErrBossNotDefeated:              "boss_not_defeated",
	ErrAlreadyFightingBoss:          "already_fighting_boss",
	ErrNotBossFighter:               "not_boss_fighter",
	ErrInvalidCenterType:            "invalid_center_type",
	ErrDisplayNameTooLong:           "display_name_too_long",
	ErrInvalidSessionExpiry:         "invalid_session_expiry",
	ErrInvalidSessionAllowlist:      "invalid_session_allowlist",
	ErrSessionExpired:               "session_expired",
	ErrSessionInactive:              "session_inactive",
	ErrSessionInstructionNotAllowed: "session_instruction_not_allowed",
	ErrSessionSpendCapExceeded:      "session_spend_cap_exceeded",
	ErrSeasonNotEnded:               "season_not_ended",
	ErrUnauthorized:                 "unauthorized",
	ErrInsufficientBalance:          "insufficient_balance",
	ErrTransferFailed:               "transfer_failed",
	ErrOverflow:                     "overflow",
	ErrAccountNotInitialized:        "account_not_initialized",
}

// ErrorName returns a short diagnostic name for a program error code, or
// "unmapped" for codes outside the known enumeration.
func ErrorName(code int) string {
	if name, ok := errorNames[code]; ok {
		return name
	}
	return "unmapped"
}

// recoverableSessionErrors are rejections fixable by renewing the session
// rather than by retrying the same transaction.
var recoverableSessionErrors = map[int]bool{
	ErrSessionExpired:               true,
	ErrSessionInactive:              true,
	ErrSessionInstructionNotAllowed: true,
	ErrSessionSpendCapExceeded:      true,
	ErrUnauthorized:                 true,
}

// IsRecoverableSessionError reports whether a program error code indicates
// the session grant itself is invalid and a renewal is worth one retry.
func IsRecoverableSessionError(code int) bool {
	return recoverableSessionErrors[code]
}
