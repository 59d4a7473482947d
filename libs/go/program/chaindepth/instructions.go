package chaindepth

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// anchorDiscriminator computes the 8-byte instruction discriminator the
// program's dispatcher matches on.
func anchorDiscriminator(name string) []byte {
	hash := sha256.Sum256([]byte("global:" + name))
	return hash[:8]
}

// encodeArgs borsh-encodes instruction arguments behind a discriminator.
func encodeArgs(name string, args interface{}) ([]byte, error) {
	data := bytes.NewBuffer(anchorDiscriminator(name))
	if args != nil {
		if err := bin.NewBorshEncoder(data).Encode(args); err != nil {
			return nil, fmt.Errorf("failed to encode %s args: %w", name, err)
		}
	}
	return data.Bytes(), nil
}

// optionalSession returns the account meta for the program's optional
// session authority slot. Anchor encodes a missing optional account as the
// program's own id.
func optionalSession(sessionAuthority *solana.PublicKey) *solana.AccountMeta {
	if sessionAuthority == nil {
		return solana.Meta(ProgramID)
	}
	return solana.Meta(*sessionAuthority).WRITE()
}

// GrantSessionArgs parameterizes a capability grant.
type GrantSessionArgs struct {
	AllowedInstructions uint32
	SpendCap            uint64
	ExpirySlot          uint64
	ExpiryUnix          int64
}

// NewGrantSessionInstruction builds the capability-granting instruction.
// Both the player wallet and the fresh session signer must sign the
// containing transaction.
func NewGrantSessionInstruction(player, sessionSigner solana.PublicKey, args GrantSessionArgs) (solana.Instruction, error) {
	sessionAuthority, err := FindSessionAuthority(player, sessionSigner)
	if err != nil {
		return nil, fmt.Errorf("failed to derive session authority: %w", err)
	}

	data, err := encodeArgs("grant_session", args)
	if err != nil {
		return nil, err
	}

	return solana.NewInstruction(ProgramID, solana.AccountMetaSlice{
		solana.Meta(player).WRITE().SIGNER(),
		solana.Meta(sessionSigner).SIGNER(),
		solana.Meta(sessionAuthority).WRITE(),
		solana.Meta(solana.SystemProgramID),
	}, data), nil
}

// NewRevokeSessionInstruction builds the revocation instruction. Only the
// player wallet signs; the authority record is closed and rent refunded.
func NewRevokeSessionInstruction(player, sessionSigner solana.PublicKey) (solana.Instruction, error) {
	sessionAuthority, err := FindSessionAuthority(player, sessionSigner)
	if err != nil {
		return nil, fmt.Errorf("failed to derive session authority: %w", err)
	}

	data, err := encodeArgs("revoke_session", nil)
	if err != nil {
		return nil, err
	}

	return solana.NewInstruction(ProgramID, solana.AccountMetaSlice{
		solana.Meta(player).WRITE().SIGNER(),
		solana.Meta(sessionAuthority).WRITE(),
	}, data), nil
}

// MovePlayerParams resolves the accounts for a move.
type MovePlayerParams struct {
	Authority        solana.PublicKey // signing identity: wallet or session signer
	Player           solana.PublicKey
	SessionAuthority *solana.PublicKey // nil when signing with the wallet
	SeasonSeed       uint64
	FromX, FromY     int8
	ToX, ToY         int8
}

type movePlayerArgs struct {
	NewX int8
	NewY int8
}

// NewMovePlayerInstruction builds a move between adjacent rooms.
func NewMovePlayerInstruction(p MovePlayerParams) (solana.Instruction, error) {
	global, err := FindGlobal()
	if err != nil {
		return nil, fmt.Errorf("failed to derive global: %w", err)
	}
	playerAccount, err := FindPlayerAccount(p.Player)
	if err != nil {
		return nil, fmt.Errorf("failed to derive player account: %w", err)
	}
	profile, err := FindPlayerProfile(p.Player)
	if err != nil {
		return nil, fmt.Errorf("failed to derive profile: %w", err)
	}
	currentRoom, err := FindRoom(p.SeasonSeed, p.FromX, p.FromY)
	if err != nil {
		return nil, fmt.Errorf("failed to derive current room: %w", err)
	}
	targetRoom, err := FindRoom(p.SeasonSeed, p.ToX, p.ToY)
	if err != nil {
		return nil, fmt.Errorf("failed to derive target room: %w", err)
	}
	currentPresence, err := FindRoomPresence(p.SeasonSeed, p.FromX, p.FromY, p.Player)
	if err != nil {
		return nil, fmt.Errorf("failed to derive current presence: %w", err)
	}
	targetPresence, err := FindRoomPresence(p.SeasonSeed, p.ToX, p.ToY, p.Player)
	if err != nil {
		return nil, fmt.Errorf("failed to derive target presence: %w", err)
	}

	data, err := encodeArgs("move_player", movePlayerArgs{NewX: p.ToX, NewY: p.ToY})
	if err != nil {
		return nil, err
	}

	return solana.NewInstruction(ProgramID, solana.AccountMetaSlice{
		solana.Meta(p.Authority).WRITE().SIGNER(),
		solana.Meta(p.Player),
		solana.Meta(global).WRITE(),
		solana.Meta(playerAccount).WRITE(),
		solana.Meta(profile).WRITE(),
		solana.Meta(currentRoom),
		solana.Meta(targetRoom).WRITE(),
		solana.Meta(currentPresence).WRITE(),
		solana.Meta(targetPresence).WRITE(),
		optionalSession(p.SessionAuthority),
		solana.Meta(solana.SystemProgramID),
	}, data), nil
}

// JoinJobParams resolves the accounts for joining a dig job.
type JoinJobParams struct {
	Authority          solana.PublicKey
	Player             solana.PublicKey
	SessionAuthority   *solana.PublicKey
	SeasonSeed         uint64
	RoomX, RoomY       int8
	Direction          uint8
	SKRMint            solana.PublicKey
	PlayerTokenAccount solana.PublicKey
}

type joinJobArgs struct {
	Direction uint8
}

// NewJoinJobInstruction builds the stake-and-join instruction for a wall job.
func NewJoinJobInstruction(p JoinJobParams) (solana.Instruction, error) {
	global, err := FindGlobal()
	if err != nil {
		return nil, fmt.Errorf("failed to derive global: %w", err)
	}
	playerAccount, err := FindPlayerAccount(p.Player)
	if err != nil {
		return nil, fmt.Errorf("failed to derive player account: %w", err)
	}
	room, err := FindRoom(p.SeasonSeed, p.RoomX, p.RoomY)
	if err != nil {
		return nil, fmt.Errorf("failed to derive room: %w", err)
	}
	roomPresence, err := FindRoomPresence(p.SeasonSeed, p.RoomX, p.RoomY, p.Player)
	if err != nil {
		return nil, fmt.Errorf("failed to derive room presence: %w", err)
	}
	escrow, err := FindEscrow(room, p.Direction)
	if err != nil {
		return nil, fmt.Errorf("failed to derive escrow: %w", err)
	}
	helperStake, err := FindHelperStake(room, p.Direction, p.Player)
	if err != nil {
		return nil, fmt.Errorf("failed to derive helper stake: %w", err)
	}

	data, err := encodeArgs("join_job", joinJobArgs{Direction: p.Direction})
	if err != nil {
		return nil, err
	}

	return solana.NewInstruction(ProgramID, solana.AccountMetaSlice{
		solana.Meta(p.Authority).WRITE().SIGNER(),
		solana.Meta(p.Player),
		solana.Meta(global),
		solana.Meta(playerAccount).WRITE(),
		solana.Meta(room).WRITE(),
		solana.Meta(roomPresence).WRITE(),
		solana.Meta(escrow).WRITE(),
		solana.Meta(helperStake).WRITE(),
		solana.Meta(p.PlayerTokenAccount).WRITE(),
		solana.Meta(p.SKRMint),
		optionalSession(p.SessionAuthority),
		solana.Meta(solana.TokenProgramID),
		solana.Meta(solana.SystemProgramID),
	}, data), nil
}

// CompleteJobParams resolves the accounts for completing a dig job.
type CompleteJobParams struct {
	Authority          solana.PublicKey
	Player             solana.PublicKey
	SessionAuthority   *solana.PublicKey
	SeasonSeed         uint64
	RoomX, RoomY       int8
	Direction          uint8
	PlayerTokenAccount solana.PublicKey
}

type completeJobArgs struct {
	Direction uint8
}

// NewCompleteJobInstruction builds the job completion instruction, releasing
// the helper's stake plus bonus.
func NewCompleteJobInstruction(p CompleteJobParams) (solana.Instruction, error) {
	global, err := FindGlobal()
	if err != nil {
		return nil, fmt.Errorf("failed to derive global: %w", err)
	}
	playerAccount, err := FindPlayerAccount(p.Player)
	if err != nil {
		return nil, fmt.Errorf("failed to derive player account: %w", err)
	}
	room, err := FindRoom(p.SeasonSeed, p.RoomX, p.RoomY)
	if err != nil {
		return nil, fmt.Errorf("failed to derive room: %w", err)
	}
	escrow, err := FindEscrow(room, p.Direction)
	if err != nil {
		return nil, fmt.Errorf("failed to derive escrow: %w", err)
	}
	helperStake, err := FindHelperStake(room, p.Direction, p.Player)
	if err != nil {
		return nil, fmt.Errorf("failed to derive helper stake: %w", err)
	}

	data, err := encodeArgs("complete_job", completeJobArgs{Direction: p.Direction})
	if err != nil {
		return nil, err
	}

	return solana.NewInstruction(ProgramID, solana.AccountMetaSlice{
		solana.Meta(p.Authority).WRITE().SIGNER(),
		solana.Meta(p.Player),
		solana.Meta(global),
		solana.Meta(playerAccount).WRITE(),
		solana.Meta(room).WRITE(),
		solana.Meta(escrow).WRITE(),
		solana.Meta(helperStake).WRITE(),
		solana.Meta(p.PlayerTokenAccount).WRITE(),
		optionalSession(p.SessionAuthority),
		solana.Meta(solana.TokenProgramID),
		solana.Meta(solana.SystemProgramID),
	}, data), nil
}

// LootChestParams resolves the accounts for looting a room chest.
type LootChestParams struct {
	Authority        solana.PublicKey
	Player           solana.PublicKey
	SessionAuthority *solana.PublicKey
	SeasonSeed       uint64
	RoomX, RoomY     int8
}

// NewLootChestInstruction builds the chest loot instruction.
func NewLootChestInstruction(p LootChestParams) (solana.Instruction, error) {
	global, err := FindGlobal()
	if err != nil {
		return nil, fmt.Errorf("failed to derive global: %w", err)
	}
	playerAccount, err := FindPlayerAccount(p.Player)
	if err != nil {
		return nil, fmt.Errorf("failed to derive player account: %w", err)
	}
	inventory, err := FindInventory(p.Player)
	if err != nil {
		return nil, fmt.Errorf("failed to derive inventory: %w", err)
	}
	room, err := FindRoom(p.SeasonSeed, p.RoomX, p.RoomY)
	if err != nil {
		return nil, fmt.Errorf("failed to derive room: %w", err)
	}
	roomPresence, err := FindRoomPresence(p.SeasonSeed, p.RoomX, p.RoomY, p.Player)
	if err != nil {
		return nil, fmt.Errorf("failed to derive room presence: %w", err)
	}

	data, err := encodeArgs("loot_chest", nil)
	if err != nil {
		return nil, err
	}

	return solana.NewInstruction(ProgramID, solana.AccountMetaSlice{
		solana.Meta(p.Authority).WRITE().SIGNER(),
		solana.Meta(p.Player),
		solana.Meta(global).WRITE(),
		solana.Meta(playerAccount).WRITE(),
		solana.Meta(inventory).WRITE(),
		solana.Meta(room).WRITE(),
		solana.Meta(roomPresence),
		optionalSession(p.SessionAuthority),
		solana.Meta(solana.SystemProgramID),
	}, data), nil
}

// LootBossParams resolves the accounts for looting a defeated room boss.
type LootBossParams struct {
	Authority        solana.PublicKey
	Player           solana.PublicKey
	SessionAuthority *solana.PublicKey
	SeasonSeed       uint64
	RoomX, RoomY     int8
}

// NewLootBossInstruction builds the boss loot instruction. The boss fight
// record is keyed by (room, player); the program checks the boss is defeated
// and the player has not already looted.
func NewLootBossInstruction(p LootBossParams) (solana.Instruction, error) {
	global, err := FindGlobal()
	if err != nil {
		return nil, fmt.Errorf("failed to derive global: %w", err)
	}
	playerAccount, err := FindPlayerAccount(p.Player)
	if err != nil {
		return nil, fmt.Errorf("failed to derive player account: %w", err)
	}
	room, err := FindRoom(p.SeasonSeed, p.RoomX, p.RoomY)
	if err != nil {
		return nil, fmt.Errorf("failed to derive room: %w", err)
	}
	roomPresence, err := FindRoomPresence(p.SeasonSeed, p.RoomX, p.RoomY, p.Player)
	if err != nil {
		return nil, fmt.Errorf("failed to derive room presence: %w", err)
	}
	bossFight, err := FindBossFight(room, p.Player)
	if err != nil {
		return nil, fmt.Errorf("failed to derive boss fight record: %w", err)
	}
	inventory, err := FindInventory(p.Player)
	if err != nil {
		return nil, fmt.Errorf("failed to derive inventory: %w", err)
	}

	data, err := encodeArgs("loot_boss", nil)
	if err != nil {
		return nil, err
	}

	return solana.NewInstruction(ProgramID, solana.AccountMetaSlice{
		solana.Meta(p.Authority).WRITE().SIGNER(),
		solana.Meta(p.Player),
		solana.Meta(global),
		solana.Meta(playerAccount).WRITE(),
		solana.Meta(room).WRITE(),
		solana.Meta(roomPresence).WRITE(),
		solana.Meta(bossFight),
		solana.Meta(inventory).WRITE(),
		optionalSession(p.SessionAuthority),
		solana.Meta(solana.SystemProgramID),
	}, data), nil
}

// CreatePlayerProfileParams resolves the accounts for profile creation.
type CreatePlayerProfileParams struct {
	Authority        solana.PublicKey
	Player           solana.PublicKey
	SessionAuthority *solana.PublicKey
	SeasonSeed       uint64
	RoomX, RoomY     int8
	SkinID           uint16
	DisplayName      string
}

type createPlayerProfileArgs struct {
	SkinID      uint16
	DisplayName string
}

// NewCreatePlayerProfileInstruction builds the profile creation instruction.
func NewCreatePlayerProfileInstruction(p CreatePlayerProfileParams) (solana.Instruction, error) {
	global, err := FindGlobal()
	if err != nil {
		return nil, fmt.Errorf("failed to derive global: %w", err)
	}
	playerAccount, err := FindPlayerAccount(p.Player)
	if err != nil {
		return nil, fmt.Errorf("failed to derive player account: %w", err)
	}
	profile, err := FindPlayerProfile(p.Player)
	if err != nil {
		return nil, fmt.Errorf("failed to derive profile: %w", err)
	}
	inventory, err := FindInventory(p.Player)
	if err != nil {
		return nil, fmt.Errorf("failed to derive inventory: %w", err)
	}
	roomPresence, err := FindRoomPresence(p.SeasonSeed, p.RoomX, p.RoomY, p.Player)
	if err != nil {
		return nil, fmt.Errorf("failed to derive room presence: %w", err)
	}

	data, err := encodeArgs("create_player_profile", createPlayerProfileArgs{
		SkinID:      p.SkinID,
		DisplayName: p.DisplayName,
	})
	if err != nil {
		return nil, err
	}

	return solana.NewInstruction(ProgramID, solana.AccountMetaSlice{
		solana.Meta(p.Authority).WRITE().SIGNER(),
		solana.Meta(p.Player),
		solana.Meta(global),
		solana.Meta(playerAccount).WRITE(),
		solana.Meta(profile).WRITE(),
		solana.Meta(inventory).WRITE(),
		solana.Meta(roomPresence).WRITE(),
		optionalSession(p.SessionAuthority),
		solana.Meta(solana.SystemProgramID),
	}, data), nil
}
