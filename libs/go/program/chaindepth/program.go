// Package chaindepth builds instructions for the ChainDepth on-chain program
// and derives its program-owned account addresses. The program itself is an
// external collaborator: this package only knows its instruction encoding,
// account layouts, and error codes.
package chaindepth

import (
	"github.com/gagliardetto/solana-go"
)

// ProgramID is the deployed ChainDepth program address.
var ProgramID = solana.MustPublicKeyFromBase58("CDptH1v3xNcRzk1zMBYVamuYPPMBQBnnfqrXVs1rFAoN")

// Session capability bits. A session grant carries a bitset of these; the
// program rejects any instruction whose bit is not set.
const (
	CapMovePlayer          uint32 = 1 << 0
	CapJoinJob             uint32 = 1 << 1
	CapCompleteJob         uint32 = 1 << 2
	CapLootChest           uint32 = 1 << 3
	CapLootBoss            uint32 = 1 << 4
	CapCreatePlayerProfile uint32 = 1 << 5

	// CapAllGameplay covers every gameplay instruction a session may sign.
	CapAllGameplay = CapMovePlayer | CapJoinJob | CapCompleteJob |
		CapLootChest | CapLootBoss | CapCreatePlayerProfile
)

// PDA seed prefixes, matching the program's account definitions.
var (
	seedGlobal           = []byte("global")
	seedPlayerAccount    = []byte("player")
	seedPlayerProfile    = []byte("profile")
	seedInventory        = []byte("inventory")
	seedRoom             = []byte("room")
	seedRoomPresence     = []byte("presence")
	seedSessionAuthority = []byte("session")
	seedHelperStake      = []byte("helper_stake")
	seedEscrow           = []byte("escrow")
	seedBossFight        = []byte("boss_fight")
)

// FindGlobal derives the global game state account.
func FindGlobal() (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress([][]byte{seedGlobal}, ProgramID)
	return addr, err
}

// FindPlayerAccount derives the gameplay state account for a player wallet.
func FindPlayerAccount(player solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress(
		[][]byte{seedPlayerAccount, player.Bytes()}, ProgramID)
	return addr, err
}

// FindPlayerProfile derives the cosmetic profile account for a player wallet.
func FindPlayerProfile(player solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress(
		[][]byte{seedPlayerProfile, player.Bytes()}, ProgramID)
	return addr, err
}

// FindInventory derives the inventory account for a player wallet.
func FindInventory(player solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress(
		[][]byte{seedInventory, player.Bytes()}, ProgramID)
	return addr, err
}

// FindRoom derives a room account from the season seed and coordinates.
func FindRoom(seasonSeed uint64, x, y int8) (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress([][]byte{
		seedRoom,
		seasonSeedBytes(seasonSeed),
		{uint8(x)},
		{uint8(y)},
	}, ProgramID)
	return addr, err
}

// FindRoomPresence derives a player's presence marker in a room.
func FindRoomPresence(seasonSeed uint64, x, y int8, player solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress([][]byte{
		seedRoomPresence,
		seasonSeedBytes(seasonSeed),
		{uint8(x)},
		{uint8(y)},
		player.Bytes(),
	}, ProgramID)
	return addr, err
}

// FindSessionAuthority derives the on-chain authority record for a
// (player, session signer) pair.
func FindSessionAuthority(player, sessionSigner solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress(
		[][]byte{seedSessionAuthority, player.Bytes(), sessionSigner.Bytes()}, ProgramID)
	return addr, err
}

// FindHelperStake derives the per-helper stake marker for a room job.
func FindHelperStake(room solana.PublicKey, direction uint8, player solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress(
		[][]byte{seedHelperStake, room.Bytes(), {direction}, player.Bytes()}, ProgramID)
	return addr, err
}

// FindBossFight derives a player's boss fight record in a room.
func FindBossFight(room, player solana.PublicKey) (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress(
		[][]byte{seedBossFight, room.Bytes(), player.Bytes()}, ProgramID)
	return addr, err
}

// FindEscrow derives the escrow token account for a room job direction.
func FindEscrow(room solana.PublicKey, direction uint8) (solana.PublicKey, error) {
	addr, _, err := solana.FindProgramAddress(
		[][]byte{seedEscrow, room.Bytes(), {direction}}, ProgramID)
	return addr, err
}

func seasonSeedBytes(seasonSeed uint64) []byte {
	b := make([]byte, 8)
	for i := 0; i < 8; i++ {
		b[i] = byte(seasonSeed >> (8 * i))
	}
	return b
}
