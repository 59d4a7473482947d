package chaindepth_test

import (
	"crypto/sha256"
	"encoding/binary"
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaindepth/chaindepth-client/libs/go/program/chaindepth"
)

func discriminator(name string) []byte {
	hash := sha256.Sum256([]byte("global:" + name))
	return hash[:8]
}

func TestNewGrantSessionInstruction(t *testing.T) {
	player := solana.NewWallet().PublicKey()
	sessionSigner := solana.NewWallet().PublicKey()

	ix, err := chaindepth.NewGrantSessionInstruction(player, sessionSigner, chaindepth.GrantSessionArgs{
		AllowedInstructions: chaindepth.CapAllGameplay,
		SpendCap:            1_000_000,
		ExpirySlot:          123_456,
		ExpiryUnix:          1_700_000_000,
	})
	require.NoError(t, err)
	assert.Equal(t, chaindepth.ProgramID, ix.ProgramID())

	data, err := ix.Data()
	require.NoError(t, err)
	require.Len(t, data, 8+4+8+8+8)
	assert.Equal(t, discriminator("grant_session"), data[:8])

	// Borsh layout: u32 mask, u64 cap, u64 expiry slot, i64 expiry unix,
	// all little endian.
	assert.Equal(t, chaindepth.CapAllGameplay, binary.LittleEndian.Uint32(data[8:12]))
	assert.Equal(t, uint64(1_000_000), binary.LittleEndian.Uint64(data[12:20]))
	assert.Equal(t, uint64(123_456), binary.LittleEndian.Uint64(data[20:28]))
	assert.Equal(t, uint64(1_700_000_000), binary.LittleEndian.Uint64(data[28:36]))

	accounts := ix.Accounts()
	require.Len(t, accounts, 4)
	assert.Equal(t, player, accounts[0].PublicKey)
	assert.True(t, accounts[0].IsSigner)
	assert.Equal(t, sessionSigner, accounts[1].PublicKey)
	assert.True(t, accounts[1].IsSigner)

	record, err := chaindepth.FindSessionAuthority(player, sessionSigner)
	require.NoError(t, err)
	assert.Equal(t, record, accounts[2].PublicKey)
	assert.Equal(t, solana.SystemProgramID, accounts[3].PublicKey)
}

func TestNewRevokeSessionInstruction(t *testing.T) {
	player := solana.NewWallet().PublicKey()
	sessionSigner := solana.NewWallet().PublicKey()

	ix, err := chaindepth.NewRevokeSessionInstruction(player, sessionSigner)
	require.NoError(t, err)

	data, err := ix.Data()
	require.NoError(t, err)
	assert.Equal(t, discriminator("revoke_session"), data)

	accounts := ix.Accounts()
	require.Len(t, accounts, 2)
	assert.Equal(t, player, accounts[0].PublicKey)
	assert.True(t, accounts[0].IsSigner)
}

func TestNewMovePlayerInstruction_OptionalSessionSlot(t *testing.T) {
	player := solana.NewWallet().PublicKey()
	sessionSigner := solana.NewWallet().PublicKey()
	record, err := chaindepth.FindSessionAuthority(player, sessionSigner)
	require.NoError(t, err)

	params := chaindepth.MovePlayerParams{
		Authority:  player,
		Player:     player,
		SeasonSeed: 7,
		FromX:      0, FromY: 0,
		ToX: 1, ToY: 0,
	}

	t.Run("wallet signing leaves the slot empty", func(t *testing.T) {
		ix, err := chaindepth.NewMovePlayerInstruction(params)
		require.NoError(t, err)

		accounts := ix.Accounts()
		// A missing optional account is encoded as the program id.
		sessionSlot := accounts[len(accounts)-2]
		assert.Equal(t, chaindepth.ProgramID, sessionSlot.PublicKey)
		assert.False(t, sessionSlot.IsWritable)
	})

	t.Run("delegated signing fills the slot", func(t *testing.T) {
		delegated := params
		delegated.Authority = sessionSigner
		delegated.SessionAuthority = &record

		ix, err := chaindepth.NewMovePlayerInstruction(delegated)
		require.NoError(t, err)

		accounts := ix.Accounts()
		sessionSlot := accounts[len(accounts)-2]
		assert.Equal(t, record, sessionSlot.PublicKey)
		assert.True(t, sessionSlot.IsWritable)

		assert.Equal(t, sessionSigner, accounts[0].PublicKey)
		assert.True(t, accounts[0].IsSigner)
	})

	t.Run("move args carry the target coordinates", func(t *testing.T) {
		ix, err := chaindepth.NewMovePlayerInstruction(params)
		require.NoError(t, err)

		data, err := ix.Data()
		require.NoError(t, err)
		assert.Equal(t, discriminator("move_player"), data[:8])
		assert.Equal(t, byte(1), data[8]) // new x
		assert.Equal(t, byte(0), data[9]) // new y
	})
}

func TestNewLootBossInstruction(t *testing.T) {
	player := solana.NewWallet().PublicKey()
	sessionSigner := solana.NewWallet().PublicKey()
	record, err := chaindepth.FindSessionAuthority(player, sessionSigner)
	require.NoError(t, err)

	params := chaindepth.LootBossParams{
		Authority:  sessionSigner,
		Player:     player,
		SeasonSeed: 7,
		RoomX:      1, RoomY: 2,
		SessionAuthority: &record,
	}

	ix, err := chaindepth.NewLootBossInstruction(params)
	require.NoError(t, err)
	assert.Equal(t, chaindepth.ProgramID, ix.ProgramID())

	data, err := ix.Data()
	require.NoError(t, err)
	assert.Equal(t, discriminator("loot_boss"), data)

	accounts := ix.Accounts()
	require.Len(t, accounts, 10)
	assert.Equal(t, sessionSigner, accounts[0].PublicKey)
	assert.True(t, accounts[0].IsSigner)
	assert.Equal(t, player, accounts[1].PublicKey)

	room, err := chaindepth.FindRoom(7, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, room, accounts[4].PublicKey)
	assert.True(t, accounts[4].IsWritable)

	bossFight, err := chaindepth.FindBossFight(room, player)
	require.NoError(t, err)
	assert.Equal(t, bossFight, accounts[6].PublicKey)
	assert.False(t, accounts[6].IsWritable, "boss fight record is read-only")

	inventory, err := chaindepth.FindInventory(player)
	require.NoError(t, err)
	assert.Equal(t, inventory, accounts[7].PublicKey)
	assert.True(t, accounts[7].IsWritable)

	sessionSlot := accounts[len(accounts)-2]
	assert.Equal(t, record, sessionSlot.PublicKey)
	assert.True(t, sessionSlot.IsWritable)

	t.Run("wallet signing leaves the session slot empty", func(t *testing.T) {
		direct := params
		direct.Authority = player
		direct.SessionAuthority = nil

		ix, err := chaindepth.NewLootBossInstruction(direct)
		require.NoError(t, err)

		accounts := ix.Accounts()
		sessionSlot := accounts[len(accounts)-2]
		assert.Equal(t, chaindepth.ProgramID, sessionSlot.PublicKey)
		assert.False(t, sessionSlot.IsWritable)
	})
}

func TestPDADerivationIsDeterministic(t *testing.T) {
	player := solana.NewWallet().PublicKey()
	sessionSigner := solana.NewWallet().PublicKey()

	a, err := chaindepth.FindSessionAuthority(player, sessionSigner)
	require.NoError(t, err)
	b, err := chaindepth.FindSessionAuthority(player, sessionSigner)
	require.NoError(t, err)
	assert.Equal(t, a, b)

	other, err := chaindepth.FindSessionAuthority(player, solana.NewWallet().PublicKey())
	require.NoError(t, err)
	assert.NotEqual(t, a, other)

	roomA, err := chaindepth.FindRoom(7, 1, 2)
	require.NoError(t, err)
	roomB, err := chaindepth.FindRoom(7, 2, 1)
	require.NoError(t, err)
	assert.NotEqual(t, roomA, roomB, "coordinates must be independent seeds")
}

func TestCapabilityBitsAreDistinct(t *testing.T) {
	bits := []uint32{
		chaindepth.CapMovePlayer,
		chaindepth.CapJoinJob,
		chaindepth.CapCompleteJob,
		chaindepth.CapLootChest,
		chaindepth.CapLootBoss,
		chaindepth.CapCreatePlayerProfile,
	}
	var combined uint32
	for _, bit := range bits {
		assert.Zero(t, combined&bit, "capability bits must not overlap")
		combined |= bit
	}
	assert.Equal(t, chaindepth.CapAllGameplay, combined)
}

func TestErrorNamesAndRecoverableSet(t *testing.T) {
	assert.Equal(t, "session_expired", chaindepth.ErrorName(chaindepth.ErrSessionExpired))
	assert.Equal(t, "unauthorized", chaindepth.ErrorName(chaindepth.ErrUnauthorized))

	recoverable := []int{
		chaindepth.ErrSessionExpired,
		chaindepth.ErrSessionInactive,
		chaindepth.ErrSessionInstructionNotAllowed,
		chaindepth.ErrSessionSpendCapExceeded,
		chaindepth.ErrUnauthorized,
	}
	for _, code := range recoverable {
		assert.True(t, chaindepth.IsRecoverableSessionError(code), "code %d", code)
	}

	assert.False(t, chaindepth.IsRecoverableSessionError(chaindepth.ErrNotAdjacent))
	assert.False(t, chaindepth.IsRecoverableSessionError(chaindepth.ErrAccountNotInitialized))
	assert.False(t, chaindepth.IsRecoverableSessionError(-1))
}
