package keeper_test

import (
	"errors"
	"testing"

	"cosmossdk.io/math"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cle-coin/cle/x/powparams/testutil"
	"github.com/cle-coin/cle/x/powparams/types"
)

func TestEndBlocker_PaysAuthorExactlyOnce(t *testing.T) {
	f := testutil.NewFixture(t)
	alice := testutil.Account("alice")
	require.NoError(t, f.Keeper.SetReward(f.Ctx, f.Authority, math.NewInt(7)))
	require.NoError(t, f.Keeper.ClaimAuthor(f.Ctx, alice))

	require.NoError(t, f.Keeper.EndBlocker(f.Ctx))

	assert.Equal(t, "7", f.Bank.Balance(alice, types.DefaultDenom).String())
	assert.Equal(t, "7", f.Bank.Supply().String())
	assert.True(t, f.Bank.ModuleBalance(types.ModuleName, types.DefaultDenom).IsZero())
	assert.Equal(t, 1, f.Bank.Accounts())
	require.Len(t, f.EventsOfType(types.EventTypeAuthorRewarded), 1)

	_, ok, err := f.Keeper.GetAuthor(f.Ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	// A second finalization has nothing left to pay.
	require.NoError(t, f.Keeper.EndBlocker(f.Ctx))
	assert.Equal(t, "7", f.Bank.Balance(alice, types.DefaultDenom).String())
	assert.Equal(t, "7", f.Bank.Supply().String())
}

func TestEndBlocker_NoAuthor(t *testing.T) {
	f := testutil.NewFixture(t)

	require.NoError(t, f.Keeper.EndBlocker(f.Ctx))

	assert.True(t, f.Bank.Supply().IsZero())
	assert.Zero(t, f.Bank.Accounts())
	assert.Empty(t, f.EventsOfType(types.EventTypeAuthorRewarded))
}

func TestEndBlocker_ZeroRewardStillClears(t *testing.T) {
	f := testutil.NewFixture(t)
	require.NoError(t, f.Keeper.SetReward(f.Ctx, f.Authority, math.ZeroInt()))
	require.NoError(t, f.Keeper.ClaimAuthor(f.Ctx, testutil.Account("alice")))

	require.NoError(t, f.Keeper.EndBlocker(f.Ctx))

	assert.True(t, f.Bank.Supply().IsZero())
	_, ok, err := f.Keeper.GetAuthor(f.Ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEndBlocker_IssuanceFailureIsFatal(t *testing.T) {
	f := testutil.NewFixture(t)
	f.Bank.MintErr = errors.New("supply capped")
	require.NoError(t, f.Keeper.ClaimAuthor(f.Ctx, testutil.Account("alice")))

	err := f.Keeper.EndBlocker(f.Ctx)
	require.ErrorIs(t, err, types.ErrIssuance)
	assert.True(t, types.IsFatal(err))

	f = testutil.NewFixture(t)
	f.Bank.SendErr = errors.New("blocked address")
	require.NoError(t, f.Keeper.ClaimAuthor(f.Ctx, testutil.Account("alice")))
	require.ErrorIs(t, f.Keeper.EndBlocker(f.Ctx), types.ErrIssuance)
}

// Genesis 1000/1; block 1 is authored by A with no calls; block 2 raises the
// difficulty to 5000 and is authored by B.
func TestTwoBlockScenario(t *testing.T) {
	f := testutil.NewFixture(t)
	a := testutil.Account("account-a")
	b := testutil.Account("account-b")

	require.NoError(t, f.Keeper.ApplyAuthorInherent(f.Ctx, a))
	require.NoError(t, f.Keeper.EndBlocker(f.Ctx))

	assert.Equal(t, "1", f.Bank.Balance(a, types.DefaultDenom).String())
	d, err := f.Keeper.GetDifficulty(f.Ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), d.Uint64())

	f.NextBlock()
	require.NoError(t, f.Keeper.ApplyPrivilegedCall(f.Ctx, types.NewMsgSetDifficulty(f.Authority, *uint256.NewInt(5000))))
	require.NoError(t, f.Keeper.ApplyAuthorInherent(f.Ctx, b))
	require.NoError(t, f.Keeper.EndBlocker(f.Ctx))

	d, err = f.Keeper.GetDifficulty(f.Ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(5000), d.Uint64())
	assert.Equal(t, "1", f.Bank.Balance(a, types.DefaultDenom).String())
	assert.Equal(t, "1", f.Bank.Balance(b, types.DefaultDenom).String())

	events := f.EventsOfType(types.EventTypeDifficultyChanged)
	require.Len(t, events, 1)
	assert.Equal(t, "5000", events[0].Attributes[0].Value)
}
