package keeper_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cle-coin/cle/x/powparams/testutil"
	"github.com/cle-coin/cle/x/powparams/types"
)

func TestDefaultsAfterGenesis(t *testing.T) {
	f := testutil.NewFixture(t)

	d, err := f.Keeper.GetDifficulty(f.Ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), d.Uint64())

	r, err := f.Keeper.GetReward(f.Ctx)
	require.NoError(t, err)
	assert.True(t, r.Equal(math.OneInt()))
}

func TestSetDifficulty_Authority(t *testing.T) {
	f := testutil.NewFixture(t)

	require.NoError(t, f.Keeper.SetDifficulty(f.Ctx, f.Authority, *uint256.NewInt(5000)))

	d, err := f.Keeper.GetDifficulty(f.Ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(5000), d.Uint64())

	events := f.EventsOfType(types.EventTypeDifficultyChanged)
	require.Len(t, events, 1)
	require.Len(t, events[0].Attributes, 1)
	assert.Equal(t, types.AttributeKeyDifficulty, events[0].Attributes[0].Key)
	assert.Equal(t, "5000", events[0].Attributes[0].Value)
}

func TestSetDifficulty_FullRange(t *testing.T) {
	f := testutil.NewFixture(t)

	max := new(uint256.Int).SetAllOne()
	require.NoError(t, f.Keeper.SetDifficulty(f.Ctx, f.Authority, *max))

	d, err := f.Keeper.GetDifficulty(f.Ctx)
	require.NoError(t, err)
	assert.True(t, d.Eq(max))
}

func TestSetDifficulty_RejectsZero(t *testing.T) {
	f := testutil.NewFixture(t)

	err := f.Keeper.SetDifficulty(f.Ctx, f.Authority, uint256.Int{})
	require.ErrorIs(t, err, types.ErrInvalidDifficulty)

	d, err := f.Keeper.GetDifficulty(f.Ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), d.Uint64())
	assert.Empty(t, f.EventsOfType(types.EventTypeDifficultyChanged))
}

func TestSetReward_Authority(t *testing.T) {
	f := testutil.NewFixture(t)

	require.NoError(t, f.Keeper.SetReward(f.Ctx, f.Authority, math.NewInt(250)))

	r, err := f.Keeper.GetReward(f.Ctx)
	require.NoError(t, err)
	assert.Equal(t, "250", r.String())

	events := f.EventsOfType(types.EventTypeRewardChanged)
	require.Len(t, events, 1)
	assert.Equal(t, "250", events[0].Attributes[0].Value)
}

func TestSetReward_ZeroAllowedNegativeRejected(t *testing.T) {
	f := testutil.NewFixture(t)

	require.NoError(t, f.Keeper.SetReward(f.Ctx, f.Authority, math.ZeroInt()))

	err := f.Keeper.SetReward(f.Ctx, f.Authority, math.NewInt(-1))
	require.ErrorIs(t, err, types.ErrInvalidReward)

	r, err := f.Keeper.GetReward(f.Ctx)
	require.NoError(t, err)
	assert.True(t, r.IsZero())
	assert.Len(t, f.EventsOfType(types.EventTypeRewardChanged), 1)
}

func TestUnauthorizedOriginsChangeNothing(t *testing.T) {
	origins := map[string]string{
		"ordinary account": testutil.Account("mallory").String(),
		"empty":            "",
		"not bech32":       "root",
		"wrong prefix":     "osmo1qyqszqgpqyqszqgpqyqszqgpqyqszqgpjnp7du",
	}

	for name, origin := range origins {
		t.Run(name, func(t *testing.T) {
			f := testutil.NewFixture(t)

			err := f.Keeper.SetDifficulty(f.Ctx, origin, *uint256.NewInt(1))
			require.ErrorIs(t, err, types.ErrUnauthorized)
			err = f.Keeper.SetReward(f.Ctx, origin, math.NewInt(1_000_000))
			require.ErrorIs(t, err, types.ErrUnauthorized)

			p, err := f.Keeper.GetParams(f.Ctx)
			require.NoError(t, err)
			assert.Equal(t, uint64(1000), p.Difficulty.Uint64())
			assert.True(t, p.Reward.Equal(math.OneInt()))
			assert.Empty(t, f.Ctx.EventManager().Events())
		})
	}
}

func TestLastRewardWithinBlockWins(t *testing.T) {
	f := testutil.NewFixture(t)
	miner := testutil.Account("miner")

	require.NoError(t, f.Keeper.SetReward(f.Ctx, f.Authority, math.NewInt(10)))
	require.NoError(t, f.Keeper.ClaimAuthor(f.Ctx, miner))
	require.NoError(t, f.Keeper.SetReward(f.Ctx, f.Authority, math.NewInt(30)))
	require.Error(t, f.Keeper.SetReward(f.Ctx, testutil.Account("mallory").String(), math.NewInt(99)))

	require.NoError(t, f.Keeper.EndBlocker(f.Ctx))
	assert.Equal(t, "30", f.Bank.Balance(miner, types.DefaultDenom).String())
}

func TestDifficultyStaysPositiveOnEveryWritePath(t *testing.T) {
	f := testutil.NewFixture(t)

	require.ErrorIs(t, f.Keeper.SetDifficulty(f.Ctx, f.Authority, uint256.Int{}), types.ErrInvalidDifficulty)
	require.ErrorIs(t, f.Keeper.ApplyPrivilegedCall(f.Ctx, types.NewMsgSetDifficulty(f.Authority, uint256.Int{})), types.ErrInvalidDifficulty)
	require.ErrorIs(t, f.Keeper.InitGenesis(f.Ctx, &types.GenesisState{Difficulty: "0", Reward: "1"}), types.ErrInvalidGenesis)

	d, err := f.Keeper.GetDifficulty(f.Ctx)
	require.NoError(t, err)
	assert.Equal(t, types.DefaultParams().Difficulty, d)
	assert.Empty(t, f.EventsOfType(types.EventTypeDifficultyChanged))
}
