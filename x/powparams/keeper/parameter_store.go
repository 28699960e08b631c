package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/holiman/uint256"

	"github.com/cle-coin/cle/x/powparams/types"
)

// GetDifficulty returns the stored difficulty, or the default when genesis
// never set one.
func (k Keeper) GetDifficulty(ctx context.Context) (uint256.Int, error) {
	d, err := k.difficulty.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return types.DefaultParams().Difficulty, nil
	}
	return d, err
}

// GetReward returns the stored reward, or the default when genesis never set
// one.
func (k Keeper) GetReward(ctx context.Context) (math.Int, error) {
	r, err := k.reward.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return types.DefaultParams().Reward, nil
	}
	return r, err
}

func (k Keeper) GetParams(ctx context.Context) (types.Params, error) {
	d, err := k.GetDifficulty(ctx)
	if err != nil {
		return types.Params{}, err
	}
	r, err := k.GetReward(ctx)
	if err != nil {
		return types.Params{}, err
	}
	return types.Params{Difficulty: d, Reward: r}, nil
}

// SetDifficulty overwrites the difficulty on behalf of origin and emits
// difficulty_changed. Nothing is written or emitted on failure.
func (k Keeper) SetDifficulty(ctx context.Context, origin string, d uint256.Int) error {
	if err := k.EnsureAuthority(origin); err != nil {
		return err
	}
	if err := types.ValidateDifficulty(d); err != nil {
		return err
	}
	if err := k.difficulty.Set(ctx, d); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeDifficultyChanged,
		sdk.NewAttribute(types.AttributeKeyDifficulty, d.Dec()),
	))
	k.Logger(ctx).Info("difficulty changed", "difficulty", d.Dec())
	return nil
}

// SetReward overwrites the reward on behalf of origin and emits
// reward_changed. Nothing is written or emitted on failure.
func (k Keeper) SetReward(ctx context.Context, origin string, r math.Int) error {
	if err := k.EnsureAuthority(origin); err != nil {
		return err
	}
	if err := types.ValidateReward(r); err != nil {
		return err
	}
	if err := k.reward.Set(ctx, r); err != nil {
		return err
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeRewardChanged,
		sdk.NewAttribute(types.AttributeKeyReward, r.String()),
	))
	k.Logger(ctx).Info("reward changed", "reward", r.String())
	return nil
}
