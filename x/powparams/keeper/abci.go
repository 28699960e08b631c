package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cle-coin/cle/x/powparams/types"
)

// EndBlocker pays the block author. The author slot is cleared whether or not
// an author was recorded; the reward is read after every call in the block has
// been applied. An issuance failure is returned and halts the block.
func (k Keeper) EndBlocker(ctx context.Context) error {
	author, err := k.takeAuthor(ctx)
	if err != nil {
		return err
	}
	if author == nil {
		return nil
	}

	reward, err := k.GetReward(ctx)
	if err != nil {
		return err
	}
	if reward.IsZero() {
		k.Logger(ctx).Debug("zero reward, nothing issued", "author", author.String())
		return nil
	}

	coins := sdk.NewCoins(sdk.NewCoin(k.denom, reward))
	if err := k.bankKeeper.MintCoins(ctx, types.ModuleName, coins); err != nil {
		return errorsmod.Wrapf(types.ErrIssuance, "mint %s: %s", coins, err)
	}
	if err := k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, author, coins); err != nil {
		return errorsmod.Wrapf(types.ErrIssuance, "pay %s to %s: %s", coins, author, err)
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeAuthorRewarded,
		sdk.NewAttribute(types.AttributeKeyAuthor, author.String()),
		sdk.NewAttribute(types.AttributeKeyAmount, coins.String()),
	))
	k.Logger(ctx).Info("block author rewarded", "author", author.String(), "amount", coins.String())
	return nil
}
