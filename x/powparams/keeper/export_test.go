package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

func (k Keeper) ClaimAuthor(ctx context.Context, author sdk.AccAddress) error {
	return k.claimAuthor(ctx, author)
}

func (k Keeper) TakeAuthor(ctx context.Context) (sdk.AccAddress, error) {
	return k.takeAuthor(ctx)
}
