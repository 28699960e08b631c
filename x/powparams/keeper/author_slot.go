package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cle-coin/cle/x/powparams/types"
)

// claimAuthor records author for the current block. It fails with
// ErrAlreadyClaimed, leaving the first author in place, when the block
// already has one.
func (k Keeper) claimAuthor(ctx context.Context, author sdk.AccAddress) error {
	if _, err := types.DecodeAuthor(author); err != nil {
		return err
	}
	has, err := k.author.Has(ctx)
	if err != nil {
		return err
	}
	if has {
		current, err := k.author.Get(ctx)
		if err != nil {
			return err
		}
		return errorsmod.Wrapf(types.ErrAlreadyClaimed, "author %s already set", sdk.AccAddress(current))
	}
	return k.author.Set(ctx, author)
}

// takeAuthor returns the recorded author, nil when there is none, and always
// clears the slot.
func (k Keeper) takeAuthor(ctx context.Context) (sdk.AccAddress, error) {
	author, err := k.author.Get(ctx)
	if err != nil && !errors.Is(err, collections.ErrNotFound) {
		return nil, err
	}
	if err := k.author.Remove(ctx); err != nil {
		return nil, err
	}
	if len(author) == 0 {
		return nil, nil
	}
	return author, nil
}

// GetAuthor reads the slot without clearing it.
func (k Keeper) GetAuthor(ctx context.Context) (sdk.AccAddress, bool, error) {
	author, err := k.author.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return author, true, nil
}
