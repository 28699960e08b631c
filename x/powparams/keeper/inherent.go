package keeper

import (
	"bytes"
	"context"

	errorsmod "cosmossdk.io/errors"

	"github.com/cle-coin/cle/x/powparams/types"
)

// CreateInherent builds the author call from the block's inherent data. It
// returns nil when the producer supplied no author.
func (k Keeper) CreateInherent(data *types.InherentData) (*types.MsgSetAuthor, error) {
	raw, ok := data.Get(types.RewardsInherentIdentifier)
	if !ok {
		return nil, nil
	}
	author, err := types.DecodeAuthor(raw)
	if err != nil {
		return nil, err
	}
	return &types.MsgSetAuthor{Author: author}, nil
}

// CheckInherent verifies that msg carries the author found in data.
func (k Keeper) CheckInherent(msg *types.MsgSetAuthor, data *types.InherentData) error {
	expected, err := k.CreateInherent(data)
	if err != nil {
		return err
	}
	if expected == nil {
		return errorsmod.Wrap(types.ErrInvalidInherent, "no author in inherent data")
	}
	if !bytes.Equal(expected.Author, msg.Author) {
		return errorsmod.Wrapf(types.ErrInvalidInherent, "author %s does not match inherent data %s", msg.Author, expected.Author)
	}
	return nil
}

// ApplyAuthorInherent decodes raw and claims the author slot for the current
// block. Every error it returns is fatal to the block.
func (k Keeper) ApplyAuthorInherent(ctx context.Context, raw []byte) error {
	msg := &types.MsgSetAuthor{Author: raw}
	if err := msg.ValidateBasic(); err != nil {
		k.Logger(ctx).Error("rejecting block: undecodable author inherent", "err", err)
		return err
	}
	if _, err := NewMsgServerImpl(k).SetAuthor(ctx, msg); err != nil {
		k.Logger(ctx).Error("rejecting block: author inherent", "author", msg.Author.String(), "err", err)
		return err
	}
	return nil
}
