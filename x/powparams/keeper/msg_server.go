package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	"github.com/cle-coin/cle/x/powparams/types"
)

type MsgServer struct {
	keeper Keeper
}

func NewMsgServerImpl(k Keeper) *MsgServer {
	return &MsgServer{keeper: k}
}

// SetDifficulty applies a governance difficulty change.
func (ms *MsgServer) SetDifficulty(ctx context.Context, msg *types.MsgSetDifficulty) (*types.MsgSetDifficultyResponse, error) {
	if err := ms.keeper.EnsureAuthority(msg.Authority); err != nil {
		return nil, err
	}
	d, err := types.ParseDifficulty(msg.Difficulty)
	if err != nil {
		return nil, err
	}
	if err := ms.keeper.SetDifficulty(ctx, msg.Authority, d); err != nil {
		return nil, err
	}
	return &types.MsgSetDifficultyResponse{}, nil
}

// SetReward applies a governance reward change.
func (ms *MsgServer) SetReward(ctx context.Context, msg *types.MsgSetReward) (*types.MsgSetRewardResponse, error) {
	if err := ms.keeper.EnsureAuthority(msg.Authority); err != nil {
		return nil, err
	}
	r, err := types.ParseReward(msg.Reward)
	if err != nil {
		return nil, err
	}
	if err := ms.keeper.SetReward(ctx, msg.Authority, r); err != nil {
		return nil, err
	}
	return &types.MsgSetRewardResponse{}, nil
}

// SetAuthor applies the author inherent call. It carries no signer.
func (ms *MsgServer) SetAuthor(ctx context.Context, msg *types.MsgSetAuthor) (*types.MsgSetAuthorResponse, error) {
	author, err := types.DecodeAuthor(msg.Author)
	if err != nil {
		return nil, err
	}
	if err := ms.keeper.claimAuthor(ctx, author); err != nil {
		return nil, err
	}
	return &types.MsgSetAuthorResponse{}, nil
}

// ApplyPrivilegedCall routes a governance call to its handler. This is the
// only path by which difficulty and reward change.
func (k Keeper) ApplyPrivilegedCall(ctx context.Context, call types.PrivilegedCall) error {
	ms := NewMsgServerImpl(k)
	var err error
	switch msg := call.(type) {
	case *types.MsgSetDifficulty:
		if msg == nil {
			return errorsmod.Wrap(types.ErrInvalidCall, "nil set_difficulty call")
		}
		_, err = ms.SetDifficulty(ctx, msg)
	case *types.MsgSetReward:
		if msg == nil {
			return errorsmod.Wrap(types.ErrInvalidCall, "nil set_reward call")
		}
		_, err = ms.SetReward(ctx, msg)
	case nil:
		return errorsmod.Wrap(types.ErrInvalidCall, "nil call")
	default:
		return errorsmod.Wrapf(types.ErrInvalidCall, "unrecognized %s call %T", types.ModuleName, call)
	}
	if err != nil {
		k.Logger(ctx).Debug("privileged call rejected", "call", call.Type(), "err", err)
	}
	return err
}
