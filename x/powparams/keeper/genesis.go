package keeper

import (
	"context"

	"github.com/cle-coin/cle/x/powparams/types"
)

// InitGenesis stores the genesis difficulty and reward. The author slot starts
// empty.
func (k Keeper) InitGenesis(ctx context.Context, gs *types.GenesisState) error {
	p, err := gs.Params()
	if err != nil {
		return err
	}
	if err := k.difficulty.Set(ctx, p.Difficulty); err != nil {
		return err
	}
	if err := k.reward.Set(ctx, p.Reward); err != nil {
		return err
	}
	return k.author.Remove(ctx)
}

// ExportGenesis exports the module state for genesis
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	p, err := k.GetParams(ctx)
	if err != nil {
		return nil, err
	}
	return types.NewGenesisState(p), nil
}
