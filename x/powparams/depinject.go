package powparams

import (
	"fmt"

	"cosmossdk.io/core/address"
	"cosmossdk.io/core/appmodule"
	"cosmossdk.io/core/store"
	"cosmossdk.io/depinject"

	"github.com/cle-coin/cle/x/powparams/keeper"
	"github.com/cle-coin/cle/x/powparams/types"
)

type ModuleInputs struct {
	depinject.In

	Config       types.ModuleConfig
	StoreService store.KVStoreService
	AddressCodec address.Codec
	BankKeeper   types.BankKeeper
}

type ModuleOutputs struct {
	depinject.Out

	PowParamsKeeper keeper.Keeper
	Module          appmodule.AppModule
}

// ProvideModule builds the keeper and app module. An empty denom falls back to
// DefaultDenom. The authority must decode with the injected address codec.
func ProvideModule(in ModuleInputs) (ModuleOutputs, error) {
	cfg := in.Config
	if cfg.Denom == "" {
		cfg.Denom = types.DefaultDenom
	}
	if err := cfg.Validate(); err != nil {
		return ModuleOutputs{}, err
	}
	if _, err := in.AddressCodec.StringToBytes(cfg.Authority); err != nil {
		return ModuleOutputs{}, fmt.Errorf("invalid authority address %q: %w", cfg.Authority, err)
	}

	k := keeper.NewKeeper(in.StoreService, in.AddressCodec, in.BankKeeper, cfg.Authority, cfg.Denom)
	return ModuleOutputs{PowParamsKeeper: k, Module: NewAppModule(k)}, nil
}
