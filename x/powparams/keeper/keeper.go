package keeper

import (
	"bytes"
	"context"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/address"
	"cosmossdk.io/core/store"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/holiman/uint256"

	"github.com/cle-coin/cle/x/powparams/types"
)

type Keeper struct {
	storeService store.KVStoreService
	addressCodec address.Codec
	bankKeeper   types.BankKeeper

	// authority is the only origin allowed to change difficulty or reward,
	// usually the gov module account.
	authority string
	denom     string

	Schema collections.Schema

	// Written only by genesis, SetDifficulty, SetReward and the author inherent.
	difficulty collections.Item[uint256.Int]
	reward     collections.Item[math.Int]
	author     collections.Item[[]byte]
}

func NewKeeper(
	storeService store.KVStoreService,
	addressCodec address.Codec,
	bankKeeper types.BankKeeper,
	authority string,
	denom string,
) Keeper {
	if _, err := addressCodec.StringToBytes(authority); err != nil {
		panic(fmt.Errorf("invalid authority address %q: %w", authority, err))
	}
	if err := sdk.ValidateDenom(denom); err != nil {
		panic(fmt.Errorf("invalid reward denom: %w", err))
	}

	sb := collections.NewSchemaBuilder(storeService)
	k := Keeper{
		storeService: storeService,
		addressCodec: addressCodec,
		bankKeeper:   bankKeeper,
		authority:    authority,
		denom:        denom,
		difficulty:   collections.NewItem(sb, types.DifficultyKey, "difficulty", types.Uint256Value),
		reward:       collections.NewItem(sb, types.RewardKey, "reward", sdk.IntValue),
		author:       collections.NewItem(sb, types.AuthorKey, "author", collections.BytesValue),
	}
	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema
	return k
}

func (k Keeper) GetAuthority() string {
	return k.authority
}

func (k Keeper) Denom() string {
	return k.denom
}

func (k Keeper) AddressCodec() address.Codec {
	return k.addressCodec
}

func (k Keeper) Logger(ctx context.Context) log.Logger {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	return sdkCtx.Logger().With("module", "x/"+types.ModuleName)
}

// EnsureAuthority is the single authorization gate for every parameter
// change.
func (k Keeper) EnsureAuthority(origin string) error {
	want, err := k.addressCodec.StringToBytes(k.authority)
	if err != nil {
		return errorsmod.Wrap(types.ErrUnauthorized, err.Error())
	}
	got, err := k.addressCodec.StringToBytes(origin)
	if err != nil {
		return errorsmod.Wrapf(types.ErrUnauthorized, "invalid origin %q", origin)
	}
	if !bytes.Equal(want, got) {
		return errorsmod.Wrapf(types.ErrUnauthorized, "expected %s, got %s", k.authority, origin)
	}
	return nil
}
