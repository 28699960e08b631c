package testutil

import (
	"context"
	"fmt"
	"testing"

	"cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdktestutil "github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"

	"github.com/cle-coin/cle/x/powparams/keeper"
	"github.com/cle-coin/cle/x/powparams/types"
)

// BankKeeper is an in-memory issuance sink.
type BankKeeper struct {
	balances map[string]math.Int
	modules  map[string]math.Int
	supply   math.Int

	// MintErr and SendErr, when set, are returned by the matching call.
	MintErr error
	SendErr error
}

var _ types.BankKeeper = (*BankKeeper)(nil)

func NewBankKeeper() *BankKeeper {
	return &BankKeeper{
		balances: make(map[string]math.Int),
		modules:  make(map[string]math.Int),
		supply:   math.ZeroInt(),
	}
}

func (b *BankKeeper) MintCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	if b.MintErr != nil {
		return b.MintErr
	}
	for _, c := range amt {
		b.modules[moduleName+c.Denom] = b.module(moduleName, c.Denom).Add(c.Amount)
		b.supply = b.supply.Add(c.Amount)
	}
	return nil
}

func (b *BankKeeper) SendCoinsFromModuleToAccount(_ context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	if b.SendErr != nil {
		return b.SendErr
	}
	for _, c := range amt {
		have := b.module(senderModule, c.Denom)
		if have.LT(c.Amount) {
			return fmt.Errorf("module %s has %s%s, cannot send %s", senderModule, have, c.Denom, c)
		}
		b.modules[senderModule+c.Denom] = have.Sub(c.Amount)
		b.balances[recipientAddr.String()+c.Denom] = b.Balance(recipientAddr, c.Denom).Add(c.Amount)
	}
	return nil
}

func (b *BankKeeper) Balance(addr sdk.AccAddress, denom string) math.Int {
	if v, ok := b.balances[addr.String()+denom]; ok {
		return v
	}
	return math.ZeroInt()
}

func (b *BankKeeper) ModuleBalance(moduleName, denom string) math.Int {
	return b.module(moduleName, denom)
}

func (b *BankKeeper) Supply() math.Int { return b.supply }

// Accounts is the number of accounts holding a balance.
func (b *BankKeeper) Accounts() int { return len(b.balances) }

func (b *BankKeeper) module(name, denom string) math.Int {
	if v, ok := b.modules[name+denom]; ok {
		return v
	}
	return math.ZeroInt()
}

type Fixture struct {
	Ctx       sdk.Context
	Keeper    keeper.Keeper
	Bank      *BankKeeper
	Authority string
	StoreKey  *storetypes.KVStoreKey
}

// NewFixture returns a keeper over an in-memory store initialised with the
// default genesis.
func NewFixture(t testing.TB) *Fixture {
	t.Helper()

	key := storetypes.NewKVStoreKey(types.StoreKey)
	tkey := storetypes.NewTransientStoreKey("transient_" + types.ModuleName)
	ctx := sdktestutil.DefaultContext(key, tkey).WithBlockHeight(1)

	authority := authtypes.NewModuleAddress(govtypes.ModuleName).String()
	bank := NewBankKeeper()
	k := keeper.NewKeeper(
		runtime.NewKVStoreService(key),
		addresscodec.NewBech32Codec(sdk.Bech32MainPrefix),
		bank,
		authority,
		types.DefaultDenom,
	)
	require.NoError(t, k.InitGenesis(ctx, types.DefaultGenesis()))

	return &Fixture{Ctx: ctx, Keeper: k, Bank: bank, Authority: authority, StoreKey: key}
}

// NextBlock moves the context to the following height with a fresh event
// manager.
func (f *Fixture) NextBlock() {
	f.Ctx = f.Ctx.WithBlockHeight(f.Ctx.BlockHeight() + 1).WithEventManager(sdk.NewEventManager())
}

// EventsOfType returns the events of type typ emitted in the current block.
func (f *Fixture) EventsOfType(typ string) []sdk.Event {
	var out []sdk.Event
	for _, ev := range f.Ctx.EventManager().Events() {
		if ev.Type == typ {
			out = append(out, ev)
		}
	}
	return out
}

// Account returns a deterministic 20-byte address derived from name.
func Account(name string) sdk.AccAddress {
	addr := make([]byte, 20)
	copy(addr, name)
	return addr
}
