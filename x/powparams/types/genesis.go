package types

import (
	"encoding/json"
	"fmt"

	errorsmod "cosmossdk.io/errors"
)

type GenesisState struct {
	Difficulty string `json:"difficulty" yaml:"difficulty"`
	Reward     string `json:"reward" yaml:"reward"`
}

func DefaultGenesis() *GenesisState {
	return NewGenesisState(DefaultParams())
}

func NewGenesisState(p Params) *GenesisState {
	return &GenesisState{
		Difficulty: p.Difficulty.Dec(),
		Reward:     p.Reward.String(),
	}
}

// Params parses the genesis values.
func (gs GenesisState) Params() (Params, error) {
	d, err := ParseDifficulty(gs.Difficulty)
	if err != nil {
		return Params{}, errorsmod.Wrap(ErrInvalidGenesis, err.Error())
	}
	r, err := ParseReward(gs.Reward)
	if err != nil {
		return Params{}, errorsmod.Wrap(ErrInvalidGenesis, err.Error())
	}
	p := Params{Difficulty: d, Reward: r}
	if err := p.Validate(); err != nil {
		return Params{}, errorsmod.Wrap(ErrInvalidGenesis, err.Error())
	}
	return p, nil
}

func (gs GenesisState) Validate() error {
	_, err := gs.Params()
	return err
}

func ParseGenesis(bz json.RawMessage) (*GenesisState, error) {
	var gs GenesisState
	if err := json.Unmarshal(bz, &gs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s genesis state: %w", ModuleName, err)
	}
	return &gs, nil
}

// TokenProperties describes the native token for chain-spec output.
type TokenProperties struct {
	Symbol   string `json:"tokenSymbol" yaml:"symbol"`
	Decimals uint32 `json:"tokenDecimals" yaml:"decimals"`
}

func DefaultTokenProperties() TokenProperties {
	return TokenProperties{Symbol: "CLE", Decimals: 12}
}

const (
	ChainDev   = "dev"
	ChainLocal = "local"
)

// PresetGenesis returns the module genesis for a named chain. The empty name
// selects the local testnet.
func PresetGenesis(name string) (*GenesisState, error) {
	switch name {
	case ChainDev, ChainLocal, "":
		return &GenesisState{Difficulty: "5000", Reward: "100"}, nil
	default:
		return nil, fmt.Errorf("unknown chain %q", name)
	}
}
