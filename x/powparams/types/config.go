package types

import (
	"errors"
	"fmt"
	"os"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"gopkg.in/yaml.v3"
)

// ModuleConfig is the static wiring of the module.
type ModuleConfig struct {
	// Authority is the bech32 address allowed to change parameters.
	Authority string `yaml:"authority"`
	Denom     string `yaml:"denom"`
}

func (c ModuleConfig) Validate() error {
	if c.Authority == "" {
		return errors.New("authority cannot be empty")
	}
	if err := sdk.ValidateDenom(c.Denom); err != nil {
		return fmt.Errorf("invalid reward denom: %w", err)
	}
	return nil
}

// ParamsFile is the YAML document accepted by `cled chain-spec --params-file`.
type ParamsFile struct {
	Chain   string          `yaml:"chain"`
	Genesis GenesisState    `yaml:"genesis"`
	Token   TokenProperties `yaml:"token"`
}

// LoadParamsFile reads a params file and fills unset values from the named
// chain preset.
func LoadParamsFile(path string) (*ParamsFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var pf ParamsFile
	if err := yaml.Unmarshal(raw, &pf); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	preset, err := PresetGenesis(pf.Chain)
	if err != nil {
		return nil, err
	}
	if pf.Genesis.Difficulty == "" {
		pf.Genesis.Difficulty = preset.Difficulty
	}
	if pf.Genesis.Reward == "" {
		pf.Genesis.Reward = preset.Reward
	}
	if pf.Token.Symbol == "" {
		pf.Token = DefaultTokenProperties()
	}
	if err := pf.Genesis.Validate(); err != nil {
		return nil, err
	}
	return &pf, nil
}
