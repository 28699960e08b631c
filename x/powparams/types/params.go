package types

import (
	"encoding/json"
	"fmt"
	"strings"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	"github.com/holiman/uint256"
)

const (
	DefaultDifficulty uint64 = 1000
	DefaultReward     int64  = 1
)

// Params is a read-only snapshot of both governed values.
type Params struct {
	Difficulty uint256.Int `json:"-"`
	Reward     math.Int    `json:"-"`
}

func DefaultParams() Params {
	return Params{
		Difficulty: *uint256.NewInt(DefaultDifficulty),
		Reward:     math.NewInt(DefaultReward),
	}
}

func (p Params) Validate() error {
	if err := ValidateDifficulty(p.Difficulty); err != nil {
		return err
	}
	return ValidateReward(p.Reward)
}

func (p Params) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Difficulty string `json:"difficulty"`
		Reward     string `json:"reward"`
	}{
		Difficulty: p.Difficulty.Dec(),
		Reward:     p.Reward.String(),
	})
}

func (p Params) String() string {
	return fmt.Sprintf("difficulty=%s reward=%s", p.Difficulty.Dec(), p.Reward)
}

// ValidateDifficulty rejects zero. Any other 256-bit value is accepted.
func ValidateDifficulty(d uint256.Int) error {
	if d.IsZero() {
		return errorsmod.Wrap(ErrInvalidDifficulty, "difficulty must be positive")
	}
	return nil
}

func ValidateReward(r math.Int) error {
	if r.IsNil() {
		return errorsmod.Wrap(ErrInvalidReward, "reward is nil")
	}
	if r.IsNegative() {
		return errorsmod.Wrapf(ErrInvalidReward, "reward must not be negative: %s", r)
	}
	return nil
}

// ParseDifficulty parses a decimal or 0x-prefixed hex difficulty.
func ParseDifficulty(s string) (uint256.Int, error) {
	if s == "" {
		return uint256.Int{}, errorsmod.Wrap(ErrInvalidDifficulty, "empty difficulty")
	}
	var d uint256.Int
	if err := d.SetFromDecimal(s); err != nil {
		if herr := d.SetFromHex(s); herr != nil {
			return uint256.Int{}, errorsmod.Wrapf(ErrInvalidDifficulty, "%q: %s", s, err)
		}
	}
	if err := ValidateDifficulty(d); err != nil {
		return uint256.Int{}, err
	}
	return d, nil
}

// ParseReward parses a base-10 reward. Prefixes and digit separators are
// rejected.
func ParseReward(s string) (math.Int, error) {
	if !isDecimal(strings.TrimPrefix(s, "-")) {
		return math.Int{}, errorsmod.Wrapf(ErrInvalidReward, "%q is not a decimal integer", s)
	}
	r, ok := math.NewIntFromString(s)
	if !ok {
		return math.Int{}, errorsmod.Wrapf(ErrInvalidReward, "%q is not an integer", s)
	}
	if err := ValidateReward(r); err != nil {
		return math.Int{}, err
	}
	return r, nil
}

func isDecimal(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
