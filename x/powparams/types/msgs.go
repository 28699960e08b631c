package types

import (
	"errors"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/holiman/uint256"
)

const (
	TypeMsgSetDifficulty = "set_difficulty"
	TypeMsgSetReward     = "set_reward"
	TypeMsgSetAuthor     = "set_author"
)

// PrivilegedCall is a call only the governance authority may apply.
type PrivilegedCall interface {
	Type() string
	GetAuthority() string
	ValidateBasic() error
}

var (
	_ PrivilegedCall = (*MsgSetDifficulty)(nil)
	_ PrivilegedCall = (*MsgSetReward)(nil)
)

// MsgSetDifficulty replaces the proof-of-work difficulty.
type MsgSetDifficulty struct {
	Authority  string `json:"authority"`
	Difficulty string `json:"difficulty"`
}

func NewMsgSetDifficulty(authority string, difficulty uint256.Int) *MsgSetDifficulty {
	return &MsgSetDifficulty{Authority: authority, Difficulty: difficulty.Dec()}
}

func (msg MsgSetDifficulty) Route() string        { return ModuleName }
func (msg MsgSetDifficulty) Type() string         { return TypeMsgSetDifficulty }
func (msg MsgSetDifficulty) GetAuthority() string { return msg.Authority }
func (msg MsgSetDifficulty) ValidateBasic() error {
	if msg.Authority == "" {
		return errors.New("authority cannot be empty")
	}
	_, err := ParseDifficulty(msg.Difficulty)
	return err
}

// MsgSetReward replaces the per-block author reward.
type MsgSetReward struct {
	Authority string `json:"authority"`
	Reward    string `json:"reward"`
}

func NewMsgSetReward(authority string, reward math.Int) *MsgSetReward {
	return &MsgSetReward{Authority: authority, Reward: reward.String()}
}

func (msg MsgSetReward) Route() string        { return ModuleName }
func (msg MsgSetReward) Type() string         { return TypeMsgSetReward }
func (msg MsgSetReward) GetAuthority() string { return msg.Authority }
func (msg MsgSetReward) ValidateBasic() error {
	if msg.Authority == "" {
		return errors.New("authority cannot be empty")
	}
	_, err := ParseReward(msg.Reward)
	return err
}

// MsgSetAuthor is the unsigned inherent call recording the block author.
type MsgSetAuthor struct {
	Author sdk.AccAddress `json:"author"`
}

func (msg MsgSetAuthor) Route() string { return ModuleName }
func (msg MsgSetAuthor) Type() string  { return TypeMsgSetAuthor }
func (msg MsgSetAuthor) ValidateBasic() error {
	_, err := DecodeAuthor(msg.Author)
	return err
}
