package types

import "cosmossdk.io/collections"

const (
	ModuleName = "powparams"
	StoreKey   = ModuleName

	// DefaultDenom is the denom block rewards are minted in.
	DefaultDenom = "ucle"
)

var (
	DifficultyKey = collections.NewPrefix(0)
	RewardKey     = collections.NewPrefix(1)
	// AuthorKey holds the current block's author between the inherent and EndBlock.
	AuthorKey = collections.NewPrefix(2)
)

const (
	EventTypeDifficultyChanged = "difficulty_changed"
	EventTypeRewardChanged     = "reward_changed"
	EventTypeAuthorRewarded    = "author_rewarded"

	AttributeKeyDifficulty = "difficulty"
	AttributeKeyReward     = "reward"
	AttributeKeyAuthor     = "author"
	AttributeKeyAmount     = "amount"
)
