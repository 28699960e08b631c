package types

type MsgSetDifficultyResponse struct{}

type MsgSetRewardResponse struct{}

type MsgSetAuthorResponse struct{}
