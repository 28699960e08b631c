package types

type QueryParamsRequest struct{}

type QueryParamsResponse struct {
	Params Params `json:"params"`
}

type QueryDifficultyRequest struct{}

type QueryDifficultyResponse struct {
	Difficulty string `json:"difficulty"`
}

type QueryRewardRequest struct{}

type QueryRewardResponse struct {
	Reward string `json:"reward"`
	Denom  string `json:"denom,omitempty"`
}

type QueryAuthorRequest struct{}

// QueryAuthorResponse has an empty Author when no author is recorded.
type QueryAuthorResponse struct {
	Author string `json:"author"`
}
