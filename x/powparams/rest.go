package powparams

import (
	"encoding/json"
	"net/http"

	"github.com/cosmos/cosmos-sdk/client"
	sdk "github.com/cosmos/cosmos-sdk/types"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/runtime"

	"github.com/cle-coin/cle/x/powparams/types"
)

// StoreQuerier reads a raw key from the module store. A nil result means the
// key is absent.
type StoreQuerier func(key []byte) ([]byte, error)

func ClientStoreQuerier(clientCtx client.Context) StoreQuerier {
	return func(key []byte) ([]byte, error) {
		bz, _, err := clientCtx.QueryStore(key, types.StoreKey)
		return bz, err
	}
}

var (
	patternDifficulty = gwruntime.MustPattern(gwruntime.NewPattern(1, []int{2, 0, 2, 1, 2, 2, 2, 3}, []string{"cle", "powparams", "v1", "difficulty"}, "", gwruntime.AssumeColonVerbOpt(false)))
	patternReward     = gwruntime.MustPattern(gwruntime.NewPattern(1, []int{2, 0, 2, 1, 2, 2, 2, 3}, []string{"cle", "powparams", "v1", "reward"}, "", gwruntime.AssumeColonVerbOpt(false)))
	patternAuthor     = gwruntime.MustPattern(gwruntime.NewPattern(1, []int{2, 0, 2, 1, 2, 2, 2, 3}, []string{"cle", "powparams", "v1", "author"}, "", gwruntime.AssumeColonVerbOpt(false)))
)

// RegisterRESTRoutes serves the governed values under /cle/powparams/v1.
// Rewards are reported in denom.
func RegisterRESTRoutes(mux *gwruntime.ServeMux, q StoreQuerier, denom string) {
	mux.Handle(http.MethodGet, patternDifficulty, func(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
		bz, err := q(types.DifficultyKey.Bytes())
		if err != nil {
			writeError(w, err)
			return
		}
		d := types.DefaultParams().Difficulty
		if len(bz) > 0 {
			if d, err = types.Uint256Value.Decode(bz); err != nil {
				writeError(w, err)
				return
			}
		}
		writeJSON(w, types.QueryDifficultyResponse{Difficulty: d.Dec()})
	})

	mux.Handle(http.MethodGet, patternReward, func(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
		bz, err := q(types.RewardKey.Bytes())
		if err != nil {
			writeError(w, err)
			return
		}
		r := types.DefaultParams().Reward
		if len(bz) > 0 {
			if r, err = sdk.IntValue.Decode(bz); err != nil {
				writeError(w, err)
				return
			}
		}
		writeJSON(w, types.QueryRewardResponse{Reward: r.String(), Denom: denom})
	})

	mux.Handle(http.MethodGet, patternAuthor, func(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
		bz, err := q(types.AuthorKey.Bytes())
		if err != nil {
			writeError(w, err)
			return
		}
		var res types.QueryAuthorResponse
		if len(bz) > 0 {
			res.Author = sdk.AccAddress(bz).String()
		}
		writeJSON(w, res)
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
