package keeper

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cle-coin/cle/x/powparams/types"
)

type QueryServer struct {
	keeper Keeper
}

func NewQueryServerImpl(k Keeper) *QueryServer {
	return &QueryServer{keeper: k}
}

// Params returns both governed values
func (qs *QueryServer) Params(ctx context.Context, req *types.QueryParamsRequest) (*types.QueryParamsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	p, err := qs.keeper.GetParams(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryParamsResponse{Params: p}, nil
}

func (qs *QueryServer) Difficulty(ctx context.Context, req *types.QueryDifficultyRequest) (*types.QueryDifficultyResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	d, err := qs.keeper.GetDifficulty(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryDifficultyResponse{Difficulty: d.Dec()}, nil
}

func (qs *QueryServer) Reward(ctx context.Context, req *types.QueryRewardRequest) (*types.QueryRewardResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	r, err := qs.keeper.GetReward(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryRewardResponse{Reward: r.String(), Denom: qs.keeper.Denom()}, nil
}

// Author returns the author recorded for the block being executed, if any.
func (qs *QueryServer) Author(ctx context.Context, req *types.QueryAuthorRequest) (*types.QueryAuthorResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "empty request")
	}
	author, ok, err := qs.keeper.GetAuthor(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	if !ok {
		return &types.QueryAuthorResponse{}, nil
	}
	s, err := qs.keeper.AddressCodec().BytesToString(author)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryAuthorResponse{Author: s}, nil
}
