// Package proposal connects the author inherent to the block lifecycle.
//
// The producer's PrepareProposal places a single inherent tx, the 8-byte
// "rewards_" identifier followed by the author's account bytes, at index 0 of
// the block. ProcessProposal rejects blocks whose inherent is misplaced,
// duplicated or undecodable. PreBlocker applies the inherent before BeginBlock
// and before any other tx, so the author is recorded ahead of EndBlock's
// payout. Inherent txs are not sdk txs and fail tx decoding during delivery
// without affecting the block.
package proposal

import (
	"fmt"

	"cosmossdk.io/log"
	abci "github.com/cometbft/cometbft/abci/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/cle-coin/cle/x/powparams/keeper"
	"github.com/cle-coin/cle/x/powparams/types"
)

type ProposalHandler struct {
	logger   log.Logger
	keeper   keeper.Keeper
	provider types.InherentDataProvider
}

// NewProposalHandler returns handlers producing blocks authored by author. A
// nil author proposes blocks without an inherent.
func NewProposalHandler(logger log.Logger, k keeper.Keeper, author sdk.AccAddress) *ProposalHandler {
	return &ProposalHandler{
		logger:   logger.With("module", "x/"+types.ModuleName),
		keeper:   k,
		provider: types.InherentDataProvider{Author: author},
	}
}

func (h *ProposalHandler) PrepareProposal() sdk.PrepareProposalHandler {
	return func(ctx sdk.Context, req *abci.RequestPrepareProposal) (*abci.ResponsePrepareProposal, error) {
		var (
			txs  [][]byte
			size int64
		)

		if len(h.provider.Author) > 0 {
			data := types.NewInherentData()
			if err := h.provider.ProvideInherentData(data); err != nil {
				return nil, err
			}
			msg, err := h.keeper.CreateInherent(data)
			if err != nil {
				return nil, err
			}
			tx := types.EncodeInherentTx(h.provider.Identifier(), msg.Author)
			if int64(len(tx)) <= req.MaxTxBytes {
				txs = append(txs, tx)
				size += int64(len(tx))
			} else {
				h.logger.Error("author inherent exceeds max tx bytes, proposing without it",
					"size", len(tx), "max_tx_bytes", req.MaxTxBytes)
			}
		}

		for _, tx := range req.Txs {
			if _, ok := types.ParseInherentTx(tx); ok {
				h.logger.Debug("dropping inherent tx from mempool")
				continue
			}
			if size+int64(len(tx)) > req.MaxTxBytes {
				break
			}
			txs = append(txs, tx)
			size += int64(len(tx))
		}

		return &abci.ResponsePrepareProposal{Txs: txs}, nil
	}
}

func (h *ProposalHandler) ProcessProposal() sdk.ProcessProposalHandler {
	return func(ctx sdk.Context, req *abci.RequestProcessProposal) (*abci.ResponseProcessProposal, error) {
		if err := ValidateInherents(req.Txs); err != nil {
			h.logger.Error("rejecting proposal", "height", req.Height, "err", err)
			return &abci.ResponseProcessProposal{Status: abci.ResponseProcessProposal_REJECT}, nil
		}
		return &abci.ResponseProcessProposal{Status: abci.ResponseProcessProposal_ACCEPT}, nil
	}
}

// PreBlocker applies every inherent tx in block order. Any error rejects the
// whole block.
func (h *ProposalHandler) PreBlocker() sdk.PreBlocker {
	return func(ctx sdk.Context, req *abci.RequestFinalizeBlock) (*sdk.ResponsePreBlock, error) {
		for i, tx := range req.Txs {
			payload, ok := types.ParseInherentTx(tx)
			if !ok {
				continue
			}
			if err := h.keeper.ApplyAuthorInherent(ctx, payload); err != nil {
				return nil, fmt.Errorf("inherent tx %d at height %d: %w", i, req.Height, err)
			}
		}
		return &sdk.ResponsePreBlock{}, nil
	}
}

// ValidateInherents checks that txs hold at most one inherent, at index 0,
// with a decodable author.
func ValidateInherents(txs [][]byte) error {
	seen := false
	for i, tx := range txs {
		payload, ok := types.ParseInherentTx(tx)
		if !ok {
			continue
		}
		if seen {
			return fmt.Errorf("duplicate author inherent at index %d: %w", i, types.ErrAlreadyClaimed)
		}
		if i != 0 {
			return fmt.Errorf("author inherent at index %d: %w", i, types.ErrInvalidInherent)
		}
		if _, err := types.DecodeAuthor(payload); err != nil {
			return err
		}
		seen = true
	}
	return nil
}
