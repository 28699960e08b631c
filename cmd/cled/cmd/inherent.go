package cmd

import (
	"encoding/hex"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"

	"github.com/cle-coin/cle/x/powparams/types"
)

func InherentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inherent [author]",
		Short: "Print the hex author inherent tx for a bech32 address",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			author, err := sdk.AccAddressFromBech32(args[0])
			if err != nil {
				return fmt.Errorf("invalid author: %w", err)
			}

			data := types.NewInherentData()
			provider := types.InherentDataProvider{Author: author}
			if err := provider.ProvideInherentData(data); err != nil {
				return err
			}
			payload, _ := data.Get(provider.Identifier())
			if _, err := types.DecodeAuthor(payload); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(types.EncodeInherentTx(provider.Identifier(), payload)))
			return err
		},
	}
}

func DecodeInherentErrorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decode-inherent-error [hex]",
		Short: "Render an encoded rewards inherent error",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bz, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("invalid hex: %w", err)
			}
			msg, ok := types.InherentDataProvider{}.ErrorToString(bz)
			if !ok {
				return fmt.Errorf("not a %s inherent error", types.RewardsInherentIdentifier)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), msg)
			return err
		},
	}
}
