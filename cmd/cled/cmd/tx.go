package cmd

import (
	"encoding/json"
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/spf13/cobra"

	"github.com/cle-coin/cle/x/powparams/types"
)

func TxCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Build privileged powparams calls",
	}

	cmd.AddCommand(
		txSetDifficultyCmd(),
		txSetRewardCmd(),
	)

	return cmd
}

func txSetDifficultyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-difficulty [authority] [difficulty]",
		Short: "Build a call replacing the mining difficulty",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := types.ParseDifficulty(args[1])
			if err != nil {
				return err
			}
			return printCall(cmd, types.NewMsgSetDifficulty(args[0], d))
		},
	}
}

func txSetRewardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-reward [authority] [reward]",
		Short: "Build a call replacing the per-block author reward",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := types.ParseReward(args[1])
			if err != nil {
				return err
			}
			return printCall(cmd, types.NewMsgSetReward(args[0], r))
		},
	}
}

func printCall(cmd *cobra.Command, msg types.PrivilegedCall) error {
	if _, err := sdk.AccAddressFromBech32(msg.GetAuthority()); err != nil {
		return fmt.Errorf("invalid authority: %w", err)
	}
	if err := msg.ValidateBasic(); err != nil {
		return err
	}

	bz, err := json.MarshalIndent(map[string]any{"type": msg.Type(), "value": msg}, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
	return err
}
