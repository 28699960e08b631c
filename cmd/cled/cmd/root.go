package cmd

import (
	"fmt"
	"os"

	"cosmossdk.io/log"
	"github.com/spf13/cobra"
)

var defaultHome = os.ExpandEnv("$HOME/.cled")

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cled",
		Short: "CLE proof-of-work chain tooling",
		Long: `cled works with the powparams module of a CLE chain.

It prints preset genesis for the dev and local chains, frames the block
author inherent a producer injects, and builds the privileged calls that
change the mining difficulty and the per-block author reward.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		ChainSpecCmd(),
		InherentCmd(),
		DecodeInherentErrorCmd(),
		TxCmd(),
	)

	rootCmd.PersistentFlags().String("home", defaultHome, "node home directory")

	return rootCmd
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func cmdLogger(cmd *cobra.Command) log.Logger {
	return log.NewLogger(cmd.ErrOrStderr()).With("cmd", cmd.Name())
}
