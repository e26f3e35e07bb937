package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	definitions string
	logLevel    string
	verbose     bool
	metrics     bool

	sess *session
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "variants",
		Short:         "Variants resolves widget presentation options against declared axes",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if !flags.metrics || flags.sess == nil {
				return nil
			}
			return flags.sess.writeMetrics(cmd.OutOrStdout())
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.definitions, "definitions", "d", "", "Axis definition file (defaults to the built-in button axes)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: trace, debug, info, warn or error")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().BoolVar(&flags.metrics, "metrics", false, "Print registry metrics after the command completes")

	cmd.AddCommand(newAxesCmd(flags))
	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newDiffCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newPickCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
