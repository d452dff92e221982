package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vasalvit/hpgl"
)

// CmdHpglabs builds the command that prints a file with relative moves made absolute.
func CmdHpglabs() *cobra.Command {
	return &cobra.Command{
		Use:           "hpglabs <file>",
		Short:         "Rewrite relative HP-GL pen moves as absolute moves",
		Long:          `Reads an HP-GL file with one command per line and prints it with every PR<dx>,<dy>; replaced by the absolute PA<x>,<y>; it reaches, starting from the origin.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := hpgl.ParseProgramFile(args[0])
			if err != nil {
				return err
			}
			return prog.WriteAbsolute(cmd.OutOrStdout())
		},
	}
}

func main() {
	logrus.SetOutput(os.Stderr)
	if err := CmdHpglabs().Execute(); err != nil {
		logrus.WithError(err).Error("conversion failed")
		os.Exit(1)
	}
}
