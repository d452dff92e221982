package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vasalvit/hpgl"
)

// CmdHpglrel builds the command that prints a file with absolute moves made relative.
func CmdHpglrel() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "hpglrel <file>",
		Short:         "Rewrite absolute HP-GL pen moves as relative moves",
		Long:          `Reads an HP-GL file with one command per line and prints it with every PA<x>,<y>; replaced by the equivalent PR<dx>,<dy>;, starting from the origin.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			prog, err := hpgl.ParseProgramFile(args[0])
			if err != nil {
				return err
			}

			rw := hpgl.NewRewriter()
			rw.Log = logrus.StandardLogger()
			return prog.WriteRelative(cmd.OutOrStdout(), rw)
		},
	}
	return cmd
}

func main() {
	logrus.SetOutput(os.Stderr)
	if err := CmdHpglrel().Execute(); err != nil {
		logrus.WithError(err).Error("conversion failed")
		os.Exit(1)
	}
}
