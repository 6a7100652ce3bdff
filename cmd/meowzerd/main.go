// Command meowzerd runs a small demo colony of cat agents against an
// in-memory Interaction Registry and persistence Store, printing a roster
// to the console and, when --output is set, writing a decisions.csv trace.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	levelVar := new(slog.LevelVar)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: levelVar})))

	root := &cobra.Command{
		Use:   "meowzerd",
		Short: "meowzerd runs a demo colony of autonomous cat agents",
	}
	root.PersistentFlags().VarP(&logLevelFlag{level: levelVar}, "log-level", "l", "log level: debug, info, warn, or error")
	root.AddCommand(newRunCmd())
	root.AddCommand(newPersonalitiesCmd())
	return root
}
