// Package cmd wires the command-line surface of the pattern
// classifier.
package cmd

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/errgo.v1"

	"github.com/ARomppainen/wunderpahkina-vol9/internal/lineca"
	"github.com/ARomppainen/wunderpahkina-vol9/internal/runner"
)

var rootCmd = &cobra.Command{
	Use:   "wunderpahkina-vol9 [filename]",
	Short: "Classify line patterns of a one-dimensional cellular automaton",
	Long: `Reads a text file with one automaton configuration per line ('#' marks
a filled cell, any other character an empty one), evolves each line
independently, and prints one of blinking, gliding, vanishing or other
per line, in input order.`,
	RunE:          runRoot,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().Int("max-depth", lineca.DefaultMaxDepth, "simulation steps per line before reporting \"other\" (minimum 2)")
	rootCmd.Flags().Int("workers", runtime.NumCPU(), "number of concurrent classification workers")
	_ = viper.BindPFlag("max-depth", rootCmd.Flags().Lookup("max-depth"))
	_ = viper.BindPFlag("workers", rootCmd.Flags().Lookup("workers"))

	viper.SetEnvPrefix("WUNDERPAHKINA")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return cmd.Help()
	}
	filename := args[0]

	content, err := os.ReadFile(filename)
	if err != nil {
		return errgo.Notef(err, "cannot read %q", filename)
	}
	if !utf8.Valid(content) {
		return errgo.Newf("%s: not valid UTF-8 text", filename)
	}

	patterns, err := runner.Run(splitLines(string(content)), viper.GetInt("max-depth"), viper.GetInt("workers"))
	if err != nil {
		return errgo.Mask(err)
	}

	out := cmd.OutOrStdout()
	for _, p := range patterns {
		fmt.Fprintln(out, p)
	}
	return nil
}

// splitLines splits file content into lines. A trailing newline does
// not produce a final empty line, and "\r\n" endings are accepted;
// interior blank lines are kept (they encode the empty configuration).
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
