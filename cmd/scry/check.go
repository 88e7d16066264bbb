package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scry"
)

var checkCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Match an anchored pattern at the start of a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pattern, err := cmd.Flags().GetString("pattern")
		if err != nil {
			return err
		}
		re, err := scry.ToRegexp(pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern: %w", err)
		}

		src, err := scry.SourceFromFile(args[0])
		if err != nil {
			return err
		}

		st := scry.NewParseStream(src)
		span, perr := st.ParseRegexp(re)
		if perr != nil {
			var parseErr *scry.Error
			if errors.As(perr, &parseErr) {
				renderDiag(cmd, parseErr.Diagnostic())
				os.Exit(1)
			}
			return perr
		}

		start := span.Start()
		fmt.Fprintf(cmd.OutOrStdout(), "%s:%d:%d: matched %q\n",
			args[0], start.Line+1, start.Col, span.SourceText().AsString())
		return nil
	},
}

func init() {
	checkCmd.Flags().String("pattern", `\S+`, "regular expression to match at offset 0")
}

func renderDiag(cmd *cobra.Command, diag scry.Diagnostic) {
	_ = diag.Render(cmd.ErrOrStderr(), scry.RenderOptions{Color: colorEnabled(cmd)})
}
