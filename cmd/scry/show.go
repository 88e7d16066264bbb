package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"scry"
)

var showCmd = &cobra.Command{
	Use:   "show FILE START END",
	Short: "Render a diagnostic block for a character range of a file",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid start offset %q: %w", args[1], err)
		}
		end, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid end offset %q: %w", args[2], err)
		}

		src, err := scry.SourceFromFile(args[0])
		if err != nil {
			return err
		}

		message, _ := cmd.Flags().GetString("message")
		severity, err := parseSeverity(cmd)
		if err != nil {
			return err
		}

		diag := scry.NewDiagnostic(severity, scry.NewSpan(src, start, end), message)
		return diag.Render(cmd.OutOrStdout(), scry.RenderOptions{Color: colorEnabled(cmd)})
	},
}

func init() {
	showCmd.Flags().String("message", "flagged region", "diagnostic message")
	showCmd.Flags().String("severity", "note", "diagnostic severity (error|warning|note|help)")
}

func parseSeverity(cmd *cobra.Command) (scry.Severity, error) {
	name, _ := cmd.Flags().GetString("severity")
	switch name {
	case "error":
		return scry.SevError, nil
	case "warning":
		return scry.SevWarning, nil
	case "note":
		return scry.SevNote, nil
	case "help":
		return scry.SevHelp, nil
	}
	return 0, errors.New("severity must be one of error|warning|note|help")
}
