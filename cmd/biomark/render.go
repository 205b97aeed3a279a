package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/biomark/bio"
	"github.com/iw2rmb/biomark/markup"
)

const (
	formatANSI     = "ansi"
	formatRunsJSON = "runs-json"
	formatRunsYAML = "runs-yaml"
)

// runDoc is the serialized form of a styled run.
type runDoc struct {
	Text   string `json:"text" yaml:"text"`
	Bold   bool   `json:"bold,omitempty" yaml:"bold,omitempty"`
	Italic bool   `json:"italic,omitempty" yaml:"italic,omitempty"`
	Color  string `json:"color,omitempty" yaml:"color,omitempty"`
}

func runDocs(runs []markup.Run) []runDoc {
	out := make([]runDoc, 0, len(runs))
	for _, r := range runs {
		out = append(out, runDoc{Text: r.Text, Bold: r.Bold, Italic: r.Italic, Color: r.Color})
	}
	return out
}

func newRenderCmd() *cobra.Command {
	var (
		plain  bool
		format string
	)
	cmd := &cobra.Command{
		Use:   "render [markup]",
		Short: "Print the styled preview of a bio",
		Long: `Print the styled preview of a bio. The markup is read from the argument,
or from stdin when no argument is given. Output is plain text when stdout is
not a terminal or --plain is set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readMarkup(cmd, args)
			if err != nil {
				return err
			}
			runs := markup.Render(src)
			out := cmd.OutOrStdout()

			switch format {
			case formatANSI:
				if plain || !isTerminal(out) {
					_, err = fmt.Fprintln(out, markup.Text(runs))
					return err
				}
				r := lipgloss.NewRenderer(out, termenv.WithColorCache(true))
				_, err = fmt.Fprintln(out, markup.NewStyler(r).Render(runs))
				return err
			case formatRunsJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(runDocs(runs))
			case formatRunsYAML:
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(runDocs(runs)); err != nil {
					return err
				}
				return enc.Close()
			default:
				return fmt.Errorf("unknown format %q (want %s, %s or %s)", format, formatANSI, formatRunsJSON, formatRunsYAML)
			}
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print text without styling")
	cmd.Flags().StringVarP(&format, "format", "f", formatANSI, "output format: ansi, runs-json or runs-yaml")
	return cmd
}

func newStripCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "strip [markup]",
		Short: "Print a bio without its style markers",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readMarkup(cmd, args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), markup.Strip(src))
			return err
		},
	}
}

func newCheckCmd() *cobra.Command {
	var fieldName string
	cmd := &cobra.Command{
		Use:   "check [markup]",
		Short: "Check a bio against its length limit",
		Long: `Check a bio against its length limit. Markers count toward the limit.
The command fails when the bio is empty or too long.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			field, err := bio.ParseField(fieldName)
			if err != nil {
				return err
			}
			src, err := readMarkup(cmd, args)
			if err != nil {
				return err
			}

			n, limit := utf8.RuneCountInString(src), field.Limit()
			visible := utf8.RuneCountInString(markup.Strip(src))
			fmt.Fprintf(cmd.OutOrStdout(), "%s bio: %d / %d characters (%d visible)\n", field, n, limit, visible)
			switch {
			case n == 0:
				return fmt.Errorf("%s bio is empty", field)
			case n > limit:
				return &bio.LengthError{Field: field, Cap: limit, Length: n}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&fieldName, "field", "short", "which limit to check: short or long")
	return cmd
}

// readMarkup returns the argument, or stdin without its final line break.
func readMarkup(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}
