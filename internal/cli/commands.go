package cli

import (
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func lookupCmd(opts *options, e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup WORD",
		Short: "Fetch a word's page and print its entries",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := e.service()
			entries, err := svc.Lookup(cmd.Context(), args[0], opts.language)
			if err != nil {
				return err
			}
			return renderEntries(cmd.OutOrStdout(), opts.format, args[0], svc.ResolveLanguage(opts.language), entries)
		},
	}
}

func translationsCmd(opts *options, e *env) *cobra.Command {
	var langs string

	cmd := &cobra.Command{
		Use:   "translations WORD",
		Short: "Print a word's translations into the given language codes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codes := strings.Split(langs, ",")
			summary, err := e.service().Translations(cmd.Context(), args[0], codes)
			if err != nil {
				return err
			}
			return renderTranslations(cmd.OutOrStdout(), opts.format, normalizedOrder(codes), summary)
		},
	}

	cmd.Flags().StringVar(&langs, "langs", "", "comma-separated language codes, e.g. de,fr")
	_ = cmd.MarkFlagRequired("langs")
	return cmd
}

func parseCmd(opts *options, e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "parse FILE",
		Short: "Parse a saved page (use - for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			entries, err := e.parser.Parse(r, opts.language)
			if err != nil {
				return err
			}

			language := opts.language
			if strings.TrimSpace(language) == "" {
				language = e.parser.DefaultLanguage()
			}
			return renderEntries(cmd.OutOrStdout(), opts.format, args[0], strings.ToLower(strings.TrimSpace(language)), entries)
		},
	}
}

// normalizedOrder returns the codes in the order the user gave them, trimmed
// and without blanks or repeats.
func normalizedOrder(codes []string) []string {
	seen := make(map[string]struct{}, len(codes))
	out := make([]string, 0, len(codes))
	for _, c := range codes {
		c = strings.TrimSpace(c)
		if _, dup := seen[c]; dup || c == "" {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
