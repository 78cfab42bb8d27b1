package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/zirafica98/neatcommit/language"
)

func newRulesCmd(a *app) *cobra.Command {
	var lang string
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the rules of the corpus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := a.loadConfig(".")
			if err != nil {
				return err
			}
			corpus, err := conf.LoadCorpus()
			if err != nil {
				return err
			}
			var filter language.Language
			if lang != "" {
				parsed, ok := language.Parse(lang)
				if !ok {
					return fmt.Errorf("unknown language %q", lang)
				}
				filter = parsed
			}

			tw := tabwriter.NewWriter(a.stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tLANGUAGE\tSEVERITY\tCATEGORY\tCWE")
			for _, r := range corpus.All() {
				if filter != "" && !r.AppliesTo(filter) {
					continue
				}
				cwe := r.CWE
				if cwe == "" {
					cwe = "-"
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.ID, r.Language, r.Severity, r.Category, cwe)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "\n%d rules, corpus %s\n", corpus.Len(), corpus.Version())
			return nil
		},
	}
	cmd.Flags().StringVar(&lang, "lang", "", "Only list the rules applying to this language")
	return cmd
}
