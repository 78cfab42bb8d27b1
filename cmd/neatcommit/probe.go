package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gookit/color"
	"github.com/spf13/cobra"

	"github.com/zirafica98/neatcommit"
	"github.com/zirafica98/neatcommit/internal/client"
)

func newProbeCmd(a *app) *cobra.Command {
	var (
		url     string
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "probe files...",
		Short: "Post files to a running server and print the severity counts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c := client.New(url, timeout, a.logger)
			failed := 0
			for _, path := range args {
				if !a.probe(cmd, c, path) {
					failed++
				}
			}
			fmt.Fprintf(a.stdout, "Passed: %d/%d\n", len(args)-failed, len(args))
			if failed > 0 {
				return &exitCodeError{code: exitGate, err: fmt.Errorf("%d file(s) failed", failed)}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&url, "url", client.DefaultURL, "Base URL of the analysis server")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "Timeout of each request")
	return cmd
}

func (a *app) probe(cmd *cobra.Command, c *client.Client, path string) bool {
	code, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(a.stdout, "%s %s - %v\n\n", color.Danger.Render("FAIL"), path, err)
		return false
	}
	res, err := c.Analyze(cmd.Context(), neatcommit.Request{Code: string(code), Filename: filepath.Base(path)})
	if err != nil {
		fmt.Fprintf(a.stdout, "%s %s - %v\n\n", color.Danger.Render("FAIL"), path, err)
		return false
	}
	if !res.IsSupported {
		fmt.Fprintf(a.stdout, "%s %s - not supported\n\n", color.Danger.Render("FAIL"), path)
		return false
	}
	fmt.Fprintf(a.stdout, "%s %s\n", color.Success.Render("OK"), path)
	fmt.Fprintf(a.stdout, "   Language: %s\n", res.Language)
	fmt.Fprintf(a.stdout, "   Total Issues: %d\n", res.TotalIssues)
	fmt.Fprintf(a.stdout, "   %s %d\n", color.Red.Render("Critical:"), res.CriticalIssues)
	fmt.Fprintf(a.stdout, "   %s %d\n", color.Magenta.Render("High:"), res.HighIssues)
	fmt.Fprintf(a.stdout, "   %s %d\n", color.Yellow.Render("Medium:"), res.MediumIssues)
	fmt.Fprintf(a.stdout, "   %s %d\n", color.Green.Render("Low:"), res.LowIssues)
	fmt.Fprintf(a.stdout, "   Score: %d/%d\n\n", res.Score, neatcommit.MaxScore)
	return true
}
