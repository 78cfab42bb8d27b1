package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zirafica98/neatcommit"
	"github.com/zirafica98/neatcommit/internal/api"
	"github.com/zirafica98/neatcommit/language"
	"github.com/zirafica98/neatcommit/report"
)

var skippedDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	"vendor":       true,
}

type scanOptions struct {
	format       string
	output       string
	include      string
	exclude      string
	excludeRules string
	ignore       neatcommit.FileList
	ignoreNosec  bool
	noColor      bool
	quiet        bool
	concurrency  int
}

func newScanCmd(a *app) *cobra.Command {
	opts := &scanOptions{}
	cmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Scan files and directories for security issues",
		Long: `Scan walks the given files and directories, analyzes every source file of a
supported language and writes a report. The exit code is 1 when the quality
gate fails and 2 on errors.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				args = []string{"."}
			}
			if err := a.scan(cmd, args, opts); err != nil {
				var exit *exitCodeError
				if errors.As(err, &exit) {
					return err
				}
				return &exitCodeError{code: exitError, err: err}
			}
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&opts.format, "fmt", "text", "Set output format. Valid options are: "+strings.Join(report.Formats, ", "))
	flags.StringVar(&opts.output, "out", "", "Set output file for results")
	flags.StringVar(&opts.include, "include", "", "Comma separated list of rules IDs to include (see the rules command)")
	flags.StringVar(&opts.exclude, "exclude", "", "Comma separated list of rules IDs to exclude (see the rules command)")
	flags.StringVar(&opts.excludeRules, "exclude-rules", "", `Exclude rules for paths, e.g. "test/.*:hardcoded-password;scripts/.*:*"`)
	flags.Var(&opts.ignore, "ignore", "Glob of paths to skip, may be repeated")
	flags.BoolVar(&opts.ignoreNosec, "nosec", false, "Ignores #nosec comments when set")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable color in the text report")
	flags.BoolVar(&opts.quiet, "quiet", false, "Only show output when issues or errors are found")
	flags.IntVar(&opts.concurrency, "concurrency", 0, "Number of files analyzed in parallel")
	return cmd
}

func (a *app) scan(cmd *cobra.Command, paths []string, opts *scanOptions) error {
	conf, err := a.loadConfig(paths[0])
	if err != nil {
		return err
	}
	if err := opts.apply(&conf); err != nil {
		return err
	}
	analyzer, err := a.newAnalyzer(conf)
	if err != nil {
		return err
	}

	reqs, fileErrors, err := collectRequests(paths, analyzer, a.logger)
	if err != nil {
		return err
	}
	a.logger.Info("scanning files", zap.Int("files", len(reqs)), zap.String("corpus", analyzer.Corpus().Version()))
	results, err := analyzer.AnalyzeBatch(cmd.Context(), reqs)
	if err != nil {
		return err
	}

	prepareVersionInfo()
	info := neatcommit.NewReportInfo(results, fileErrors).WithVersion(Version)
	if !opts.quiet || len(info.Issues) > 0 || len(info.Errors) > 0 {
		if err := a.writeReport(info, paths, opts); err != nil {
			return err
		}
	}

	if failures := info.Gate(conf.QualityGate); len(failures) > 0 {
		for _, f := range failures {
			fmt.Fprintf(a.stderr, "Quality gate failed: %s\n", f)
		}
		return &exitCodeError{code: exitGate, err: errors.New("quality gate failed")}
	}
	return nil
}

func (o *scanOptions) apply(conf *neatcommit.Config) error {
	if ids := splitIDs(o.include); len(ids) > 0 {
		conf.Rules.Include = ids
	}
	conf.Rules.Disable = append(conf.Rules.Disable, splitIDs(o.exclude)...)
	conf.Ignore.Paths = append(conf.Ignore.Paths, o.ignore.Patterns()...)
	if o.excludeRules != "" {
		cli, err := neatcommit.ParseCLIExcludeRules(o.excludeRules)
		if err != nil {
			return err
		}
		conf.ExcludeRules = neatcommit.MergeExcludeRules(conf.ExcludeRules, cli)
	}
	if o.ignoreNosec {
		conf.Analysis.IgnoreNosec = true
	}
	if o.concurrency > 0 {
		conf.Analysis.Concurrency = o.concurrency
	}
	return conf.Validate()
}

func (a *app) writeReport(info *neatcommit.ReportInfo, rootPaths []string, opts *scanOptions) error {
	var w io.Writer = a.stdout
	color := !opts.noColor
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("creating report: %w", err)
		}
		defer f.Close()
		w = f
		color = false
	}
	roots := make([]string, 0, len(rootPaths))
	for _, p := range rootPaths {
		if p = filepath.ToSlash(filepath.Clean(p)); p != "." {
			roots = append(roots, p)
		}
	}
	return report.CreateReport(w, opts.format, color, roots, info)
}

// collectRequests reads every file selected by paths. Directories are walked
// and only files with a known extension are kept; files named explicitly are
// always analyzed. Unreadable content is recorded per file instead of
// failing the scan.
func collectRequests(paths []string, analyzer *neatcommit.Analyzer, logger *zap.Logger) ([]neatcommit.Request, map[string][]neatcommit.Error, error) {
	var reqs []neatcommit.Request
	fileErrors := map[string][]neatcommit.Error{}

	add := func(path string) {
		name := filepath.ToSlash(path)
		req, reason := readRequest(path)
		if reason != "" {
			logger.Warn("file skipped", zap.String("filename", name), zap.String("reason", reason))
			fileErrors[name] = append(fileErrors[name], *neatcommit.NewError(0, 0, reason))
			return
		}
		reqs = append(reqs, req)
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, nil, err
		}
		if !info.IsDir() {
			add(root)
			continue
		}
		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				rel = path
			}
			if d.IsDir() {
				if path != root && (skippedDirs[d.Name()] || analyzer.Ignored(rel)) {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() || analyzer.Ignored(rel) {
				return nil
			}
			if _, known := language.FromExtension(d.Name()); !known {
				return nil
			}
			add(path)
			return nil
		})
		if err != nil {
			return nil, nil, err
		}
	}
	return reqs, fileErrors, nil
}

func readRequest(path string) (neatcommit.Request, string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return neatcommit.Request{}, err.Error()
	}
	if len(data) > api.MaxBodyBytes {
		return neatcommit.Request{}, fmt.Sprintf("file is larger than %d bytes", api.MaxBodyBytes)
	}
	if !utf8.Valid(data) {
		return neatcommit.Request{}, "file is not valid UTF-8"
	}
	return neatcommit.Request{Code: string(data), Filename: filepath.ToSlash(path)}, ""
}

func splitIDs(list string) []string {
	var ids []string
	for _, id := range strings.Split(list, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
