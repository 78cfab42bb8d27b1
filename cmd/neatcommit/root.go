package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zirafica98/neatcommit"
)

const (
	exitOK    = 0
	exitGate  = 1
	exitError = 2
)

// exitCodeError carries a process exit code through cobra.
type exitCodeError struct {
	code int
	err  error
}

func (e *exitCodeError) Error() string {
	return e.err.Error()
}

func (e *exitCodeError) Unwrap() error {
	return e.err
}

type app struct {
	stdout     io.Writer
	stderr     io.Writer
	verbose    bool
	configPath string
	logger     *zap.Logger
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "neatcommit [command]",
		Short:         "Static security analysis for source snippets and repositories",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.logger = newLogger(a.stderr, a.verbose)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			_ = a.logger.Sync()
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Log debug messages")
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to a "+neatcommit.ConfigFile+" file")

	root.AddCommand(
		newScanCmd(a),
		newServeCmd(a),
		newProbeCmd(a),
		newRulesCmd(a),
		newVersionCmd(a),
	)
	return root
}

func run(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr, logger: zap.NewNop()}
	root := newRootCmd(a)
	root.SetArgs(args)
	err := root.Execute()
	if err == nil {
		return exitOK
	}
	var exit *exitCodeError
	if errors.As(err, &exit) {
		if exit.code != exitGate {
			fmt.Fprintf(stderr, "Error: %v\n", exit.err)
		}
		return exit.code
	}
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return exitError
}

func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(w), level)
	return zap.New(core)
}

// loadConfig reads the file given with --config or, failing that, the
// config file at the root of the first scanned path. A missing default file
// yields the default configuration.
func (a *app) loadConfig(root string) (neatcommit.Config, error) {
	conf := neatcommit.NewConfig()
	path := a.configPath
	if path == "" {
		if info, err := os.Stat(root); err == nil && !info.IsDir() {
			root = filepath.Dir(root)
		}
		path = filepath.Join(root, neatcommit.ConfigFile)
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return conf, nil
		}
	}
	f, err := os.Open(path)
	if err != nil {
		return conf, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()
	if _, err := conf.ReadFrom(f); err != nil {
		return conf, fmt.Errorf("%s: %w", path, err)
	}
	a.logger.Debug("configuration loaded", zap.String("path", path))
	return conf, nil
}

func (a *app) newAnalyzer(conf neatcommit.Config) (*neatcommit.Analyzer, error) {
	corpus, err := conf.LoadCorpus()
	if err != nil {
		return nil, fmt.Errorf("loading rules: %w", err)
	}
	return neatcommit.NewAnalyzer(conf, corpus, a.logger)
}
