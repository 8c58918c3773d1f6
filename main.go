package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/filetug/fx/pkg/browser"
	"github.com/filetug/fx/pkg/display"
	"github.com/filetug/fx/pkg/fx"
	"github.com/filetug/fx/pkg/logging"
	"github.com/filetug/fx/pkg/metrics"
	"github.com/filetug/fx/pkg/profiling"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// exitFatal is the exit code for startup and navigation failures.
const exitFatal = 3

var (
	httpListenAndServe = http.ListenAndServe
	osExit             = os.Exit
)

var stdout io.Writer = os.Stdout

var newApp = func() fx.App {
	return fx.NewTerminal(tview.NewApplication())
}

var run = fx.Run

type flags struct {
	debug          bool
	skipUnreadable bool
	logPath        string
	logLevel       string
	logFormat      string
	cpuProfile     string
	memProfile     string
	pprofAddr      string
}

func main() {
	osExit(execute(context.Background(), os.Args[1:]))
}

func execute(ctx context.Context, args []string) int {
	var result fx.Result
	cmd := newRootCmd(&result)
	cmd.SetArgs(args)
	if err := fang.Execute(ctx, cmd); err != nil {
		return exitFatal
	}
	switch result.Outcome {
	case browser.OutcomeQuit:
		_, _ = fmt.Fprintf(stdout, "Exit: %s\n", result.Outcome.Message())
	case browser.OutcomeChangeDir:
		_, _ = fmt.Fprintln(stdout, result.Path)
	}
	return result.Outcome.ExitCode()
}

func newRootCmd(result *fx.Result) *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:   "fx",
		Short: "Browse directories with the mouse",
		Long: `fx lists the working directory and lets you click through subdirectories.

Press q to quit, or c to quit and print the current directory so a shell
function can cd into it:

  fxcd() { d=$(fx); [ $? -eq 2 ] && cd "$d"; }`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r, err := runBrowser(f)
			*result = r
			return err
		},
	}
	fl := cmd.Flags()
	fl.BoolVarP(&f.debug, "debug", "d", false, "start with the debug overlay on")
	fl.BoolVar(&f.skipUnreadable, "skip-unreadable", false, "skip entries that cannot be stat'ed instead of failing")
	fl.StringVar(&f.logPath, "log", "", "write logs to `file`")
	fl.StringVar(&f.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	fl.StringVar(&f.logFormat, "log-format", "json", "log format: json, console")
	fl.StringVar(&f.cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	fl.StringVar(&f.memProfile, "memprofile", "", "write memory profile to `file`")
	fl.StringVar(&f.pprofAddr, "pprof", "", "serve pprof and /metrics on `address` (e.g. localhost:6060)")
	return cmd
}

func runBrowser(f flags) (result fx.Result, err error) {
	log, err := logging.New(logging.Config{Level: f.logLevel, Format: f.logFormat, OutputPath: f.logPath})
	if err != nil {
		return result, fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() {
		_ = log.Sync()
	}()

	reg := prometheus.NewRegistry()
	stats := metrics.NewRecorder(reg)
	if f.pprofAddr != "" {
		servePprof(f.pprofAddr, metrics.Handler(reg), log)
	}

	if f.cpuProfile != "" {
		stopCPUProfiling := profiling.DoCPUProfiling(f.cpuProfile)
		defer stopCPUProfiling()
	}

	if f.memProfile != "" {
		writeMemProfile := profiling.DoMemProfiling(f.memProfile)
		defer writeMemProfile()
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error("recovered from panic", zap.Any("panic", r))
			err = fmt.Errorf("recovered from panic: %v", r)
		}
	}()

	result, err = run(newApp(), fx.Config{
		Debug:          f.debug,
		SkipUnreadable: f.skipUnreadable,
		Colors:         display.DefaultColorNames,
		Logger:         log,
		Stats:          stats,
	})
	if err != nil {
		log.Error("browser failed", zap.Error(err))
		return result, err
	}
	log.Info("browser exited", zap.Int("outcome", int(result.Outcome)), zap.String("path", result.Path))
	return result, nil
}

func servePprof(addr string, metricsHandler http.Handler, log *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metricsHandler)
	mux.Handle("/debug/pprof/", http.DefaultServeMux)
	go func() {
		if err := httpListenAndServe(addr, mux); err != nil {
			log.Error("pprof server error", zap.Error(err))
		}
	}()
}
