package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/KromDaniel/regdfa/internal/config"
	"github.com/KromDaniel/regdfa/internal/ctxlog"
	"github.com/KromDaniel/regdfa/pkg/regdfa"
)

// main is the entrypoint for the regdfa command.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// job is one expression to build, from the command line or a batch file.
type job struct {
	config.Entry
	fromFile bool
}

// run encapsulates the command logic for easier testing and error handling.
// Results go to outW, logs to logW.
func run(outW, logW io.Writer, args []string) error {
	opts, shouldExit, err := parseArgs(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := newLogger(opts.LogLevel, opts.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	jobs, err := collectJobs(ctx, opts)
	if err != nil {
		return err
	}

	failed := 0
	for _, j := range jobs {
		if err := process(ctx, outW, opts, j); err != nil {
			logger.Error("Expression rejected.", "name", j.Name, "expression", j.Pattern, "error", err)
			failed++
		}
	}

	if failed > 0 {
		return &ExitError{Code: 1, Message: fmt.Sprintf("%d of %d expressions failed", failed, len(jobs))}
	}
	return nil
}

func collectJobs(ctx context.Context, opts *options) ([]job, error) {
	var jobs []job
	if opts.ConfigFile != "" {
		batch, err := config.LoadFile(ctx, opts.ConfigFile, opts.Vars)
		if err != nil {
			return nil, &ExitError{Code: 2, Message: err.Error()}
		}
		for _, e := range batch.Entries {
			jobs = append(jobs, job{Entry: e, fromFile: true})
		}
	}

	for i, expr := range opts.Expressions {
		name := opts.Name
		if len(opts.Expressions) > 1 {
			name += strconv.Itoa(i + 1)
		}
		jobs = append(jobs, job{Entry: config.Entry{
			Name:    name,
			Pattern: expr,
			Package: opts.Package,
			Output:  opts.Output,
		}})
	}
	return jobs, nil
}

func process(ctx context.Context, outW io.Writer, opts *options, j job) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Building expression.", "name", j.Name, "expression", j.Pattern, "from_file", j.fromFile)

	result, err := regdfa.BuildWithOptions(regdfa.BuildOptions{
		Expression: j.Pattern,
		Verbose:    opts.Verbose,
		Logger:     logger,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(outW, "== %s: %s\n", j.Name, result.Expression)
	fmt.Fprintf(outW, "postfix: %s\n", result.Postfix)
	if opts.PrintNFA {
		fmt.Fprint(outW, result.NFA)
	}
	if opts.PrintDFA {
		fmt.Fprint(outW, result.DFA)
	}

	if opts.Analyze {
		analysis, err := regdfa.Analyze(j.Pattern)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(outW)
		enc.SetIndent("", "  ")
		if err := enc.Encode(analysis); err != nil {
			return fmt.Errorf("failed to encode analysis: %w", err)
		}
	}

	if j.Output != "" {
		err := regdfa.Generate(regdfa.Options{
			Expression: j.Pattern,
			Name:       j.Name,
			OutputFile: j.Output,
			Package:    j.Package,
			Verbose:    opts.Verbose,
			Logger:     logger,
		})
		if err != nil {
			return err
		}
		logger.Info("Generated Go tables.", "name", j.Name, "file", j.Output)
	}
	return nil
}
