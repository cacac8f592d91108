package main

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// arrayFlags collects every occurrence of a repeatable flag.
type arrayFlags []string

func (a *arrayFlags) String() string {
	return strings.Join(*a, ", ")
}

func (a *arrayFlags) Set(value string) error {
	*a = append(*a, value)
	return nil
}

// options is the parsed command line.
type options struct {
	Expressions []string
	ConfigFile  string
	Vars        map[string]string
	PrintNFA    bool
	PrintDFA    bool
	Analyze     bool
	Name        string
	Output      string
	Package     string
	Verbose     bool
	LogLevel    string
	LogFormat   string
}

// parseArgs processes command-line arguments. It returns the options, a
// boolean indicating if the program should exit cleanly, or an ExitError.
func parseArgs(args []string, output io.Writer) (*options, bool, error) {
	flagSet := flag.NewFlagSet("regdfa", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
regdfa - convert small regular expressions into NFAs and DFAs.

Usage:
  regdfa [options] [EXPRESSION...]

Expressions use '.' for concatenation, '|' for alternation, postfix '*', '+'
and '?', and parentheses, over at most 5 distinct symbols.

Options:
`)
		flagSet.PrintDefaults()
	}

	var exprs, vars arrayFlags
	flagSet.Var(&exprs, "e", "Expression to build (repeatable).")
	flagSet.Var(&vars, "var", "Batch file variable as name=value (repeatable).")
	configFlag := flagSet.String("config", "", "Path to an HCL batch file.")
	nfaFlag := flagSet.Bool("nfa", false, "Print the NFA of each expression.")
	dfaFlag := flagSet.Bool("dfa", true, "Print the DFA of each expression.")
	analyzeFlag := flagSet.Bool("analyze", false, "Print a JSON analysis of each expression.")
	nameFlag := flagSet.String("name", "Automaton", "Prefix for generated identifiers.")
	outFlag := flagSet.String("o", "", "Write Go tables for the single expression to this file.")
	pkgFlag := flagSet.String("package", "automata", "Package clause of generated files.")
	verboseFlag := flagSet.Bool("verbose", false, "Log every pipeline stage.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	exprs = append(exprs, flagSet.Args()...)
	if len(exprs) == 0 && *configFlag == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	if *outFlag != "" && len(exprs) != 1 {
		return nil, false, &ExitError{Code: 2, Message: "-o requires exactly one expression; use -config for several outputs"}
	}

	varMap := make(map[string]string, len(vars))
	for _, v := range vars {
		name, value, ok := strings.Cut(v, "=")
		if !ok || name == "" {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid -var %q: must be name=value", v)}
		}
		varMap[name] = value
	}

	return &options{
		Expressions: exprs,
		ConfigFile:  *configFlag,
		Vars:        varMap,
		PrintNFA:    *nfaFlag,
		PrintDFA:    *dfaFlag,
		Analyze:     *analyzeFlag,
		Name:        *nameFlag,
		Output:      *outFlag,
		Package:     *pkgFlag,
		Verbose:     *verboseFlag,
		LogLevel:    logLevel,
		LogFormat:   logFormat,
	}, false, nil
}
