package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"zc/pkg/compiler"
	"zc/pkg/config"
	"zc/pkg/console"
	"zc/pkg/utils"
)

func main() {
	inPath := flag.String("in", "", "input Z source file path")
	outPath := flag.String("out", "", "output bytecode file path (default: input with .zbc extension)")
	configPath := flag.String("config", "", "settings file (default: nearest zc.yaml above the input)")
	debug := flag.Bool("debug", false, "print tokens, AST and bytecode to the trace")
	profile := flag.Bool("profile", false, "print per-stage timings to the trace")
	tracePath := flag.String("trace", "", "write the trace to this file instead of stderr")
	flag.Parse()

	if *inPath == "" {
		fmt.Fprintln(os.Stderr, "nothing to do: provide -in <file.z>")
		flag.Usage()
		os.Exit(2)
	}

	settings, err := config.Resolve(*inPath, *configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load settings: %v\n", err)
		os.Exit(1)
	}
	// Command-line flags win, but only when given.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			settings.Flags.Set(config.FlagDebug, *debug)
		case "profile":
			settings.Flags.Set(config.FlagProfile, *profile)
		case "trace":
			settings.TracePath = *tracePath
		}
	})

	source, err := os.ReadFile(*inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read input file %q: %v\n", *inPath, err)
		os.Exit(1)
	}

	trace, closeTrace, err := openTrace(settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open trace file %q: %v\n", settings.TracePath, err)
		os.Exit(1)
	}
	defer closeTrace()

	var code bytes.Buffer
	if _, err := compiler.Compile(bytes.NewReader(source), &code, settings.Flags, trace); err != nil {
		closeTrace()
		os.Exit(report(os.Stderr, console.For(os.Stderr), *inPath, string(source), err))
	}

	output := *outPath
	if output == "" {
		output = utils.ReplaceExt(*inPath, ".zbc")
	}
	if err := os.WriteFile(output, code.Bytes(), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write bytecode file %q: %v\n", output, err)
		closeTrace()
		os.Exit(1)
	}

	fmt.Printf("compiled %d bytes -> %s\n", code.Len(), output)
}

// report prints a compilation failure and returns the exit status. Errors
// in the source are told apart from failures of the compiler itself.
func report(w io.Writer, pal console.Palette, path, source string, err error) int {
	var ce *compiler.Error
	if errors.As(err, &ce) && ce.Kind != compiler.ErrUnknown {
		fmt.Fprintf(w, "%s %s %s", pal.Bold(path+":"), pal.Red("error:"), ce.Format(source))
		return 1
	}
	fmt.Fprintf(w, "%s %s %v\n", pal.Bold(path+":"), pal.Yellow("internal compiler error (please report):"), err)
	return 3
}

func openTrace(s config.Settings) (io.Writer, func(), error) {
	if s.Flags == 0 {
		return nil, func() {}, nil
	}
	if s.TracePath == "" {
		return os.Stderr, func() {}, nil
	}
	f, err := os.Create(s.TracePath)
	if err != nil {
		return nil, nil, err
	}
	closed := false
	return f, func() {
		if !closed {
			closed = true
			f.Close()
		}
	}, nil
}
