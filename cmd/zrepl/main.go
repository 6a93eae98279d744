// Command zrepl compiles Z expressions interactively and prints the
// bytecode for each line.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"zc/pkg/asm"
	"zc/pkg/compiler"
	"zc/pkg/config"
	"zc/pkg/console"
)

const (
	historyFile = ".zc_history"
	prompt      = "z> "
	banner      = "zrepl: type an expression, :debug to toggle the trace, :quit to exit"
)

func main() {
	os.Exit(run())
}

func run() int {
	fmt.Println(banner)
	pal := console.For(os.Stdout)

	settings, err := config.Resolve("", "")
	if err != nil {
		fmt.Fprintln(os.Stderr, pal.Red(err.Error()))
		return 1
	}

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return 0
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, pal.Red(err.Error()))
			return 1
		}

		input := strings.TrimSpace(line)
		switch input {
		case "":
			continue
		case ":quit", ":q":
			return 0
		case ":debug":
			on := !settings.Flags.Has(config.FlagDebug)
			settings.Flags.Set(config.FlagDebug, on)
			fmt.Printf("debug %s\n", map[bool]string{true: "on", false: "off"}[on])
			continue
		}
		if strings.HasPrefix(input, ":") {
			fmt.Println("unknown command. Type :quit to exit.")
			continue
		}

		ln.AppendHistory(line)
		fmt.Print(evaluate(input, settings.Flags, pal))
	}
}

// evaluate compiles one line and returns its listing, or the error.
func evaluate(src string, flags config.Flags, pal console.Palette) string {
	var code, trace bytes.Buffer
	_, err := compiler.Compile(strings.NewReader(src), &code, flags, &trace)
	if err != nil {
		var ce *compiler.Error
		if errors.As(err, &ce) {
			return trace.String() + pal.Red(ce.Format(src))
		}
		return trace.String() + pal.Yellow("internal error: "+err.Error()) + "\n"
	}
	if flags.Has(config.FlagDebug) {
		// The trace already ends with the disassembly.
		return trace.String()
	}
	text, err := asm.Format(code.Bytes())
	if err != nil {
		return pal.Yellow("disassemble: "+err.Error()) + "\n"
	}
	return trace.String() + pal.Green(text)
}
