// Command zcdump prints every stage of compiling one Z file: source,
// tokens, expression tree and bytecode.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"

	"zc/pkg/asm"
	"zc/pkg/compiler"
)

const testSource = `// Mixed arithmetic
(1 + 2.5) * 'a'
true + 0x10 / 4
`

func main() {
	log.SetFlags(0)
	log.SetPrefix("zcdump: ")

	src := testSource
	if len(os.Args) > 1 {
		data, err := os.ReadFile(os.Args[1])
		if err != nil {
			log.Fatalf("read error: %v", err)
		}
		src = string(data)
	}

	fmt.Printf("Source:\n%s\n", src)

	// Lex
	tokens, err := compiler.LexString(src)
	if err != nil {
		fail("lex", src, err)
	}

	fmt.Printf("Tokens (%d)\n", tokens.Len())
	compiler.PrintTokens(os.Stdout, tokens)
	fmt.Println()

	// Parse
	nodes, err := compiler.Parse(tokens)
	if err != nil {
		fail("parse", src, err)
	}

	fmt.Println("AST")
	compiler.PrintAST(os.Stdout, nodes)
	fmt.Println()

	// Emit, one top-level expression at a time so each result register
	// shows up next to its code.
	var code bytes.Buffer
	regs := compiler.NewRegisterAllocator()
	em := compiler.NewEmitter(&code, regs)
	fmt.Println("Bytecode")
	for _, n := range nodes {
		start := em.Len()
		r, err := em.Emit(n)
		if err != nil {
			fail("emit", src, err)
		}
		text, err := asm.Format(code.Bytes()[start:])
		if err != nil {
			log.Fatalf("disassemble: %v", err)
		}
		fmt.Printf("; %s -> %s\n%s", n, r, text)
		if err := regs.Free(r); err != nil {
			fail("emit", src, err)
		}
	}
	fmt.Printf("\n%d bytes\n", em.Len())
}

func fail(stage, src string, err error) {
	var ce *compiler.Error
	if errors.As(err, &ce) {
		log.Fatalf("%s error: %s", stage, ce.Format(src))
	}
	log.Fatalf("%s error: %v", stage, err)
}
