// Package compiler turns Z source text into bytecode for the Z virtual
// machine.
//
// Pipeline: Z source → Lex → Reclassify → ResolveGroups (and
// ResolvePrecedence per bracket level) → Emitter → bytecode
//
// Every stage fails fast: the first *Error aborts the compilation.
package compiler
