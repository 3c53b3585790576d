package isa

import (
	"fmt"

	"github.com/vybium/vybium-bf-vm/internal/bfvm/core"
)

// CompileError reports an unbalanced bracket encountered during
// compilation, with the byte position in the source string that is at
// fault -- the position of the unmatched ']' itself, or of the
// still-open '[' found at end of input.
type CompileError struct {
	Position int
	Message  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("isa: unbalanced brackets at position %d: %s", e.Position, e.Message)
}

// bracketFrame remembers where a '[' placeholder lives in program
// memory (cellIndex) and where the '[' symbol was in the source
// (sourcePos), the latter purely for diagnostics.
type bracketFrame struct {
	cellIndex int
	sourcePos int
}

// Compile turns source text into field-encoded program memory, in a
// single left-to-right pass. Every byte that is not one of the eight
// instruction symbols is silently discarded -- whitespace, comments,
// and any other stray byte carry no meaning here.
//
// For each non-jump symbol, one cell holding its ASCII value is
// appended. For '[' a second placeholder cell is appended and its
// index is pushed onto a bracket stack; for ']' the stack is popped to
// find the matching '[' placeholder, which is backpatched to point at
// this ']''s own about-to-be-appended target cell (so a skipped loop's
// direct `ip = target` lands the outer loop's following `ip += 1`
// exactly on the first instruction past the whole bracket construct),
// and that target cell is appended holding the index one past the
// matching '[' placeholder -- the first instruction inside the loop,
// which `]`'s own backward jump (`ip = target - 1`, then the outer
// loop's `ip += 1`) needs to land on directly.
func Compile(source string) (Program, error) {
	cells := make([]core.FieldElement, 0, len(source))
	var stack []bracketFrame

	for pos := 0; pos < len(source); pos++ {
		b := source[pos]
		if !IsInstruction(b) {
			continue
		}
		k := Kind(b)
		cells = append(cells, k.FieldElement())

		switch k {
		case JumpIfZero:
			cells = append(cells, core.Zero)
			stack = append(stack, bracketFrame{cellIndex: len(cells) - 1, sourcePos: pos})
		case JumpIfNotZero:
			if len(stack) == 0 {
				return Program{}, &CompileError{Position: pos, Message: "unmatched ']'"}
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			L := len(cells)
			cells[top.cellIndex] = core.New(uint64(L))
			cells = append(cells, core.New(uint64(top.cellIndex+1)))
		}
	}

	if len(stack) != 0 {
		unmatched := stack[len(stack)-1]
		return Program{}, &CompileError{Position: unmatched.sourcePos, Message: "unmatched '['"}
	}

	return Program{Cells: cells}, nil
}

// FoldedInstruction is an auxiliary, run-length-encoded view of a
// sequence of identical non-jump symbols -- e.g. "+++" folds to
// {Kind: Plus, Count: 3}. It is never fed to the Machine; it exists
// purely for human-readable disassembly and tooling.
type FoldedInstruction struct {
	Kind  Kind
	Count uint8
	// Target is set only for jump instructions, and holds the jump's
	// resolved program-memory target rather than a repeat count.
	Target int
	IsJump bool
}

// CompileFolded runs the same filtering and bracket-matching as
// Compile, but instead of cell-per-symbol memory it produces a
// run-length-folded instruction list: consecutive repeats of
// '>','<','+','-','.',',' collapse into a single FoldedInstruction with
// a repeat count capped at 255 (a new instruction starts once the count
// would overflow a byte). Brackets never fold and always carry their
// resolved jump target, discovered via a full Compile pass first.
func CompileFolded(source string) ([]FoldedInstruction, error) {
	prog, err := Compile(source)
	if err != nil {
		return nil, err
	}

	var folded []FoldedInstruction
	for i := 0; i < len(prog.Cells); {
		k, err := KindFromFieldElement(prog.Cells[i])
		if err != nil {
			return nil, fmt.Errorf("isa: CompileFolded: %w", err)
		}

		if k.IsJump() {
			target := int(prog.Cells[i+1].Uint64())
			folded = append(folded, FoldedInstruction{Kind: k, IsJump: true, Target: target})
			i += 2
			continue
		}

		count := 1
		for i+count < len(prog.Cells) && count < 255 {
			nextK, err := KindFromFieldElement(prog.Cells[i+count])
			if err != nil || nextK != k || nextK.IsJump() {
				break
			}
			count++
		}
		folded = append(folded, FoldedInstruction{Kind: k, Count: uint8(count)})
		i += count
	}

	return folded, nil
}
