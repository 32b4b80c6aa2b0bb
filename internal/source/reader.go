// Package source implements the character-stream contract the lexer reads
// from: positional peek/get with a two-slot checkpoint for one-token
// lookahead.
package source

import (
	"fmt"

	"github.com/spietras/timon-interpreter/ast"
)

// Reader is a rune stream with positional lookahead and a speculative
// checkpoint/rewind pair used by the lexer to implement one-token peek.
type Reader struct {
	name    string
	runes   []rune
	pos     int // absolute index into runes
	line    int
	linePos int

	backward *state // position saved by Checkpoint
	forward  *state // position saved by RewindBackward, consumed by RewindForward
}

type state struct {
	pos     int
	line    int
	linePos int
}

// NewReader builds a Reader over the given source text, identified by name
// for diagnostic purposes.
func NewReader(name, text string) *Reader {
	return &Reader{
		name:    name,
		runes:   []rune(text),
		pos:     0,
		line:    1,
		linePos: 0,
	}
}

// Position returns the reader's current position.
func (r *Reader) Position() ast.Position {
	return ast.Position{Line: r.line, Column: r.linePos + 1, Offset: r.pos}
}

// AbsolutePos returns the current absolute rune offset.
func (r *Reader) AbsolutePos() int {
	return r.pos
}

// Name returns the source's identifying name (typically a file path).
func (r *Reader) Name() string {
	return r.name
}

// Ended reports whether the next read would yield no characters.
func (r *Reader) Ended() bool {
	return r.pos >= len(r.runes)
}

// Peek returns up to n characters from the current position without
// consuming them. A negative n reads the |n| characters preceding the
// current position instead, clamped to the start of the source.
func (r *Reader) Peek(n int) string {
	if n >= 0 {
		end := r.pos + n
		if end > len(r.runes) {
			end = len(r.runes)
		}
		return string(r.runes[r.pos:end])
	}
	start := r.pos + n
	if start < 0 {
		start = 0
	}
	return string(r.runes[start:r.pos])
}

// Get consumes and returns up to n characters starting at the current
// position, advancing the reader's position accordingly.
func (r *Reader) Get(n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("source: Get: negative count %d", n)
	}
	end := r.pos + n
	if end > len(r.runes) {
		end = len(r.runes)
	}
	chunk := r.runes[r.pos:end]
	for _, c := range chunk {
		r.advance(c)
	}
	return string(chunk), nil
}

func (r *Reader) advance(c rune) {
	r.pos++
	r.linePos++
	if c == '\n' {
		r.line++
		r.linePos = 0
	}
}

func (r *Reader) snapshot() state {
	return state{pos: r.pos, line: r.line, linePos: r.linePos}
}

func (r *Reader) restore(s state) {
	r.pos, r.line, r.linePos = s.pos, s.line, s.linePos
}

// Checkpoint records the current position as the rewind-backward anchor.
func (r *Reader) Checkpoint() {
	s := r.snapshot()
	r.backward = &s
}

// RewindBackward saves the current position as the rewind-forward anchor
// and jumps back to the last Checkpoint. A no-op if no checkpoint is set.
func (r *Reader) RewindBackward() {
	if r.backward == nil {
		return
	}
	s := r.snapshot()
	r.forward = &s
	r.restore(*r.backward)
	r.backward = nil
}

// RewindForward jumps forward to the position saved by the last
// RewindBackward and clears it. A no-op if no such position is set.
func (r *Reader) RewindForward() {
	if r.forward == nil {
		return
	}
	r.restore(*r.forward)
	r.forward = nil
}

// Snippet returns up to maxSide characters of context on each side of the
// given absolute position, cut at the first newline on either side, plus
// the column offset of pos within the returned snippet (for caret
// placement).
func (r *Reader) Snippet(pos int, maxSide int) (line string, caretCol int) {
	start := pos - maxSide
	if start < 0 {
		start = 0
	}
	end := pos + maxSide
	if end > len(r.runes) {
		end = len(r.runes)
	}
	left := string(r.runes[start:pos])
	if i := lastIndexByte(left, '\n'); i >= 0 {
		left = left[i+1:]
	}
	right := ""
	if pos < end {
		right = string(r.runes[pos:end])
	}
	if i := indexByte(right, '\n'); i >= 0 {
		right = right[:i]
	}
	return left + right, len([]rune(left))
}

func lastIndexByte(s string, b byte) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == b {
			return i
		}
	}
	return -1
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}
