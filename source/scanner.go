// Package source provides line-oriented scanning of raw file content.
//
// The scanner decomposes a file into physical lines while preserving
// everything needed to reproduce the original bytes exactly: line
// terminators, the composition of leading whitespace (tabs vs spaces,
// in order), and the length of trailing whitespace. Rules operate on
// the resulting FileView and never re-read the raw content.
//
// Key types:
//   - FileView: scanned, line-decomposed view of one file
//   - PhysicalLine: one line with its terminator and whitespace profile
//   - Terminator: the line terminator kind (LF, CRLF, or none)
//   - EncodingError: returned when content is not valid UTF-8
package source

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/hcl/v2"
)

// Terminator identifies the line terminator of a physical line.
type Terminator int

const (
	// TermNone means the line has no terminator. Only the final line of
	// a file may carry TermNone.
	TermNone Terminator = iota
	// TermLF is a bare "\n" terminator.
	TermLF
	// TermCRLF is a "\r\n" terminator.
	TermCRLF
)

// String returns the string representation of the terminator.
func (t Terminator) String() string {
	switch t {
	case TermNone:
		return "none"
	case TermLF:
		return "LF"
	case TermCRLF:
		return "CRLF"
	default:
		return "unknown"
	}
}

// literal returns the terminator bytes as they appear in the file.
func (t Terminator) literal() string {
	switch t {
	case TermLF:
		return "\n"
	case TermCRLF:
		return "\r\n"
	default:
		return ""
	}
}

// WhitespaceRun is a run-length group of identical leading whitespace
// characters. Char is always ' ' or '\t'.
type WhitespaceRun struct {
	Char  byte
	Count int
}

// PhysicalLine is one line of a scanned file, excluding its terminator.
type PhysicalLine struct {
	// Index is the 1-based line number.
	Index int
	// Content is the line text without the terminator.
	Content string
	// Terminator is the line terminator kind.
	Terminator Terminator
	// Leading describes the leading whitespace as ordered run-length
	// groups, stopping at the first non-whitespace character.
	Leading []WhitespaceRun
	// TrailingWhitespace is the number of space/tab characters
	// immediately before the terminator.
	TrailingWhitespace int
	// Offset is the byte offset of the line start in the original input.
	Offset int
}

// IsBlank reports whether the line contains only whitespace (or nothing).
func (l *PhysicalLine) IsBlank() bool {
	return strings.TrimRight(l.Content, " \t") == ""
}

// IndentWidth returns the total number of leading whitespace characters.
func (l *PhysicalLine) IndentWidth() int {
	width := 0
	for _, run := range l.Leading {
		width += run.Count
	}
	return width
}

// IndentKinds reports which whitespace kinds appear in the leading runs.
func (l *PhysicalLine) IndentKinds() (hasTab, hasSpace bool) {
	for _, run := range l.Leading {
		if run.Char == '\t' {
			hasTab = true
		} else {
			hasSpace = true
		}
	}
	return hasTab, hasSpace
}

// EncodingError is returned by Scan when content is not valid text under
// the configured encoding (UTF-8).
type EncodingError struct {
	// Path identifies the file that failed to decode.
	Path string
	// Offset is the byte offset of the first invalid sequence.
	Offset int
}

// Error implements the error interface.
func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s: invalid UTF-8 sequence at byte offset %d", e.Path, e.Offset)
}

// FileView is an immutable, line-decomposed view of one file.
//
// Invariants:
//   - Line indices are contiguous starting at 1.
//   - Reconstruct returns the original input bytes exactly.
type FileView struct {
	// Path identifies the file. The scanner never reads it from disk;
	// it is carried through to violation ranges.
	Path string
	// Lines is the ordered sequence of physical lines.
	Lines []*PhysicalLine
	// ByteLen is the length of the original input in bytes.
	ByteLen int
	// HasTrailingNewline reports whether the input ended with a terminator.
	HasTrailingNewline bool
}

// Scan decomposes raw content into a FileView.
//
// Scan fails only when content is not valid UTF-8, returning an
// *EncodingError. Empty input produces a FileView with zero lines.
//
// Example:
//
//	view, err := source.Scan([]byte("a = 1\nb = 2\n"), "example.py")
//	if err != nil {
//	    var encErr *source.EncodingError
//	    if errors.As(err, &encErr) { ... }
//	}
func Scan(content []byte, path string) (*FileView, error) {
	if !utf8.Valid(content) {
		return nil, &EncodingError{Path: path, Offset: invalidOffset(content)}
	}

	view := &FileView{
		Path:               path,
		ByteLen:            len(content),
		HasTrailingNewline: len(content) > 0 && content[len(content)-1] == '\n',
	}

	start := 0
	for i := 0; i < len(content); i++ {
		if content[i] != '\n' {
			continue
		}
		end := i
		term := TermLF
		if end > start && content[end-1] == '\r' {
			end--
			term = TermCRLF
		}
		view.Lines = append(view.Lines, newLine(len(view.Lines)+1, string(content[start:end]), term, start))
		start = i + 1
	}
	if start < len(content) {
		view.Lines = append(view.Lines, newLine(len(view.Lines)+1, string(content[start:]), TermNone, start))
	}

	return view, nil
}

// invalidOffset finds the byte offset of the first invalid UTF-8 sequence.
func invalidOffset(content []byte) int {
	for i := 0; i < len(content); {
		r, size := utf8.DecodeRune(content[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return 0
}

func newLine(index int, content string, term Terminator, offset int) *PhysicalLine {
	line := &PhysicalLine{
		Index:      index,
		Content:    content,
		Terminator: term,
		Offset:     offset,
	}

	for i := 0; i < len(content); {
		c := content[i]
		if c != ' ' && c != '\t' {
			break
		}
		n := len(line.Leading)
		if n > 0 && line.Leading[n-1].Char == c {
			line.Leading[n-1].Count++
		} else {
			line.Leading = append(line.Leading, WhitespaceRun{Char: c, Count: 1})
		}
		i++
	}

	for i := len(content) - 1; i >= 0; i-- {
		if content[i] != ' ' && content[i] != '\t' {
			break
		}
		line.TrailingWhitespace++
	}

	return line
}

// LineCount returns the number of physical lines.
func (f *FileView) LineCount() int {
	return len(f.Lines)
}

// Line returns the physical line with the given 1-based index, or nil if
// the index is out of range.
func (f *FileView) Line(index int) *PhysicalLine {
	if index < 1 || index > len(f.Lines) {
		return nil
	}
	return f.Lines[index-1]
}

// Reconstruct reassembles the original input bytes from the scanned lines
// and their terminators.
func (f *FileView) Reconstruct() []byte {
	var buf bytes.Buffer
	buf.Grow(f.ByteLen)
	for _, line := range f.Lines {
		buf.WriteString(line.Content)
		buf.WriteString(line.Terminator.literal())
	}
	return buf.Bytes()
}

// LineRange returns a range covering the whole content of the given
// 1-based line. An out-of-range index yields a range at line 1, column 1.
func (f *FileView) LineRange(index int) hcl.Range {
	line := f.Line(index)
	if line == nil {
		start := hcl.Pos{Line: 1, Column: 1, Byte: 0}
		return hcl.Range{Filename: f.Path, Start: start, End: start}
	}
	cols := utf8.RuneCountInString(line.Content)
	return f.ColumnRange(index, 1, cols+1)
}

// ColumnRange returns a range on the given 1-based line spanning
// [fromCol, toCol) in 1-based character columns.
func (f *FileView) ColumnRange(index, fromCol, toCol int) hcl.Range {
	line := f.Line(index)
	if line == nil {
		start := hcl.Pos{Line: 1, Column: 1, Byte: 0}
		return hcl.Range{Filename: f.Path, Start: start, End: start}
	}
	return hcl.Range{
		Filename: f.Path,
		Start:    hcl.Pos{Line: index, Column: fromCol, Byte: line.Offset + columnByte(line.Content, fromCol)},
		End:      hcl.Pos{Line: index, Column: toCol, Byte: line.Offset + columnByte(line.Content, toCol)},
	}
}

// columnByte converts a 1-based character column into a byte offset
// within the line content.
func columnByte(content string, col int) int {
	remaining := col - 1
	for i := range content {
		if remaining == 0 {
			return i
		}
		remaining--
	}
	return len(content)
}
