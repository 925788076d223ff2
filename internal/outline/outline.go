// Package outline parses indented text outlines into trees.
//
// An outline names one node per line; depth is encoded by leading
// indentation, two spaces per level:
//
//	fruit
//	  citrus
//	    lime
//	  stone
//
// Input may be UTF-8 with or without a BOM, or UTF-16 of either
// endianness, the encodings commonly produced by Windows tooling.
package outline

import (
	"bufio"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/joshuapare/treekit/tree"
)

// indentUnit is the number of spaces per outline level.
const indentUnit = 2

var (
	// ErrEmptyOutline indicates the input contained no labels.
	ErrEmptyOutline = errors.New("outline: no nodes in input")

	// ErrBadIndent indicates a label is indented by a partial indent unit,
	// jumps more than one level past its predecessor, or introduces a
	// second top-level label.
	ErrBadIndent = errors.New("outline: invalid indentation")
)

// Parse reads an outline and builds the corresponding tree of labels.
// Blank lines are skipped; trailing whitespace and carriage returns are
// ignored.
func Parse(r io.Reader) (*tree.Tree[string], error) {
	// BOMOverride sniffs a BOM and switches decoders accordingly; BOM-less
	// input is treated as UTF-8.
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	t := tree.New[string]()
	// path[d] is the most recently added node at depth d.
	var path []*tree.Node[string]

	sc := bufio.NewScanner(decoded)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), " \t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		label := strings.TrimLeft(line, " ")
		indent := len(line) - len(label)
		if indent%indentUnit != 0 {
			return nil, errors.Wrapf(ErrBadIndent,
				"line %d: indent of %d spaces", lineNo, indent)
		}
		depth := indent / indentUnit

		if len(path) == 0 {
			if depth != 0 {
				return nil, errors.Wrapf(ErrBadIndent,
					"line %d: first label must start at column 0", lineNo)
			}
			root, err := t.CreateRoot(label)
			if err != nil {
				return nil, err
			}
			path = append(path, root)
			continue
		}
		if depth == 0 {
			return nil, errors.Wrapf(ErrBadIndent,
				"line %d: outline has a second top-level label", lineNo)
		}
		if depth > len(path) {
			return nil, errors.Wrapf(ErrBadIndent,
				"line %d: depth %d has no parent at depth %d", lineNo, depth, depth-1)
		}
		child := path[depth-1].AddChild(label)
		path = append(path[:depth], child)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "outline: read")
	}
	if t.Root() == nil {
		return nil, ErrEmptyOutline
	}
	return t, nil
}

// ParseString parses an outline held in a string.
func ParseString(s string) (*tree.Tree[string], error) {
	return Parse(strings.NewReader(s))
}
