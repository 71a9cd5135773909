// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package newick implements a parser
// for phylogenetic trees in Newick format.
//
// The parser reads the classic Newick subset:
// clades grouped with parenthesis,
// siblings separated by commas,
// and an optional branch length after a colon.
// A semicolon ends the tree.
// Comments and quoted labels are not supported.
//
// The parser is permissive with branch lengths:
// a length that is not a number
// is stored as NaN
// and reported as a warning,
// not as an error.
package newick

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/js-arias/phypan/tree"
)

// A FormatError is returned
// when the structure of a Newick string is invalid.
type FormatError struct {
	// Offset is the byte offset of the offending token.
	Offset int

	// Token is the offending token.
	Token string

	Msg string
}

func (e *FormatError) Error() string {
	if e.Token == "" {
		return "newick: " + e.Msg
	}
	return fmt.Sprintf("newick: at byte %d: token %q: %s", e.Offset, e.Token, e.Msg)
}

// A Warning is a non-fatal problem found while parsing,
// for example a branch length that is not a number.
type Warning struct {
	Offset int
	Token  string

	// Node is the name of the node
	// at the moment the warning was produced
	// (it can be empty).
	Node string
}

func (w Warning) String() string {
	return fmt.Sprintf("at byte %d: branch length %q of node %q is not a number", w.Offset, w.Token, w.Node)
}

type token struct {
	val    string
	offset int
}

const delimiters = "(),:;"

// tokens splits a string on the Newick delimiters.
// Delimiters are kept as tokens,
// other tokens are trimmed,
// and whitespace-only tokens are discarded.
func tokens(s string) []token {
	var tks []token
	start := 0
	add := func(end int) {
		v := s[start:end]
		t := strings.TrimSpace(v)
		if t == "" {
			return
		}
		off := start + strings.Index(v, t)
		tks = append(tks, token{val: t, offset: off})
	}
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(delimiters, s[i]) < 0 {
			continue
		}
		add(i)
		tks = append(tks, token{val: s[i : i+1], offset: i})
		start = i + 1
	}
	add(len(s))
	return tks
}

// Parse parses a tree in Newick format.
// The returned tree is frozen.
func Parse(text string) (*tree.Node, error) {
	t, _, err := ParseWarn(text)
	return t, err
}

// ParseWarn parses a tree in Newick format
// and returns the tree
// together with any warning found during the parsing.
// The returned tree is frozen.
func ParseWarn(text string) (*tree.Node, []Warning, error) {
	tks := tokens(text)
	if len(tks) == 0 {
		return nil, nil, &FormatError{Msg: "empty input"}
	}

	var warns []Warning
	var stack []*tree.Node
	root := tree.New("")
	current := root

	prev := ""
	for _, tk := range tks {
		switch tk.val {
		case "(":
			n := tree.New("")
			current.Add(n)
			stack = append(stack, current)
			current = n
		case ",":
			if len(stack) == 0 {
				return nil, nil, &FormatError{Offset: tk.offset, Token: tk.val, Msg: "comma outside of a clade"}
			}
			n := tree.New("")
			stack[len(stack)-1].Add(n)
			current = n
		case ")":
			if len(stack) == 0 {
				return nil, nil, &FormatError{Offset: tk.offset, Token: tk.val, Msg: "closing parenthesis without an opening one"}
			}
			current = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
		case ":":
		case ";":
		default:
			switch prev {
			case "(", ",", ")":
				current.SetName(tk.val)
			case ":":
				l, err := strconv.ParseFloat(tk.val, 64)
				if err != nil {
					l = math.NaN()
					warns = append(warns, Warning{
						Offset: tk.offset,
						Token:  tk.val,
						Node:   current.Name(),
					})
				}
				current.SetLength(l)
			}
		}
		if tk.val == ";" {
			break
		}
		prev = tk.val
	}

	if len(stack) > 0 {
		return nil, nil, &FormatError{Msg: fmt.Sprintf("%d unclosed parenthesis", len(stack))}
	}

	tree.Freeze(root)
	return root, warns, nil
}

// Read reads a tree in Newick format from a reader.
// Only the first tree
// (up to the first semicolon)
// is parsed.
func Read(r io.Reader) (*tree.Node, []Warning, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}
	return ParseWarn(string(b))
}
