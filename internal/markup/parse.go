// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package markup parses the inline markup subset used in model replies.
package markup

import "strings"

// =============================================================================
// NODE TYPES
// =============================================================================

// NodeKind identifies what a node renders as.
type NodeKind int

const (
	KindText NodeKind = iota
	KindBold
	KindCode
	KindLink
	KindLineBreak
)

// Node is one parsed span. Text carries the visible content; URL is set for
// links only.
type Node struct {
	Kind NodeKind
	Text string
	URL  string
}

// =============================================================================
// PARSER
// =============================================================================

// Parse splits s into a flat node list covering **bold**, `code`,
// [label](url) and line breaks. Unterminated markers are kept as literal
// text, never swallowed. Spans do not nest; the first opener wins.
func Parse(s string) []Node {
	var nodes []Node
	var text strings.Builder

	flush := func() {
		if text.Len() > 0 {
			nodes = append(nodes, Node{Kind: KindText, Text: text.String()})
			text.Reset()
		}
	}

	runes := []rune(s)
	for i := 0; i < len(runes); {
		switch {
		case runes[i] == '\n':
			flush()
			nodes = append(nodes, Node{Kind: KindLineBreak})
			i++

		case runes[i] == '`':
			end := indexRune(runes, i+1, '`')
			if end < 0 {
				text.WriteRune(runes[i])
				i++
				break
			}
			flush()
			nodes = append(nodes, Node{Kind: KindCode, Text: string(runes[i+1 : end])})
			i = end + 1

		case i+1 < len(runes) && runes[i] == '*' && runes[i+1] == '*':
			end := indexPair(runes, i+2)
			if end < 0 {
				text.WriteRune(runes[i])
				i++
				break
			}
			flush()
			nodes = append(nodes, Node{Kind: KindBold, Text: string(runes[i+2 : end])})
			i = end + 2

		case runes[i] == '[':
			label, url, next, ok := parseLink(runes, i)
			if !ok {
				text.WriteRune(runes[i])
				i++
				break
			}
			flush()
			nodes = append(nodes, Node{Kind: KindLink, Text: label, URL: url})
			i = next

		default:
			text.WriteRune(runes[i])
			i++
		}
	}

	flush()
	return nodes
}

// indexRune finds r in runes at or after from.
func indexRune(runes []rune, from int, r rune) int {
	for i := from; i < len(runes); i++ {
		if runes[i] == r {
			return i
		}
	}
	return -1
}

// indexPair finds the next "**" at or after from.
func indexPair(runes []rune, from int) int {
	for i := from; i+1 < len(runes); i++ {
		if runes[i] == '*' && runes[i+1] == '*' {
			return i
		}
	}
	return -1
}

// parseLink matches [label](url) starting at the '[' position. Returns the
// label, url, and the index just past the closing ')'.
func parseLink(runes []rune, start int) (label, url string, next int, ok bool) {
	closeBracket := indexRune(runes, start+1, ']')
	if closeBracket < 0 || closeBracket+1 >= len(runes) || runes[closeBracket+1] != '(' {
		return "", "", 0, false
	}
	closeParen := indexRune(runes, closeBracket+2, ')')
	if closeParen < 0 {
		return "", "", 0, false
	}
	label = string(runes[start+1 : closeBracket])
	url = string(runes[closeBracket+2 : closeParen])
	if label == "" || url == "" {
		return "", "", 0, false
	}
	return label, url, closeParen + 1, true
}
