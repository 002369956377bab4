// Package casemodel implements the identifier tokenizer and per-style
// renderer/detector. Every other generation and
// matching package builds on the Token model defined here.
package casemodel

import (
	"github.com/renamify-go/renamify/pkg/acronym"
	"github.com/renamify-go/renamify/pkg/types"
)

func isSeparator(b byte) bool {
	return b == '_' || b == '-' || b == '.' || b == ' '
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }
func isLower(b byte) bool { return b >= 'a' && b <= 'z' }

// Tokenize splits an identifier into Tokens following the boundary rules:
//  1. separator characters (_ - . space) are consumed and never stored
//  2. a lowercase-to-uppercase transition starts a new token
//  3. inside a run of uppercase letters, a transition into a following
//     lowercase letter backs the boundary up one letter, so "XMLParser"
//     splits as "XML" | "Parser" rather than "XMLP" | "arser"
//  4. a letter-to-digit transition (or the reverse) starts a new token,
//     unless the tokenizer is mid-acronym-match
//  5. a recognised acronym is kept together as a single Token and marked
//     IsAcronym, taking priority over rules 2-4 at the position it starts
func Tokenize(s string, acronyms *acronym.Set) types.TokenModel {
	var tokens []types.Token
	for _, chunk := range splitOnSeparators(s) {
		tokens = append(tokens, tokenizeChunk(chunk, acronyms)...)
	}
	return types.NewTokenModel(tokens)
}

// splitOnSeparators breaks s on runs of separator characters, discarding
// them, and drops empty chunks produced by leading/trailing/doubled
// separators.
func splitOnSeparators(s string) []string {
	var chunks []string
	start := -1
	for i := 0; i < len(s); i++ {
		if isSeparator(s[i]) {
			if start >= 0 {
				chunks = append(chunks, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		chunks = append(chunks, s[start:])
	}
	return chunks
}

func tokenizeChunk(chunk string, acronyms *acronym.Set) []types.Token {
	var out []types.Token
	n := len(chunk)
	i := 0
	for i < n {
		c := chunk[i]
		switch {
		case isDigit(c):
			j := i + 1
			for j < n && isDigit(chunk[j]) {
				j++
			}
			out = append(out, types.NewToken(chunk[i:j]))
			i = j

		case isUpper(c):
			if l, ok := acronyms.LongestMatch(chunk[i:]); ok && isAcronymBoundary(chunk, i, l) {
				out = append(out, types.Token{Text: chunk[i : i+l], IsAcronym: true})
				i += l
				continue
			}
			j := i + 1
			for j < n && isUpper(chunk[j]) {
				j++
			}
			runLen := j - i
			switch {
			case runLen >= 2 && j < n && isLower(chunk[j]):
				// Rule 3: back the boundary up one letter so the final
				// uppercase letter of the run starts the next Capitalized word.
				out = append(out, types.NewToken(chunk[i:j-1]))
				i = j - 1
				k := i + 1
				for k < n && isLower(chunk[k]) {
					k++
				}
				out = append(out, types.NewToken(chunk[i:k]))
				i = k
			case runLen == 1:
				k := j
				for k < n && isLower(chunk[k]) {
					k++
				}
				out = append(out, types.NewToken(chunk[i:k]))
				i = k
			default:
				out = append(out, types.NewToken(chunk[i:j]))
				i = j
			}

		case isLower(c):
			j := i + 1
			for j < n && isLower(chunk[j]) {
				j++
			}
			run := chunk[i:j]
			if acronyms.Contains(run) {
				out = append(out, types.Token{Text: run, IsAcronym: true})
			} else {
				out = append(out, types.NewToken(run))
			}
			i = j

		default:
			// Non-ASCII or other byte outside [A-Za-z0-9]; keep it as its
			// own single-byte token rather than dropping data silently.
			out = append(out, types.NewToken(chunk[i:i+1]))
			i++
		}
	}
	return out
}

// isAcronymBoundary guards the acronym peel inside an uppercase run: the
// match is rejected when it is immediately followed by a lowercase
// letter, since that shape is a single Capitalized word that merely
// happens to share a prefix with an acronym ("Id" inside "Identifier"),
// not the acronym itself. Followed by another uppercase letter, a digit,
// or the end of the chunk, the match stands — which is what lets
// "XMLHTTPRequest" peel into "XML" + "HTTP" + "Request" and
// "userAccountID" keep "ID" as its own token.
func isAcronymBoundary(chunk string, i, length int) bool {
	end := i + length
	if end >= len(chunk) {
		return true
	}
	return !isLower(chunk[end])
}
