// Package pattern compiles a VariantMap into a single matcher that finds
// every variant occurrence in a byte buffer, labels each hit with its
// source variant, and enforces identifier-boundary checks (spec
// component D).
package pattern

import (
	"regexp"
	"sort"

	"github.com/renamify-go/renamify/pkg/types"
)

// Matcher finds occurrences of a VariantMap's variants in a byte buffer.
type Matcher struct {
	re     *regexp.Regexp
	byText map[string]types.VariantEntry
}

// Build compiles a Matcher from a VariantMap. An empty VariantMap yields
// a Matcher that never matches anything.
func Build(vm *types.VariantMap) (*Matcher, error) {
	variants := vm.Variants()
	if len(variants) == 0 {
		re, err := regexp.Compile(`$^`)
		if err != nil {
			return nil, err
		}
		return &Matcher{re: re, byText: map[string]types.VariantEntry{}}, nil
	}

	sorted := append([]string(nil), variants...)
	sort.Slice(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	pattern := "(?:"
	for i, v := range sorted {
		if i > 0 {
			pattern += "|"
		}
		pattern += regexp.QuoteMeta(v)
	}
	pattern += ")"

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	byText := make(map[string]types.VariantEntry, len(vm.Entries))
	for _, e := range vm.Entries {
		byText[e.Variant] = e
	}

	return &Matcher{re: re, byText: byText}, nil
}

// Hit is one accepted, boundary-checked occurrence of a variant.
type Hit struct {
	Start, End int
	Entry      types.VariantEntry
}

// FindAll scans content for every boundary-valid variant occurrence.
func (m *Matcher) FindAll(content []byte) []Hit {
	var hits []Hit
	for _, loc := range m.re.FindAllIndex(content, -1) {
		start, end := loc[0], loc[1]
		if !IsBoundary(content, start, end) {
			continue
		}
		entry, ok := m.byText[string(content[start:end])]
		if !ok {
			continue
		}
		hits = append(hits, Hit{Start: start, End: end, Entry: entry})
	}
	return hits
}

// IsBoundary reports whether [start,end) in bytes sits on identifier
// boundaries: the byte immediately before start and the byte at end must
// not be an ASCII letter, digit, or underscore. A hit that fails this is
// a substring of a larger identifier, left for the compound matcher.
func IsBoundary(bytes []byte, start, end int) bool {
	left := start == 0 || !isIdentByte(bytes[start-1])
	right := end >= len(bytes) || !isIdentByte(bytes[end])
	return left && right
}

func isIdentByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}

// LineAndColumn converts a byte offset into a 1-based (line, column)
// pair, the way a text editor reports cursor position.
func LineAndColumn(content []byte, offset int) (line, column int) {
	line = 1
	lineStart := 0
	for i := 0; i < offset && i < len(content); i++ {
		if content[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return line, offset - lineStart + 1
}

// LineBounds returns the byte range of the source line containing
// offset, excluding the trailing newline.
func LineBounds(content []byte, offset int) (start, end int) {
	start = 0
	for i := offset - 1; i >= 0; i-- {
		if content[i] == '\n' {
			start = i + 1
			break
		}
	}
	end = len(content)
	for i := offset; i < len(content); i++ {
		if content[i] == '\n' {
			end = i
			break
		}
	}
	return start, end
}
