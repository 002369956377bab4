// Package acronym provides the configurable dictionary of multi-letter
// tokens that resist the tokenizer's usual case-transition splitting
// (HTTP, URL, IO, ...).
package acronym

import (
	"sort"
	"strings"
)

// defaultAcronyms is the built-in set of common tech acronyms.
var defaultAcronyms = []string{
	"API", "HTTP", "HTTPS", "URL", "URI", "ID", "UUID", "JSON", "XML", "YAML",
	"TOML", "HTML", "CSS", "JS", "TS", "SQL", "DB", "IO", "OS", "CPU", "GPU",
	"RAM", "IP", "TCP", "UDP", "DNS", "SSH", "SSL", "TLS", "JWT", "OAuth",
	"CLI", "GUI", "SDK", "CI", "CD", "AWS", "GCP", "S3", "EC2", "VM", "CDN",
	"REST", "RPC", "gRPC", "WS", "WSS", "ASCII", "UTF8", "ISO", "RFC", "UI",
	"UX", "PDF", "CSV", "TSV", "PNG", "JPEG", "SVG", "URL2", "VPC", "ACL",
	"IAM", "ARN", "KMS", "SQS", "SNS", "ECS", "EKS", "RDS", "QA", "E2E",
}

// Set is a case-insensitive dictionary of acronym tokens. The tokenizer
// consults it at each position to keep an acronym as one Token and, when
// rendering camel/pascal/train variants, to preserve its configured
// canonical casing.
type Set struct {
	// canonical maps the uppercase-folded acronym to the casing it should
	// render as in camel/pascal/train styles (e.g. "oauth" -> "OAuth").
	canonical map[string]string
	// lengths holds the distinct lengths of the uppercase-folded keys,
	// longest first, so LongestMatch can probe from the longest candidate
	// down.
	lengths []int
}

// New creates an empty acronym set.
func New() *Set {
	return &Set{canonical: make(map[string]string)}
}

// Default returns the built-in acronym set.
func Default() *Set {
	s := New()
	for _, a := range defaultAcronyms {
		s.Add(a)
	}
	return s
}

// Add registers an acronym, using its given casing as the canonical
// rendering. Re-adding the same acronym (case-insensitively) replaces the
// canonical casing.
func (s *Set) Add(acronym string) {
	if acronym == "" {
		return
	}
	key := strings.ToUpper(acronym)
	if _, exists := s.canonical[key]; !exists {
		s.lengths = append(s.lengths, len(key))
	}
	s.canonical[key] = acronym
	s.resortLengths()
}

// Remove deregisters an acronym (case-insensitive).
func (s *Set) Remove(acronym string) {
	key := strings.ToUpper(acronym)
	if _, ok := s.canonical[key]; !ok {
		return
	}
	delete(s.canonical, key)
	// lengths holds each length once; keep it while another acronym of
	// the same length remains.
	for k := range s.canonical {
		if len(k) == len(key) {
			return
		}
	}
	for i, l := range s.lengths {
		if l == len(key) {
			s.lengths = append(s.lengths[:i], s.lengths[i+1:]...)
			break
		}
	}
}

// Replace clears the set and installs exactly the given acronyms.
func (s *Set) Replace(acronyms []string) {
	s.canonical = make(map[string]string)
	s.lengths = nil
	for _, a := range acronyms {
		s.Add(a)
	}
}

func (s *Set) resortLengths() {
	seen := make(map[int]bool)
	uniq := s.lengths[:0]
	for _, l := range s.lengths {
		if !seen[l] {
			seen[l] = true
			uniq = append(uniq, l)
		}
	}
	s.lengths = uniq
	sort.Sort(sort.Reverse(sort.IntSlice(s.lengths)))
}

// Contains reports whether s (case-insensitive, whole string) is a known
// acronym.
func (s *Set) Contains(text string) bool {
	if s == nil {
		return false
	}
	_, ok := s.canonical[strings.ToUpper(text)]
	return ok
}

// Canonical returns the configured canonical casing for an acronym
// (case-insensitive lookup), or text unchanged if not found.
func (s *Set) Canonical(text string) string {
	if s == nil {
		return text
	}
	if c, ok := s.canonical[strings.ToUpper(text)]; ok {
		return c
	}
	return text
}

// LongestMatch finds the longest acronym that is a case-insensitive prefix
// of text, returning its length. Used by the tokenizer to peel acronyms
// off the front of an uppercase run.
func (s *Set) LongestMatch(text string) (length int, ok bool) {
	if s == nil || text == "" {
		return 0, false
	}
	upper := strings.ToUpper(text)
	for _, l := range s.lengths {
		if l > len(upper) {
			continue
		}
		if _, exists := s.canonical[upper[:l]]; exists {
			return l, true
		}
	}
	return 0, false
}
