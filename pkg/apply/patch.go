package apply

import (
	"fmt"
	"runtime"
	"strings"
)

// nativeLineEnding is the line ending used for generated patch files:
// CRLF on Windows, LF everywhere else.
func nativeLineEnding() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

// BuildPatch renders a reverse-audit unified diff for one file: one hunk
// per changed line, addressed by line number, sufficient to show a
// reviewer exactly what changed without needing a full LCS diff over the
// whole file.
func BuildPatch(path string, lineNumbers []int, before, after []string) string {
	eol := nativeLineEnding()
	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s%s", path, eol)
	fmt.Fprintf(&b, "+++ b/%s%s", path, eol)
	for i, line := range lineNumbers {
		fmt.Fprintf(&b, "@@ -%d,1 +%d,1 @@%s", line, line, eol)
		fmt.Fprintf(&b, "-%s%s", before[i], eol)
		fmt.Fprintf(&b, "+%s%s", after[i], eol)
	}
	return b.String()
}
