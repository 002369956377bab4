// Command renamify rewrites every occurrence of a search term to a
// replace term across a source tree, in file contents and in file/
// directory names, preserving each occurrence's case style.
package main

import (
	"fmt"
	"os"

	"github.com/renamify-go/renamify/cmd"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "renamify:", err)
	}
	os.Exit(cmd.ExitCode(err))
}
