package cmdutil

import (
	"fmt"
	"io"

	"github.com/1eedaegon/boots/internal/generator"
	"github.com/1eedaegon/boots/internal/output"
)

// PrintProjectResult writes the success line and the created file tree.
func PrintProjectResult(w io.Writer, result *generator.Result) {
	fmt.Fprintln(w, output.FormatCheckmark(fmt.Sprintf("Project '%s' created successfully!", result.Root)))
	fmt.Fprintln(w)
	fmt.Fprint(w, output.RenderProjectTree(result.Root, result.Files))
}

// PrintAdded writes the completion line and the files the add command
// created or modified.
func PrintAdded(w io.Writer, target string, files []string) {
	fmt.Fprintln(w, output.FormatCheckmark(fmt.Sprintf("Added %s", output.FormatNoun(target))))
	for _, f := range files {
		fmt.Fprintf(w, "  %s\n", output.StyleDim.Render(f))
	}
}
