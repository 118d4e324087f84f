package result

import (
	"fmt"
	"io"
)

// PrintReport writes the final console summary to w: a success line when no
// findings exist, or the full finding list in report-line format.
func PrintReport(w io.Writer, findings []Finding) {
	writef := func(format string, a ...any) { _, _ = fmt.Fprintf(w, format, a...) }

	if len(findings) == 0 {
		writef("All links returned 200 OK and responded quickly.\n")
		return
	}

	writef("Bad links found or slow responses:\n")
	for _, f := range findings {
		writef("%s\n", f.Line())
	}
}
