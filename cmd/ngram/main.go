// ngram counts weighted letter n-grams over a word-frequency lexicon.
// Single binary: SUBTLEX CSV or flat word/count input, ranked or JSON output.
package main

import (
	"fmt"
	"os"

	"github.com/corey/ngram/cmd/ngram/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
