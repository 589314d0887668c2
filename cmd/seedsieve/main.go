// seedsieve filters the BIP39 English wordlist by length, fixed letter
// positions, and part of speech.
package main

import (
	"fmt"
	"os"

	"github.com/seedsieve/seedsieve/cmd/seedsieve/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if code := cmd.ExitCode(err); code >= 0 {
			os.Exit(code)
		}
		os.Exit(1)
	}
}
