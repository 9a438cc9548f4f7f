// scour edits the preferences of the scour disk cleaner
package main

import (
	"os"

	"github.com/iiroan/scour/cmd/scour/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
