// Command sheetkit prepares sequencing run output: it splits sample sheets
// into per-project deliveries and patches them for UMI demultiplexing.
package main

import (
	"os"

	"github.com/seqlab/sheetkit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
