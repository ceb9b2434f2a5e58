// Command ctlinfo inspects GrADS descriptors and their binary data files.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
