// Command uci runs the engine as a UCI-speaking subprocess over stdin and
// stdout, the way a GUI (or a script) drives it.
package main

import (
	"os"

	"mateline/protocol"
)

func main() {
	h := protocol.NewHandler(os.Stdout)
	if err := h.Run(os.Stdin); err != nil {
		os.Exit(1)
	}
}
