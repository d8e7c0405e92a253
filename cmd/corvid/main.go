// Command corvid is the UCI-driven chess engine binary: it wires the uci
// package's text loop to stdin/stdout, mirroring the teacher's
// blunder/main.go entry point.
package main

import (
	"os"

	"github.com/corvid-engine/corvid/uci"
)

func main() {
	uci.Loop(os.Stdin, os.Stdout)
}
