// Command perft is a manual correctness harness for the move generator: it
// runs core.Perft (or core.DividePerft with -divide) on a single FEN and
// prints the resulting node count, grounded on the teacher's
// tests/perftest.go harness but dropping its $HOME-relative EPD suite file
// in favor of a single position passed on the command line.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/corvid-engine/corvid/core"
)

func main() {
	divide := flag.Bool("divide", false, "print the per-root-move subtree count")
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: perft [-divide] <fen|startpos> <depth>")
		os.Exit(1)
	}

	depth, err := strconv.Atoi(args[len(args)-1])
	if err != nil {
		log.Fatalf("perft: invalid depth %q: %v", args[len(args)-1], err)
	}

	fenArg := strings.Join(args[:len(args)-1], " ")
	var pos core.Position
	if fenArg == "startpos" {
		pos = core.StartPosition()
	} else {
		pos, err = core.ParseFEN(fenArg)
		if err != nil {
			log.Fatalf("perft: %v", err)
		}
	}

	if *divide {
		core.DividePerft(pos, depth)
		return
	}
	fmt.Println(core.Perft(pos, depth))
}
