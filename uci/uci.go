// Package uci is the thin text-protocol host over core: it never makes a
// move-generation or search decision itself, only parses commands and
// invokes the corresponding core entry point.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/corvid-engine/corvid/core"
)

const (
	EngineName   = "Corvid 0.1"
	EngineAuthor = "Corvid Authors"

	defaultSearchDepth = 6
)

// Loop reads newline-delimited UCI commands from r and writes responses to
// w until it sees "quit" or r is exhausted. It owns no os.Stdin/os.Stdout
// dependency, so it can be driven by a test harness as easily as by a real
// terminal.
func Loop(r io.Reader, w io.Writer) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	searcher := core.NewSearcher()
	pos := core.StartPosition()

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case line == "uci":
			fmt.Fprintf(w, "id name %s\n", EngineName)
			fmt.Fprintf(w, "id author %s\n", EngineAuthor)
			fmt.Fprintln(w, "uciok")
		case line == "isready":
			fmt.Fprintln(w, "readyok")
		case line == "ucinewgame":
			pos = core.StartPosition()
			searcher.Reset()
		case strings.HasPrefix(line, "position"):
			pos = handlePosition(w, line)
		case strings.HasPrefix(line, "go"):
			handleGo(w, searcher, pos, line)
		case line == "quit":
			return
		}
	}
}

func handlePosition(w io.Writer, line string) core.Position {
	args := strings.TrimPrefix(line, "position")
	args = strings.TrimSpace(args)

	var pos core.Position
	var rest string

	switch {
	case strings.HasPrefix(args, "startpos"):
		pos = core.StartPosition()
		rest = strings.TrimSpace(strings.TrimPrefix(args, "startpos"))
	case strings.HasPrefix(args, "fen"):
		args = strings.TrimSpace(strings.TrimPrefix(args, "fen"))
		fields := strings.Fields(args)
		if len(fields) < 6 {
			fmt.Fprintf(w, "info string malformed fen in position command\n")
			return core.StartPosition()
		}
		fenString := strings.Join(fields[:6], " ")
		rest = strings.TrimSpace(strings.Join(fields[6:], " "))
		parsed, err := core.ParseFEN(fenString)
		if err != nil {
			fmt.Fprintf(w, "info string %v\n", err)
			return core.StartPosition()
		}
		pos = parsed
	default:
		return core.StartPosition()
	}

	if strings.HasPrefix(rest, "moves") {
		rest = strings.TrimSpace(strings.TrimPrefix(rest, "moves"))
		for _, moveStr := range strings.Fields(rest) {
			mv, err := core.ParseUCIMove(&pos, moveStr)
			if err != nil {
				fmt.Fprintf(w, "info string %v\n", err)
				break
			}
			next, ok := core.MakeMove(pos, mv)
			if !ok {
				fmt.Fprintf(w, "info string illegal move %s\n", moveStr)
				break
			}
			pos = next
		}
	}
	return pos
}

func handleGo(w io.Writer, searcher *core.Searcher, pos core.Position, line string) {
	depth := parseGoDepth(line)
	best := searcher.SearchTo(w, pos, depth)
	fmt.Fprintf(w, "bestmove %s\n", best)
}

// parseGoDepth accepts only "go depth N", per the core's narrow UCI
// subset; it defaults to defaultSearchDepth when no depth is given, and
// ignores wtime/btime/movetime -- time management is not implemented.
func parseGoDepth(line string) int {
	fields := strings.Fields(line)
	for i, field := range fields {
		if field == "depth" && i+1 < len(fields) {
			if d, err := strconv.Atoi(fields[i+1]); err == nil {
				return d
			}
		}
	}
	return defaultSearchDepth
}
