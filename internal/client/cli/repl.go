package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// console is the minimal surface the REPL needs. The real App satisfies
// it; tests provide a lightweight stub.
type console interface {
	prompt() string
	helpText() string
	execute(ctx context.Context, name string, args []string)
}

// runREPL is a simple read–eval–print loop. It reads a line, parses the
// first token as the command and dispatches to c. The loop exits on
// scanner EOF or when the user types "exit" or "quit". "help" is handled
// here; everything else goes through c.execute, which applies the route
// guard and prints its own errors so the loop stays resilient.
func runREPL(ctx context.Context, c console, scanner *bufio.Scanner) {
	for {
		printlnFn(c.prompt())
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			printlnFn(c.helpText())
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			c.execute(ctx, cmd, args)
		}
	}
}
