package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	Sectors(ctx context.Context) error
	Departments(ctx context.Context, sectorID string) error
	Visitors(ctx context.Context, query string) error
	Visits(ctx context.Context) error
	CheckIn(ctx context.Context) error
	CheckOut(ctx context.Context, id string) error
	Audit(ctx context.Context, action string) error
}

// runREPL reads a line from the scanner, parses the first token as the
// command and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Command handlers print their own errors; the loop stays up no matter what
// a handler returns.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("vd> %s > ", statusFn()))
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
			if a.isLoggedIn() {
				printlnFn("Available commands: sectors, departments [sectorId], visitors [query], visits, checkin, checkout <id>, audit [action], profile, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "sectors":
			_ = a.Sectors(ctx)

		case "departments":
			sectorID := ""
			if len(args) > 0 {
				sectorID = args[0]
			}
			_ = a.Departments(ctx, sectorID)

		case "visitors":
			_ = a.Visitors(ctx, strings.Join(args, " "))

		case "visits":
			_ = a.Visits(ctx)

		case "checkin":
			_ = a.CheckIn(ctx)

		case "checkout":
			if len(args) == 0 {
				printlnFn("Usage: checkout <visit id>")
				continue
			}
			_ = a.CheckOut(ctx, args[0])

		case "audit":
			_ = a.Audit(ctx, strings.Join(args, " "))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
