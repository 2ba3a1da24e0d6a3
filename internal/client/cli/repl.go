package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = func(msg string) { fmt.Println(msg) }

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	ShowProfile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads a line from scanner, parses the first token as the command
// and dispatches to a. Unknown commands are reported back to the user. The
// loop exits on scanner EOF or when the user types "exit" or "quit".
//
// Command errors are ignored here; handlers report their own failures.
// That keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		fmt.Printf("cp%s> ", statusFn())
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: profile, edit, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			if a.isLoggedIn() {
				printlnFn("Already logged in. Use 'logout' first.")
				continue
			}
			_ = a.Register(ctx)

		case "login":
			if a.isLoggedIn() {
				printlnFn("Already logged in.")
				continue
			}
			_ = a.Login(ctx)

		case "profile":
			if !a.isLoggedIn() {
				printlnFn("Please log in first.")
				continue
			}
			_ = a.ShowProfile(ctx)

		case "edit":
			if !a.isLoggedIn() {
				printlnFn("Please log in first.")
				continue
			}
			_ = a.EditProfile(ctx)

		case "logout":
			if !a.isLoggedIn() {
				printlnFn("Not logged in.")
				continue
			}
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command: " + cmd)
		}
	}
}

func (a *App) getStatus() string {
	if a.user == nil {
		return ""
	}
	return fmt.Sprintf(" (%s)", a.user.Username)
}

// Root runs the REPL against standard input.
func (a *App) Root(ctx context.Context) {
	printlnFn("Welcome to CampusPocket (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
