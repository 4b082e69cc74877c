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
	isResolving() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Dashboard(ctx context.Context) error
	Projects(ctx context.Context, filter string) error
	CreateProject(ctx context.Context) error
	OpenProject(ctx context.Context, id string) error
}

// runREPL starts a simple read–eval–print loop for the StruMind console.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Session resolving:
//	  - only exit | quit are acted on; everything else waits
//
//	Not logged in:
//	  - help             — show available commands
//	  - login            — authenticate
//	  - exit | quit      — leave the program
//
//	Logged in:
//	  - help             — show available commands
//	  - whoami           — show the current account
//	  - dashboard        — summary of projects and the tracked job
//	  - projects [term]  — list projects, optionally filtered
//	  - new              — create a project
//	  - open <id>        — enter a project workspace
//	  - logout           — log out
//	  - exit | quit      — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("strumind %s> ", statusFn()))
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

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}

		if a.isResolving() {
			printlnFn("Session is still resolving, one moment...")
			continue
		}

		if !a.isLoggedIn() {
			switch cmd {
			case "help":
				printlnFn("Available commands: login, exit")
			case "login":
				_ = a.Login(ctx)
			default:
				printlnFn("Please login first")
			}
			continue
		}

		switch cmd {
		case "help":
			printlnFn("Available commands: whoami, dashboard, (p)rojects [term], new, open <id>, logout, exit")

		case "login":
			printlnFn("Already logged in")

		case "whoami":
			_ = a.Whoami(ctx)

		case "dashboard":
			_ = a.Dashboard(ctx)

		case "p", "projects":
			filter := ""
			if len(args) > 0 {
				filter = strings.Join(args, " ")
			}
			_ = a.Projects(ctx, filter)

		case "new":
			_ = a.CreateProject(ctx)

		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <project-id>")
				continue
			}
			_ = a.OpenProject(ctx, args[0])

		case "logout":
			_ = a.Logout(ctx)

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
