package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Signup(ctx context.Context, args []string) error
	Login(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error
	Whoami(ctx context.Context, args []string) error
	Dashboard(ctx context.Context, args []string) error
	Goals(ctx context.Context, args []string) error
	AddGoal(ctx context.Context, args []string) error
	DeleteGoal(ctx context.Context, args []string) error
}

// runREPL starts a simple read–eval–print loop for the FitTrack CLI.
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help                show available commands
//	  - signup              create an account
//	  - login [email]       authenticate
//	  - dashboard           show statistics
//	  - exit | quit         leave the program
//
//	Logged in:
//	  - help                show available commands
//	  - whoami              show the current user and token
//	  - dashboard           show statistics
//	  - goals               list goals
//	  - addgoal [text]      create a goal
//	  - delgoal <n|id>      delete a goal by list number or id
//	  - logout              log out
//	  - exit | quit         leave the program
//
// Errors returned by command handlers are printed as one line and the loop
// continues. The loop exits on EOF or when the user types "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	for {
		fmt.Fprintf(out, "fittrack %s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(out)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var handler func(context.Context, []string) error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(out, "Available commands: whoami, dashboard, goals, addgoal, delgoal, logout, exit")
			} else {
				fmt.Fprintln(out, "Available commands: signup, login, dashboard, exit")
			}
		case "signup", "register":
			handler = a.Signup
		case "login":
			handler = a.Login
		case "logout":
			handler = a.Logout
		case "whoami":
			handler = a.Whoami
		case "dashboard", "stats":
			handler = a.Dashboard
		case "goals", "l", "list":
			handler = a.Goals
		case "addgoal":
			handler = a.AddGoal
		case "delgoal":
			handler = a.DeleteGoal
		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return
		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}

		if handler != nil {
			if err := handler(ctx, args); err != nil {
				fmt.Fprintln(out, "Error:", userMessage(err))
			}
		}
	}
}
