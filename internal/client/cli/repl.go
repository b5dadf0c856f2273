package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Feed(ctx context.Context) error
	Refresh(ctx context.Context) error
	Categories(ctx context.Context) error
	Prefs(ctx context.Context) error
	SetPrefs(ctx context.Context, args []string) error
	Status(ctx context.Context) error
}

const (
	helpSignedOut = "Available commands: register, login, categories, status, exit"
	helpSignedIn  = "Available commands: feed, refresh, categories, prefs, setprefs [ids] [hour], status, logout, exit"
)

// runREPL reads one command per line from reader and dispatches it to a.
//
//	Signed out:
//	  - help, register, login, categories, status, exit | quit
//
//	Signed in:
//	  - help, feed, refresh, categories, prefs, setprefs, status, logout, exit | quit
//
// Handler errors are reported by the handlers themselves; the loop keeps
// going. It exits on EOF or on "exit"/"quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("iw %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpSignedIn)
			} else {
				printlnFn(helpSignedOut)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "categories":
			_ = a.Categories(ctx)

		case "status":
			_ = a.Status(ctx)

		case "feed", "refresh", "prefs", "setprefs", "logout":
			if !a.isLoggedIn() {
				printlnFn("Please log in first")
				continue
			}
			switch cmd {
			case "feed":
				_ = a.Feed(ctx)
			case "refresh":
				_ = a.Refresh(ctx)
			case "prefs":
				_ = a.Prefs(ctx)
			case "setprefs":
				_ = a.SetPrefs(ctx, args)
			case "logout":
				_ = a.Logout(ctx)
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
