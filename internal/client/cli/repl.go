package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the command surface the REPL needs.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Me(ctx context.Context) error
	List(ctx context.Context) error
	AddProduct(ctx context.Context) error
}

func commandFor(a execIface, cmd string) (func(context.Context) error, bool) {
	switch cmd {
	case "register":
		return a.Register, true
	case "login":
		return a.Login, true
	case "logout":
		return a.Logout, true
	case "me":
		return a.Me, true
	case "l", "list", "products":
		return a.List, true
	case "add-product", "add":
		return a.AddProduct, true
	}
	return nil, false
}

// runREPL reads commands line by line from r until EOF, "exit" or "quit".
// Command errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, r *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "store (%s)> ", statusFn())

		line, err := r.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			fmt.Fprintln(w)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, "Available commands: (l)ist, add-product, me, logout, exit")
			} else {
				fmt.Fprintln(w, "Available commands: register, login, (l)ist, add-product, exit")
			}
			continue
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		}

		h, ok := commandFor(a, cmd)
		if !ok {
			fmt.Fprintln(w, "Unknown command:", cmd)
			continue
		}
		if err := h(ctx); err != nil {
			fmt.Fprintln(w, "Error:", err)
		}
	}
}
