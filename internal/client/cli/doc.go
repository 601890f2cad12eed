// Package cli provides the storefront command-line client.
//
// Without arguments it starts an interactive REPL; with a positional command
// (for example "products") it runs that single command and exits.
//
// Commands:
//   - register, login, logout, me
//   - products (alias: list, l)
//   - add-product
//
// Passwords are read from the terminal without echo and wiped after use.
package cli
