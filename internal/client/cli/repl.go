package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/netops/internal/client/models"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	SetFullName(name string)
	SetEmail(email string)
	SetPassword() error
	Register()
	Login()
	Profile()
	Wait()
	State() models.UiState
}

const helpText = "Available commands: name <full name>, email <address>, password, register, login, profile, wait, status, exit"

// runREPL reads one command per line from scanner and maps it onto a
// presentation event. The loop exits on EOF or "exit"/"quit".
//
//	name <full name>   set the full name
//	email <address>    set the email
//	password           prompt for the password (no echo)
//	register           register with the current fields
//	login              log in with email and password
//	profile            fetch the profile of the logged-in user
//	wait               block until pending requests finish
//	status             print the current form and status
//	help               show available commands
//	exit | quit        leave the program
func runREPL(a execIface, w io.Writer, scanner *bufio.Scanner) {
	for {
		fmt.Fprint(w, "netops> ")
		if !scanner.Scan() {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			fmt.Fprintln(w, helpText)

		case "name":
			if len(args) == 0 {
				fmt.Fprintln(w, "Usage: name <full name>")
				continue
			}
			a.SetFullName(strings.Join(args, " "))

		case "email":
			if len(args) != 1 {
				fmt.Fprintln(w, "Usage: email <address>")
				continue
			}
			a.SetEmail(args[0])

		case "password":
			if err := a.SetPassword(); err != nil {
				fmt.Fprintln(w, "error:", err)
			}

		case "register":
			a.Register()

		case "login":
			a.Login()

		case "profile":
			a.Profile()

		case "wait":
			a.Wait()

		case "status":
			printStatus(w, a.State())

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}

func printStatus(w io.Writer, s models.UiState) {
	userID := "-"
	if s.UserID != nil {
		userID = *s.UserID
	}
	password := ""
	if s.Password != "" {
		password = "(set)"
	}
	fmt.Fprintf(w, "name: %s\nemail: %s\npassword: %s\nuser id: %s\nstatus: %s\n",
		s.FullName, s.Email, password, userID, s.AuthState.Display())
}
