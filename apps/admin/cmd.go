package main

import (
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/connectingcampuses/backend/core/user"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	db      *sql.DB
	usrRepo user.Repository
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  migrate [up|down|status]                              - run database migrations")
	fmt.Println("  adduser -name NAME -email EMAIL -phone PHONE -year YY - add a verified user; the password is prompted next")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	addUserCmd := flag.NewFlagSet("adduser", flag.ExitOnError)
	addUserName := addUserCmd.String("name", "", "The user's full name.")
	addUserEmail := addUserCmd.String("email", "", "The user's college email.")
	addUserPhone := addUserCmd.String("phone", "", "The user's 10-digit phone number.")
	addUserYear := addUserCmd.Int("year", time.Now().Year()+4, "The user's graduating year.")

	switch args[1] {
	case "migrate":
		return cli.migrate(args[2:])
	case "adduser":
		if err := addUserCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *addUserName == "" || *addUserEmail == "" || *addUserPhone == "" {
			addUserCmd.Usage()
			return errHelp
		}
		fmt.Print("Enter password:")
		pwd, err := readPasswordFunc(syscall.Stdin)
		fmt.Println()
		if err != nil {
			return err
		}
		if len(pwd) == 0 {
			addUserCmd.Usage()
			return errHelp
		}
		return cli.addUser(*addUserName, *addUserEmail, *addUserPhone, *addUserYear, string(pwd))
	default:
		cli.printUsage()
		return errHelp
	}
}
