package main

import (
	"flag"
	"fmt"
	"io"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/term"

	"github.com/trezcool/ccdbms/core/college"
)

var (
	readPasswordFunc = term.ReadPassword // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	store *college.Service
	out   io.Writer
}

func (cli *commandLine) printUsage() {
	fmt.Fprintln(cli.out, "Usage:")
	fmt.Fprintln(cli.out, "  credentials - print the demo credentials")
	fmt.Fprintln(cli.out, "  login -role ROLE -username USERNAME - check a login, the password will be prompted next")
	fmt.Fprintln(cli.out, "  dump [-format yaml|json] - print the demo dataset")
	fmt.Fprintln(cli.out, "  stats - print the placement statistics")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	loginCmd := flag.NewFlagSet("login", flag.ContinueOnError)
	loginCmd.SetOutput(cli.out)
	loginRole := loginCmd.String("role", "", "One of student, faculty, admin, staff, placement.")
	loginUname := loginCmd.String("username", "", "The username. The password will be prompted next.")

	dumpCmd := flag.NewFlagSet("dump", flag.ContinueOnError)
	dumpCmd.SetOutput(cli.out)
	dumpFormat := dumpCmd.String("format", formatYAML, "Output format: yaml or json.")

	switch args[1] {
	case "credentials":
		return cli.credentials()
	case "login":
		if err := loginCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		if *loginRole == "" || *loginUname == "" {
			loginCmd.Usage()
			return errHelp
		}
		role, err := parseRole(*loginRole)
		if err != nil {
			return err
		}
		fmt.Fprint(cli.out, "Enter password:")
		pwd, err := readPasswordFunc(int(syscall.Stdin))
		fmt.Fprintln(cli.out)
		if err != nil {
			return errors.Wrap(err, "reading password")
		}
		if len(pwd) == 0 {
			loginCmd.Usage()
			return errHelp
		}
		return cli.login(*loginUname, string(pwd), role)
	case "dump":
		if err := dumpCmd.Parse(args[2:]); err != nil {
			return errHelp
		}
		return cli.dump(*dumpFormat)
	case "stats":
		return cli.stats()
	default:
		cli.printUsage()
		return errHelp
	}
}
