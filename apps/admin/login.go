package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/trezcool/ccdbms/core"
	"github.com/trezcool/ccdbms/core/session"
)

// minSuggestionRatio is the similarity above which an unknown role gets a suggestion.
const minSuggestionRatio = 0.6

var errLoginFailed = errors.New("invalid credentials")

func (cli *commandLine) credentials() error {
	w := tabwriter.NewWriter(cli.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ROLE\tUSERNAME\tPASSWORD\tID\tNAME")
	for _, c := range session.DemoCredentials {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", c.Role, c.Username, c.Password, c.ID, c.Name)
	}
	return w.Flush()
}

func (cli *commandLine) login(uname, pwd string, role session.Role) error {
	mgr := session.NewManager(session.DemoCredentials)
	if !mgr.Login(uname, pwd, role) {
		return errLoginFailed
	}
	id, _ := mgr.Current()
	fmt.Fprintf(cli.out, "Logged in as %s (%s, %s)\n", id.Name, id.ID, id.Role.Label())
	return nil
}

// parseRole is session.ParseRole with a suggestion for misspelled roles.
func parseRole(s string) (session.Role, error) {
	role, err := session.ParseRole(s)
	if err == nil {
		return role, nil
	}
	if match, ok := suggestRole(s); ok {
		return "", errors.Wrapf(err, "%q, did you mean %q?", s, match)
	}
	return "", errors.Wrapf(err, "%q", s)
}

func suggestRole(s string) (session.Role, bool) {
	s = core.CleanString(s, true /* lower */)
	var (
		best      session.Role
		bestRatio float64
	)
	for _, role := range session.AllRoles {
		ratio := difflib.NewMatcher(strings.Split(s, ""), strings.Split(role.String(), "")).Ratio()
		if ratio > bestRatio {
			best, bestRatio = role, ratio
		}
	}
	return best, bestRatio >= minSuggestionRatio
}
