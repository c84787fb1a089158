package main

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/trezcool/ccdbms/core/college"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

func (cli *commandLine) dump(format string) error {
	data := cli.store.Snapshot()
	switch format {
	case formatYAML:
		enc := yaml.NewEncoder(cli.out)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return errors.Wrap(err, "encoding yaml")
		}
		return errors.Wrap(enc.Close(), "closing yaml encoder")
	case formatJSON:
		enc := json.NewEncoder(cli.out)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(data), "encoding json")
	default:
		return errors.Errorf("unknown format %q, want %s or %s", format, formatYAML, formatJSON)
	}
}

func (cli *commandLine) stats() error {
	st := cli.store.PlacementStats()
	fmt.Fprintf(cli.out, "Students: %d\n", st.TotalStudents)
	fmt.Fprintf(cli.out, "Placed: %d\n", st.Placed)
	fmt.Fprintf(cli.out, "Placement rate: %s%%\n", st.Rate)
	fmt.Fprintf(cli.out, "Highest package: %s\n", st.Highest)
	fmt.Fprintf(cli.out, "Average package: %s\n", st.Average)

	sections := []struct {
		title  string
		counts []college.Count
	}{
		{"Companies", st.Companies},
		{"Roles", st.Roles},
		{"Packages", st.Packages},
	}
	for _, sec := range sections {
		fmt.Fprintf(cli.out, "%s:\n", sec.title)
		for _, c := range sec.counts {
			fmt.Fprintf(cli.out, "  %s: %d\n", c.Label, c.Count)
		}
	}
	return nil
}
