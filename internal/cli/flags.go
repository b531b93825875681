package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
)

// nameList collects a repeatable string flag. Each value may also hold
// several comma-separated names.
type nameList []string

func (l *nameList) String() string {
	return strings.Join(*l, ",")
}

func (l *nameList) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			*l = append(*l, part)
		}
	}
	return nil
}

// CalculateFlags holds the CLI flags for the calculate command.
type CalculateFlags struct {
	Price          float64
	LeadGenerators []string
	Telemarketing  string
	Conversion     string
	Date           string
	JSON           bool
}

// ParseCalculateFlags parses args for the calculate command.
func ParseCalculateFlags(args []string, output io.Writer) (*CalculateFlags, error) {
	flags := &CalculateFlags{}
	var leads nameList

	fs := flag.NewFlagSet("calculate", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Float64Var(&flags.Price, "price", 0, "Property sale price in Rupiah")
	fs.Var(&leads, "lead", "Lead generator name (repeatable, or comma-separated)")
	fs.StringVar(&flags.Telemarketing, "telemarketing", "", "Telemarketing staff name")
	fs.StringVar(&flags.Conversion, "conversion", "", "Lead conversion staff name")
	fs.StringVar(&flags.Date, "date", "", "Calculation date YYYY-MM-DD (default today)")
	fs.BoolVar(&flags.JSON, "json", false, "Print the breakdown as JSON")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	flags.LeadGenerators = leads
	return flags, nil
}

// ServeFlags holds the CLI flags for the serve command.
type ServeFlags struct {
	Port int
}

// ParseServeFlags parses args for the serve command. defaultPort comes from config.
func ParseServeFlags(args []string, defaultPort int, output io.Writer) (*ServeFlags, error) {
	flags := &ServeFlags{}

	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.IntVar(&flags.Port, "port", defaultPort, "Port to listen on")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return flags, nil
}

// RosterImportFlags holds the CLI flags for the roster import command.
type RosterImportFlags struct {
	From string
}

// ParseRosterImportFlags parses args for the roster import command.
func ParseRosterImportFlags(args []string, output io.Writer) (*RosterImportFlags, error) {
	flags := &RosterImportFlags{}

	fs := flag.NewFlagSet("roster import", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&flags.From, "from", "", "YAML roster file to import")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if flags.From == "" {
		return nil, errors.New("-from is required")
	}
	return flags, nil
}
