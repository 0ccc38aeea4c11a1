package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/macropower/chemicaljson/internal/cli"
)

const (
	cmdName = "cjson"

	shortDesc = "The Chemical JSON Command Line Interface (CLI)."
	longDesc  = `The Chemical JSON (CJSON) Command Line Interface (CLI).

Chemical JSON is a JSON document format describing one molecular or periodic
system: atoms, bonds, properties, vibrations, unit cells, basis sets,
orbitals and spectra.

This CLI emits the Chemical JSON schema and validates documents against it.
Documents may be stored as JSON or YAML, optionally gzip-compressed.
`
)

func main() {
	cmd := cli.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
