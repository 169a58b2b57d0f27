// Package cmd implements the CLI application to maintain the fund dataset.
package cmd

import (
	"flag"

	"github.com/fondlista/funds"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&updateCmd{}, "pipeline")

	c.Register(&showCmd{}, "display")
	c.Register(&assistCmd{}, "display")

	c.Register(&searchCmd{}, "provider")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the pipeline configuration file (YAML).\n Defaults to \""+funds.DefaultConfigPath+"\" in the working directory when present.")

// LoadConfig resolves the pipeline configuration from the -config flag.
func LoadConfig() (*funds.Config, error) {
	return funds.LoadConfig(*configFile)
}
