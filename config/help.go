package config

import (
	"flag"
	"fmt"
)

const HelpMessage = `
driver-twin - behavioral digital twin service for gig workers

Usage:
  twin [flags]

Flags:
  -config-path string   Path to the config yaml file (default "config.yaml")
  -help                 Show this message

Every yaml value can be overridden with its environment variable, see
config.yaml for the full list.
`

func PrintHelp() {
	if HelpMessage != "" {
		fmt.Printf("%s", HelpMessage)
	} else {
		flag.Usage()
	}
}
