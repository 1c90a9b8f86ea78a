// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"github.com/jessevdk/go-flags"
)

// Option defines command line options.
type Option struct {
	ConfPath string `short:"c" long:"config" description:"config file to read" default:"/etc/gipreport/gipreport.conf"`
	Sites    string `short:"s" long:"sites" description:"comma separated list of sites to report (overrides config)"`
	Debug    bool   `short:"d" long:"debug" description:"debug mode"`
	Version  bool   `short:"v" long:"version" description:"display the version and exit"`
}

// Parse returns parsed command-line flags in Option struct
func Parse(args []string) (*Option, error) {
	opt := &Option{}
	parser := flags.NewParser(opt, flags.Default)
	parser.Name = "gipreport"
	parser.Usage = "[OPTIONS]"

	if _, err := parser.ParseArgs(args); err != nil {
		return nil, err
	}

	return opt, nil
}

func IsHelp(err error) bool {
	return flags.WroteHelp(err)
}
