// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gridcf/gipreport/logger"
	"github.com/gridcf/gipreport/pkg/cli"
	"github.com/gridcf/gipreport/report"
	"github.com/gridcf/gipreport/report/ceusage"
	"github.com/gridcf/gipreport/report/sebyvo"
)

var version = "v0.1.0"

func main() {
	opts := parseCLI()

	if opts.Version {
		fmt.Printf("gipreport, version: %s\n", version)
		return
	}

	if opts.Debug {
		logger.Level.Set(slog.LevelDebug)
	}

	log := logger.New().With(slog.String("component", "main"))

	conf, err := loadConfig(opts.ConfPath)
	if err != nil {
		log.Errorf("config: %v", err)
		os.Exit(1)
	}

	if opts.Sites != "" {
		conf.Sites = strings.Split(opts.Sites, ",")
	}
	if len(conf.Sites) == 0 {
		log.Error("no sites configured (use --sites or the config file)")
		os.Exit(1)
	}

	ctx := context.Background()
	failed := false

	// One report run per site, then the SE listing; strictly sequential.
	for _, r := range buildReporters(conf) {
		if err := runReport(ctx, log, r); err != nil {
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}

func buildReporters(conf config) []report.Reporter {
	var reporters []report.Reporter

	for _, site := range conf.Sites {
		r := ceusage.New()
		r.URL = conf.URL
		r.Site = strings.TrimSpace(site)
		r.Strict = conf.Strict
		if conf.Timeout > 0 {
			r.Timeout = conf.Timeout
		}
		r.Logger = logger.New().With(slog.String("report", r.Name()))
		reporters = append(reporters, r)
	}

	se := sebyvo.New()
	se.BinaryPath = conf.BinaryPath
	se.BDII = conf.BDII
	if len(conf.VOs) > 0 {
		se.VOs = conf.VOs
	}
	if conf.Timeout > 0 {
		se.Timeout = conf.Timeout
	}
	se.Logger = logger.New().With(slog.String("report", se.Name()))
	reporters = append(reporters, se)

	return reporters
}

// runReport generates one report and writes it to stdout. A failed report is
// logged with the failure reason and the identifying key of the offending
// record; the remaining reports still run.
func runReport(ctx context.Context, log *logger.Logger, r report.Reporter) error {
	if err := r.Init(); err != nil {
		log.Errorf("report '%s': init: %v", r.Name(), err)
		return err
	}

	out, err := r.Generate(ctx)
	if err != nil {
		log.Errorf("report '%s': %v", r.Name(), err)
		return err
	}

	fmt.Printf("=== %s ===\n%s", r.Name(), out)

	return nil
}

func parseCLI() *cli.Option {
	opt, err := cli.Parse(os.Args)
	if err != nil {
		if cli.IsHelp(err) {
			os.Exit(0)
		}
		os.Exit(1)
	}

	return opt
}
