package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/datakiln/dimgen/pkg/logger"
	"github.com/datakiln/dimgen/pkg/sink"
	"github.com/datakiln/dimgen/pkg/timedim"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fileFlag := flag.StringP("file", "f", "", "write output to a CSV file instead of stdout")
	verboseFlag := flag.Bool("verbose", false, "enable verbose (debug) logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Build a time dimension for use in a data warehouse or data mart.\n")
		fmt.Fprintf(os.Stderr, "Output is written to stdout unless a CSV file is given with -f/--file.\n\n")
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	log := logger.New(*verboseFlag)

	out, err := sink.New(log, *fileFlag)
	if err != nil {
		return err
	}

	builder, err := timedim.NewBuilder(log)
	if err != nil {
		return err
	}

	if err := out.Write(timedim.Schema.ColumnNames(), builder.Rows()); err != nil {
		return err
	}
	if *fileFlag != "" {
		log.Info("time dimension written", "file", *fileFlag, "rows", timedim.MinutesPerDay)
	}
	return nil
}
