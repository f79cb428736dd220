package main

import (
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/datakiln/dimgen/pkg/datedim"
	"github.com/datakiln/dimgen/pkg/logger"
	"github.com/datakiln/dimgen/pkg/sink"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	fileFlag := flag.StringP("file", "f", "", "write output to a CSV file instead of stdout")
	startFlag := flag.StringP("startdate", "s", datedim.DefaultStart.Format(datedim.InputDateLayout),
		"starting date of the date dimension (M/D/YYYY)")
	endFlag := flag.StringP("enddate", "e", datedim.DefaultEnd.Format(datedim.InputDateLayout),
		"ending date of the date dimension (M/D/YYYY)")
	columnsOnlyFlag := flag.BoolP("columnnamesonly", "c", false, "output the column names only")
	verboseFlag := flag.Bool("verbose", false, "enable verbose (debug) logging")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Build a date dimension for use in a data warehouse or data mart.\n")
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

	if *columnsOnlyFlag {
		return out.Write(datedim.Schema.ColumnNames(), nil)
	}

	start, err := datedim.ParseDate(*startFlag)
	if err != nil {
		return err
	}
	end, err := datedim.ParseDate(*endFlag)
	if err != nil {
		return err
	}

	builder, err := datedim.NewBuilder(log, datedim.Config{Start: start, End: end})
	if err != nil {
		return err
	}

	if err := out.Write(datedim.Schema.ColumnNames(), builder.Rows()); err != nil {
		return err
	}
	if *fileFlag != "" {
		log.Info("date dimension written", "file", *fileFlag, "rows", builder.NumRows())
	}
	return nil
}
