// Command tripcal converts a fetched trip-itinerary JSON document into an
// iCalendar file next to it.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"tripcal/internal/convert"
	"tripcal/internal/ics"
	"tripcal/internal/itinerary"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <itinerary.json>\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "Converts a trip itinerary document into a calendar file.")
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}
	inputPath := flag.Arg(0)

	it, err := itinerary.Load(inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		usage()
		os.Exit(1)
	}

	conv, err := convert.New(convert.Config{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	res, err := conv.Convert(it)
	if err != nil {
		// Includes attendee contract violations; nothing is written.
		var unknown *convert.UnknownGuestError
		if errors.As(err, &unknown) {
			fmt.Fprintf(os.Stderr, "Error: itinerary is inconsistent: %v\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}

	for _, d := range res.Days {
		fmt.Printf("Processing day: %s, contains %d events.\n", d.Date, d.PlanCount)
	}

	outPath := ics.OutputPath(inputPath)
	if err := ics.WriteFile(outPath, res.Events); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Calendar has been output to %s\n", outPath)
}
