package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/aerowx/metar/internal/fetch"
	"github.com/aerowx/metar/internal/format"
	"github.com/aerowx/metar/pkg/metar"
)

const (
	awcBaseURL   = "https://aviationweather.gov/api/data/metar"
	tgftpBaseURL = "https://tgftp.nws.noaa.gov/data/observations/metar/stations"

	fetchTimeout = 10 * time.Second
)

func main() {
	noRawFlag := flag.Bool("no-raw", false, "Hide the raw report")
	jsonFlag := flag.Bool("json", false, "Emit the decoded report as JSON")
	flagNoColor := flag.Bool("no-color", false, "Disable color output")
	flag.Parse()

	if *flagNoColor || *jsonFlag {
		color.NoColor = true
	}

	raw, fromStdin := readFromStdin()
	if !fromStdin {
		stationCode, err := stationFromArgsOrPrompt(flag.Args())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		raw, err = fetchReport(stationCode)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if !*noRawFlag && !*jsonFlag {
		fmt.Println("Raw METAR:")
		fmt.Println(raw.Text)
		fmt.Println()
	}

	decoder := metar.NewDecoder(metar.WithLogger(discardLogger()))
	report, anomalies, err := decoder.Decode(raw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *jsonFlag {
		out := struct {
			Report    *metar.DecodedReport `json:"report"`
			Anomalies []metar.Anomaly      `json:"anomalies,omitempty"`
		}{report, anomalies}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println("Decoded METAR:")
	fmt.Print(format.Report(report, time.Now().UTC()))

	for _, a := range anomalies {
		fmt.Printf("Note: %s token %q dropped: %s\n", a.Field, a.Token, a.Reason)
	}
}

// readFromStdin reads a raw report if one is piped in.
func readFromStdin() (metar.RawReport, bool) {
	info, err := os.Stdin.Stat()
	if err != nil || info.Mode()&os.ModeCharDevice != 0 {
		return metar.RawReport{}, false
	}

	scanner := bufio.NewScanner(os.Stdin)
	if scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			return metar.RawReport{Text: line}, true
		}
	}
	return metar.RawReport{}, false
}

// stationFromArgsOrPrompt takes the station code from the first argument, or
// prompts for one when no arguments were given.
func stationFromArgsOrPrompt(args []string) (string, error) {
	if len(args) > 0 {
		return normalizeStation(args[0])
	}

	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Enter ICAO airport code (e.g., KJFK, EGLL): ")
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return normalizeStation(input)
}

func normalizeStation(s string) (string, error) {
	stationCode := strings.ToUpper(strings.TrimSpace(s))
	if !metar.ValidStation(stationCode) {
		return "", fmt.Errorf("invalid station code: must be 4 characters (e.g. KJFK)")
	}
	return stationCode, nil
}

func fetchReport(stationCode string) (metar.RawReport, error) {
	fmt.Fprintf(os.Stderr, "Fetching METAR for %s...\n", stationCode)

	client := fetch.NewFailover(
		fetch.NewAWCClient(awcBaseURL, fetchTimeout),
		fetch.NewTGFTPClient(tgftpBaseURL, fetchTimeout),
		discardLogger(),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*fetchTimeout)
	defer cancel()
	return client.Fetch(ctx, stationCode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
