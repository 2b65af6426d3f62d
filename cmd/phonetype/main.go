// Package main implements the phonetype CLI tool. It parses phone
// numbers from arguments or stdin and reports the resolved country
// code, national number, and country metadata.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/gophone/phonetype"
)

const (
	version = "0.1.0"
	usage   = `phonetype - E.164 phone number parser

Usage:
  phonetype [options] <number>...
  phonetype [options] -          (read numbers from stdin, one per line)
  cat numbers.txt | phonetype -

Examples:
  phonetype +1234567890
  phonetype -sep " " +4915123456789 +447912345678
  phonetype -loose -region MX "111 111 1111"
  phonetype -output json +12425551234

Options:
`
)

// OutputFormat specifies the output format.
type OutputFormat string

// Output format constants.
const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
)

// Config holds CLI configuration.
type Config struct {
	Region      string
	Separator   string
	Output      OutputFormat
	Loose       bool
	Verbose     bool
	ShowVersion bool
	Help        bool
	Numbers     []string
}

// NumberOutput represents one parsed number in JSON output.
type NumberOutput struct {
	Input       string `json:"input"`
	Valid       bool   `json:"valid"`
	CountryCode string `json:"countryCode,omitempty"`
	Number      string `json:"number,omitempty"`
	Country     string `json:"country,omitempty"`
	ISOCode     string `json:"isoCode,omitempty"`
	Formatted   string `json:"formatted,omitempty"`
	Error       string `json:"error,omitempty"`
	ErrorKind   string `json:"errorKind,omitempty"`
}

func main() {
	config := parseFlags()

	if config.ShowVersion {
		fmt.Printf("phonetype v%s\n", version)
		os.Exit(0)
	}

	if config.Help || len(config.Numbers) == 0 {
		flag.Usage()
		os.Exit(0)
	}

	os.Exit(run(config))
}

func parseFlags() *Config {
	config := &Config{}

	var output string
	flag.StringVar(&config.Region, "region", phonetype.DefaultRegion, "Fallback ISO 3166-1 region for loose numbers")
	flag.StringVar(&config.Separator, "sep", "-", "Separator for the formatted national number")
	flag.StringVar(&output, "output", "text", "Output format: text, json")
	flag.BoolVar(&config.Loose, "loose", false, "Validate inputs as free-form numbers instead of strict E.164")
	flag.BoolVar(&config.Verbose, "verbose", false, "Log diagnostics and a parse summary to stderr")
	flag.BoolVar(&config.ShowVersion, "v", false, "Show version")
	flag.BoolVar(&config.Help, "help", false, "Show help")

	flag.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flag.PrintDefaults()
	}

	flag.Parse()

	switch strings.ToLower(output) {
	case "json":
		config.Output = OutputJSON
	default:
		config.Output = OutputText
	}

	config.Numbers = flag.Args()
	return config
}

func run(config *Config) int {
	logger := newLogger(config.Verbose)
	metrics := phonetype.NewMetrics()

	numbers, err := collectNumbers(config.Numbers)
	if err != nil {
		logger.Error().Err(err).Msg("failed to read input")
		fmt.Fprintf(os.Stderr, "phonetype: %v\n", err)
		return 2
	}

	var (
		outputs []NumberOutput
		failed  int
	)
	for _, number := range numbers {
		out := parseOne(config, logger, metrics, number)
		if !out.Valid {
			failed++
		}
		outputs = append(outputs, out)
	}

	switch config.Output {
	case OutputJSON:
		printJSON(outputs)
	default:
		printText(outputs)
	}

	if config.Verbose {
		logger.Info().
			Uint64("total", metrics.ParsesTotal()).
			Uint64("ok", metrics.ParsesOK()).
			Float64("successRate", metrics.SuccessRate()).
			Dur("avg", metrics.AverageParseTime()).
			Msg("parse summary")
	}

	if failed > 0 {
		return 1
	}
	return 0
}

// collectNumbers expands a "-" argument into lines read from stdin.
func collectNumbers(args []string) ([]string, error) {
	var numbers []string
	for _, arg := range args {
		if arg != "-" {
			numbers = append(numbers, arg)
			continue
		}
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line != "" {
				numbers = append(numbers, line)
			}
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	}
	return numbers, nil
}

func parseOne(config *Config, logger zerolog.Logger, metrics *phonetype.Metrics, number string) NumberOutput {
	start := time.Now()

	var (
		p   phonetype.Phone
		err error
	)
	if config.Loose {
		p, err = phonetype.New(number, phonetype.WithRegion(config.Region))
	} else {
		p, err = phonetype.FromE164(number)
	}
	metrics.RecordParse(time.Since(start), err)

	if err != nil {
		logger.Debug().Str("input", number).Str("kind", string(phonetype.Kind(err))).Msg("rejected")
		return NumberOutput{
			Input:     number,
			Error:     err.Error(),
			ErrorKind: string(phonetype.Kind(err)),
		}
	}

	out := NumberOutput{
		Input:  number,
		Valid:  true,
		Number: p.Number(),
	}
	if code, ok := p.CountryCode(); ok {
		out.CountryCode = code
	}
	if info := p.CountryInfo(); info != nil {
		out.Country = info.Name
		out.ISOCode = info.ISOCode
	}
	sep := []rune(config.Separator)
	if len(sep) > 0 {
		out.Formatted = p.NumberWithSeparator(sep[0])
	}

	logger.Debug().
		Str("input", number).
		Str("countryCode", out.CountryCode).
		Str("iso", out.ISOCode).
		Msg("parsed")
	return out
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func printText(outputs []NumberOutput) {
	for _, out := range outputs {
		if !out.Valid {
			fmt.Printf("%s: INVALID (%s)\n", out.Input, out.ErrorKind)
			continue
		}
		fmt.Printf("%s\n", out.Input)
		if out.CountryCode != "" {
			fmt.Printf("  country code: %s\n", out.CountryCode)
			fmt.Printf("  country:      %s (%s)\n", out.Country, out.ISOCode)
		} else {
			fmt.Printf("  country code: (unresolved)\n")
		}
		fmt.Printf("  number:       %s\n", out.Number)
		if out.Formatted != "" {
			fmt.Printf("  formatted:    %s\n", out.Formatted)
		}
	}
}

func printJSON(outputs []NumberOutput) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(outputs); err != nil {
		fmt.Fprintf(os.Stderr, "phonetype: failed to encode output: %v\n", err)
	}
}
