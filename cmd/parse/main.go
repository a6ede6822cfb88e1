package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"listingparser/internal/config"
	"listingparser/internal/database"
	"listingparser/internal/listings"
	"listingparser/internal/logger"
	"listingparser/internal/vehicle"
)

const usage = `Usage: parse <command> [args]
Commands:
  parse [title...]  - Parse titles given as arguments, or one per line on stdin
  list [make]       - Show saved listings, optionally only one make
  count             - Show the number of saved listings
  reparse           - Re-run the title parser over every saved listing`

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(1)
	}

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "invalid configuration:", err)
		os.Exit(1)
	}
	// Logs go to stderr so stdout stays machine readable.
	logger.Setup(logger.Options{Level: cfg.Log.Level, Format: "console", Output: os.Stderr})

	command, args := os.Args[1], os.Args[2:]

	if command == "parse" {
		if err := runParse(args, os.Stdin, os.Stdout); err != nil {
			log.Fatal().Err(err).Msg("parse failed")
		}
		return
	}

	db, err := database.NewDatabase(cfg.DB.Path)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DB.Path).Msg("failed to open listing database")
	}
	defer db.Close()

	svc := listings.NewService(db, nil)

	switch command {
	case "list":
		err = runList(svc.Store(), strings.Join(args, " "), os.Stdout)
	case "count":
		var count int
		if count, err = db.CountListings(); err == nil {
			fmt.Printf("%d listings saved\n", count)
		}
	case "reparse":
		var summary listings.ReparseSummary
		if summary, err = svc.Reparse(); err == nil {
			fmt.Printf("Reparsed %d listings: %d updated, %d without title\n", summary.Total, summary.Updated, summary.Skipped)
		}
	default:
		fmt.Printf("Unknown command: %s\n\n%s\n", command, usage)
		os.Exit(1)
	}

	if err != nil {
		log.Fatal().Err(err).Str("command", command).Msg("command failed")
	}
}

// runParse writes one JSON result per title. Titles come from args, or from
// in (one per line, blank lines skipped) when args is empty.
func runParse(args []string, in io.Reader, out io.Writer) error {
	enc := json.NewEncoder(out)

	if len(args) > 0 {
		return enc.Encode(vehicle.ParseTitle(strings.Join(args, " ")))
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := enc.Encode(vehicle.ParseTitle(line)); err != nil {
			return err
		}
	}
	return scanner.Err()
}

// runList prints the one-line summary of each saved listing. A make filter
// accepts aliases ("chevy") the same way the HTTP listing filter does.
func runList(store listings.Store, filter string, out io.Writer) error {
	mk := ""
	if filter != "" {
		mk, _ = vehicle.ResolveMake(filter)
	}

	saved, err := store.ListListings(mk)
	if err != nil {
		return err
	}
	if len(saved) == 0 {
		fmt.Fprintln(out, "No listings saved")
		return nil
	}

	for i, l := range saved {
		fmt.Fprintf(out, "%d. %s\n", i+1, l.Summary())
		if l.URL != "" {
			fmt.Fprintf(out, "   %s\n", l.URL)
		}
	}
	return nil
}
