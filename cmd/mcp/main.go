package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/will8807/ggg-luck/internal/logger"
	"github.com/will8807/ggg-luck/internal/processor"
	"github.com/will8807/ggg-luck/pkg/luck"
)

func main() {
	debug := flag.Bool("debug", false, "Enable debug logging")
	leagueKey := flag.String("league", "", "Yahoo league key, eg 461.l.12345 (overrides YAHOO_LEAGUE_KEY)")
	inputFile := flag.String("input", "", "Input file path (if not provided, arguments or stdin will be used)")
	outputFile := flag.String("output", "", "Output file path (if not provided, stdout will be used)")
	flag.Parse()

	logger.SetShowDateTime(true)
	if *debug {
		logger.SetLevel(logger.DEBUG)
	}

	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, relying on environment")
	}
	luck.UpdateConfig(luck.DefaultLuckConfig())
	if *leagueKey != "" {
		luck.SetLeagueKey(*leagueKey)
	}

	if err := luck.EnsureSchema(); err != nil {
		logger.Warn("Could not initialise cache database, continuing without cache:", err)
	}
	defer luck.CloseDatabase()

	// Determine input source
	var input []byte
	var err error
	if *inputFile != "" {
		input, err = os.ReadFile(*inputFile)
		if err != nil {
			logger.Fatal("Failed to read input file", err)
		}
	} else {
		args := flag.Args()
		if len(args) > 0 {
			// Build a request from the command line arguments
			query := strings.Join(args, " ")
			requestID := fmt.Sprintf("cli-%d", os.Getpid())
			request := map[string]string{
				"query":     query,
				"requestId": requestID,
			}
			input, err = json.Marshal(request)
			if err != nil {
				logger.Fatal("Failed to create request from command line arguments", err)
			}
		} else {
			input, err = io.ReadAll(os.Stdin)
			if err != nil {
				logger.Fatal("Failed to read from stdin", err)
			}
		}
	}

	result, err := processor.ProcessRequest(input)
	if err != nil {
		logger.Error("Failed to process request", err)
		os.Exit(1)
	}

	if *outputFile != "" {
		err = os.WriteFile(*outputFile, result, 0644)
		if err != nil {
			logger.Fatal("Failed to write to output file", err)
		}
	} else {
		fmt.Println(string(result))
	}
}
