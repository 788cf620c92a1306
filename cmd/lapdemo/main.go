package main

import (
	"crypto/sha256"
	"encoding/hex"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/wrr/lapwatch"
)

func parseLogLevel(logLevelStr string) slog.Level {
	switch strings.ToLower(logLevelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "":
		// default if -log is not set
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	case "off":
		return slog.LevelError + 1
	default:
		// Use Info if logLevelStr is set to any other string
		return slog.LevelInfo
	}
}

// run times the stages of a small hashing workload and returns the
// rendered summary table.
func run(rounds int, log *slog.Logger) (string, error) {
	if rounds < 1 {
		return "", fmt.Errorf("rounds must be positive, got %d", rounds)
	}

	sw := lapwatch.New().Start()

	buf := make([]byte, 1<<20)
	for i := range buf {
		buf[i] = byte(i)
	}
	sw.Lap("fill")

	digest := sha256.Sum256(buf)
	for i := 0; i < rounds; i++ {
		digest = sha256.Sum256(digest[:])
	}
	sw.Lap("hash")

	encoded := hex.EncodeToString(digest[:])
	sw.Lap("encode")
	sw.Stop()

	log.Info("workload finished", "rounds", rounds, "digest", encoded)
	return sw.Summary()
}

func die(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}

func main() {
	roundsFlag := flag.Int("rounds", 200000, "Number of hashing rounds to time.")
	logFlag := flag.String("log", "warn", "Log level: debug, info, warn, error or off.")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "lapdemo times a hashing workload and prints a lap report\nOptions:\n")
		flag.PrintDefaults()
	}
	err := flag.CommandLine.Parse(os.Args[1:])
	if err != nil {
		die(err)
	}
	if flag.NArg() > 0 {
		die(fmt.Errorf("unrecognized arguments: %v", flag.Args()))
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(*logFlag),
	})
	log := slog.New(handler)

	summary, err := run(*roundsFlag, log)
	if err != nil {
		die(err)
	}
	fmt.Print(summary)
}
