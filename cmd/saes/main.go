// Command saes encrypts or decrypts a single S-AES block.
//
// Usage:
//
//	saes [global options] ENC|DEC <KEY_HEX> <TEXT_HEX>
//
// The result is printed as 0XNNNN on stdout.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/ericlagergren/toycrypto/internal/config"
	"github.com/ericlagergren/toycrypto/internal/log"
)

// Version is set at link time.
var Version = "dev"

// Exit codes.
const (
	exitOK    = 0
	exitInput = 1
	exitUsage = 2
)

func main() {
	app := newApp(os.Stdout, os.Stderr)
	os.Exit(run(app, os.Args))
}

// run runs app and converts its result into an exit code.
func run(app *cli.App, args []string) int {
	err := app.Run(args)
	if err == nil {
		return exitOK
	}
	var ec cli.ExitCoder
	if errors.As(err, &ec) {
		if msg := ec.Error(); msg != "" {
			fmt.Fprintln(app.ErrWriter, msg)
		}
		return ec.ExitCode()
	}
	// urfave/cli has already printed usage for flag errors.
	return exitUsage
}

func newApp(stdout, stderr io.Writer) *cli.App {
	cfg := config.Default()

	return &cli.App{
		Name:      "saes",
		Usage:     "encrypt or decrypt one Simplified AES block",
		UsageText: "saes [global options] ENC|DEC <KEY_HEX> <TEXT_HEX>",
		Version:   Version,
		Writer:    stdout,
		ErrWriter: stderr,
		// Exit codes are chosen by run.
		ExitErrHandler:  func(*cli.Context, error) {},
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "read settings from `FILE` (default: saes.yaml if present)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "diagnostic log `LEVEL` (debug, info, warn, error)",
			},
			&cli.BoolFlag{
				Name:  "legacy",
				Usage: "treat malformed hex as 0xFFFF and ignore unknown modes",
			},
		},
		Before: func(c *cli.Context) error {
			loaded, err := config.Load(c.String("config"))
			if err != nil {
				return cli.Exit(fmt.Sprintf("saes: %v", err), exitInput)
			}
			if c.IsSet("log-level") {
				loaded.LogLevel = c.String("log-level")
			}
			if c.IsSet("legacy") {
				loaded.Legacy = c.Bool("legacy")
			}
			if err := log.SetOutput(c.App.ErrWriter, loaded.LogLevel); err != nil {
				return cli.Exit(fmt.Sprintf("saes: %v", err), exitUsage)
			}
			*cfg = *loaded
			if cfg.ConfigFile != "" {
				log.Debug().Str("file", cfg.ConfigFile).Msg("loaded config")
			}
			return nil
		},
		// Hex arguments may begin with '-', so the commands take no
		// flags of their own.
		Commands: []*cli.Command{
			{
				Name:            "ENC",
				Usage:           "encrypt TEXT_HEX with KEY_HEX",
				ArgsUsage:       "<KEY_HEX> <TEXT_HEX>",
				SkipFlagParsing: true,
				Action:          cipherCmd(cfg, encrypt),
			},
			{
				Name:            "DEC",
				Usage:           "decrypt TEXT_HEX with KEY_HEX",
				ArgsUsage:       "<KEY_HEX> <TEXT_HEX>",
				SkipFlagParsing: true,
				Action:          cipherCmd(cfg, decrypt),
			},
		},
		Action: unknownCmd(cfg),
	}
}
