package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ericlagergren/toycrypto/internal/config"
	"github.com/ericlagergren/toycrypto/internal/hex16"
	"github.com/ericlagergren/toycrypto/internal/log"
	"github.com/ericlagergren/toycrypto/saes"
)

type mode int

const (
	encrypt mode = iota
	decrypt
)

func (m mode) String() string {
	if m == decrypt {
		return "DEC"
	}
	return "ENC"
}

func cipherCmd(cfg *config.Config, m mode) cli.ActionFunc {
	return func(c *cli.Context) error {
		if c.NArg() != 2 {
			return cli.Exit(fmt.Sprintf("saes: %s expects <KEY_HEX> <TEXT_HEX>, got %d argument(s)",
				m, c.NArg()), exitUsage)
		}
		key, text, err := parseArgs(cfg, c.Args().Get(0), c.Args().Get(1))
		if err != nil {
			return cli.Exit(fmt.Sprintf("saes: %v", err), exitInput)
		}

		rk := saes.ExpandKey(key)
		log.Debug().
			Stringer("mode", m).
			Str("key", hex16.Format(key)).
			Str("text", hex16.Format(text)).
			Str("key1", hex16.Format(rk[1])).
			Str("key2", hex16.Format(rk[2])).
			Msg("running cipher")

		var out uint16
		if m == decrypt {
			out = saes.DecryptWithKeys(text, &rk)
		} else {
			out = saes.EncryptWithKeys(text, &rk)
		}
		fmt.Fprintln(c.App.Writer, hex16.Format(out))
		return nil
	}
}

// unknownCmd handles a mode other than ENC or DEC.
func unknownCmd(cfg *config.Config) cli.ActionFunc {
	return func(c *cli.Context) error {
		if !c.Args().Present() {
			_ = cli.ShowAppHelp(c)
			return cli.Exit("", exitUsage)
		}
		name := c.Args().First()
		if cfg.Legacy {
			// Inputs are still parsed so that malformed hex is
			// reported, but nothing is printed.
			if c.NArg() == 3 {
				_, _, _ = parseArgs(cfg, c.Args().Get(1), c.Args().Get(2))
			}
			log.Debug().Str("mode", name).Msg("ignoring unknown mode")
			return nil
		}
		return cli.Exit(fmt.Sprintf("saes: unknown mode %q (want ENC or DEC)", name), exitUsage)
	}
}

// parseArgs parses the key and text. Each malformed argument is
// reported. In legacy mode a malformed argument becomes
// hex16.Invalid and no error is returned.
func parseArgs(cfg *config.Config, keyHex, textHex string) (uint16, uint16, error) {
	key, kerr := parseHex(cfg, "KEY_HEX", keyHex)
	text, terr := parseHex(cfg, "TEXT_HEX", textHex)
	if cfg.Legacy {
		return key, text, nil
	}
	return key, text, errors.Join(kerr, terr)
}

func parseHex(cfg *config.Config, name, s string) (uint16, error) {
	parse := hex16.Parse
	if cfg.Legacy {
		parse = hex16.ParseLegacy
	}
	x, err := parse(s)
	if err != nil {
		var se *hex16.SyntaxError
		if errors.As(err, &se) {
			log.Error().
				Str("arg", name).
				Int("offset", se.Pos).
				Msgf("Invalid character in hexadecimal string: %c", se.Char)
		}
		return x, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	return x, nil
}
