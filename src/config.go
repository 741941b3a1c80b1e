package wlan

/*------------------------------------------------------------------
 *
 * Purpose:	Settings for the codec and the test programs.
 *
 * Description:	Everything has a sensible default so a config file is
 *		optional.  When one is given, only the keys present
 *		override the defaults.  e.g.
 *
 *			max_length: 1500
 *			seed: 0x5d
 *			log_level: debug
 *			rates: [6, 36, 54]
 *			lengths: [0, 1, 100, 1500]
 *			iterations: 10
 *			bit_errors: 2
 *			timestamp_format: "%H:%M:%S"
 *
 *------------------------------------------------------------------*/

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// The SIGNAL field LENGTH is 12 bits, so no PSDU can be longer than this.
const MaxPSDULength = 4095

const DefaultSeed = 0x5d // 1011101, as used in Annex G.

type Config struct {
	MaxLength       int      `yaml:"max_length"`       // Longest payload accepted by encode / decode.
	Seed            int      `yaml:"seed"`             // Scrambler initial state, 7 bits.
	LogLevel        string   `yaml:"log_level"`        // debug, info, warn, error.
	Rates           []string `yaml:"rates"`            // Rates to exercise, e.g. "36" or "54M".  Empty means all.
	Lengths         []int    `yaml:"lengths"`          // Payload lengths to exercise.
	Iterations      int      `yaml:"iterations"`       // Random payloads per rate / length, may be 0.
	BitErrors       int      `yaml:"bit_errors"`       // Channel bit errors injected per frame.
	TimestampFormat string   `yaml:"timestamp_format"` // strftime format for report lines.
}

func DefaultConfig() Config {
	return Config{
		MaxLength:  MaxPSDULength,
		Seed:       DefaultSeed,
		LogLevel:   "info",
		Lengths:    []int{0, 1, 17, 100, 1500},
		Iterations: 1,
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig.  Unknown keys are
// an error, to catch typos.
func LoadConfig(path string) (Config, error) {
	var cfg = DefaultConfig()

	var f, err = os.Open(path) //nolint:gosec
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	var dec = yaml.NewDecoder(f)
	dec.KnownFields(true)

	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if c.MaxLength < 0 || c.MaxLength > MaxPSDULength {
		return fmt.Errorf("max_length %d: %w, must be 0 to %d", c.MaxLength, ErrInvalidLength, MaxPSDULength)
	}

	if c.Seed < 0 || c.Seed > scramblerMask {
		return fmt.Errorf("seed %d: must be 0 to %d", c.Seed, scramblerMask)
	}

	if _, err := c.ParsedRates(); err != nil {
		return err
	}

	for _, n := range c.Lengths {
		if n < 0 || n > c.MaxLength {
			return fmt.Errorf("lengths: %d: %w, must be 0 to %d", n, ErrInvalidLength, c.MaxLength)
		}
	}

	if c.Iterations < 0 {
		return fmt.Errorf("iterations %d: must not be negative", c.Iterations)
	}

	if c.BitErrors < 0 {
		return fmt.Errorf("bit_errors %d: must not be negative", c.BitErrors)
	}

	return nil
}

// ParsedRates converts Rates, or returns all of them if none are listed.
func (c Config) ParsedRates() ([]Rate, error) {
	if len(c.Rates) == 0 {
		return AllRates(), nil
	}

	var rates = make([]Rate, 0, len(c.Rates))
	for _, s := range c.Rates {
		var r, err = ParseRate(s)
		if err != nil {
			return nil, fmt.Errorf("rates: %w", err)
		}
		rates = append(rates, r)
	}

	return rates, nil
}

// SeedByte is Seed as the scrambler wants it.
func (c Config) SeedByte() byte {
	return byte(c.Seed) & scramblerMask
}

// ParseSeed accepts decimal, 0x hex or 0b binary, e.g. "93", "0x5d", "0b1011101".
func ParseSeed(s string) (byte, error) {
	var v, err = strconv.ParseUint(s, 0, 8)
	if err != nil || v > scramblerMask {
		return 0, fmt.Errorf("scrambler seed %q: must be 0 to %d", s, scramblerMask)
	}

	return byte(v), nil
}
