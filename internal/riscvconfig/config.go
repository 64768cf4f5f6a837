// Package riscvconfig loads assembler configuration from TOML, grounded
// on the BurntSushi/toml dependency surfaced by the retrieval pack's ARM
// emulator. It exists to resolve the one open question spec.md leaves
// unanswered: the default width for `la rd, symbol` when the symbol has
// no immediate to measure (spec §9).
package riscvconfig

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the full set of assembler-wide knobs.
type Config struct {
	// XLEN is the target integer register width: 32, 64, or 128. It only
	// affects the OP-IMM shamt field width for native (non -w/-d) shifts.
	XLEN int `toml:"xlen"`

	// LaDefaultWidth resolves spec §9's open question for `la rd, sym`
	// with no immediate: the width (16, 32 or 64) used for that form.
	// It defaults to 32; there is no code-model setting, so a 64-bit
	// default is chosen by setting this to 64.
	LaDefaultWidth int `toml:"la_default_width"`
}

// Default returns the configuration this assembler uses when no file is
// loaded: a 64-bit target with the 32-bit la default.
func Default() Config {
	return Config{XLEN: 64, LaDefaultWidth: 32}
}

// Load reads a TOML configuration file, filling in defaults for any key
// left unset.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to load assembler config: %w", err)
	}
	if cfg.XLEN == 0 {
		cfg.XLEN = 64
	}
	if cfg.LaDefaultWidth == 0 {
		cfg.LaDefaultWidth = 32
	}
	return cfg, nil
}
