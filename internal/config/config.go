package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"hillclimb/internal/search"
)

// Defaults used when a field is absent from the config file.
const (
	DefaultStrategy          = string(search.KindHeuristic)
	DefaultBudget            = 1
	DefaultStepsPerTick      = 5000
	DefaultTickDelay         = "10ms"
	DefaultMaxEnumerateCells = 64
)

// RunConfig holds the settings of a search run. Nil fields fall back to
// the defaults above, so partial files are fine.
type RunConfig struct {
	Strategy          *string `json:"strategy,omitempty"`
	Budget            *int    `json:"budget,omitempty"`
	StepsPerTick      *int    `json:"steps_per_tick,omitempty"`
	TickDelay         *string `json:"tick_delay,omitempty"` // duration string like "10ms"
	MaxTicks          *int    `json:"max_ticks,omitempty"`
	Render            *bool   `json:"render,omitempty"`
	LedgerPath        *string `json:"ledger_path,omitempty"`
	MaxEnumerateCells *int    `json:"max_enumerate_cells,omitempty"`
}

func ptrInt(v int) *int          { return &v }
func ptrBool(v bool) *bool       { return &v }
func ptrString(v string) *string { return &v }

// DefaultRunConfig returns a config with every field set to its default.
func DefaultRunConfig() *RunConfig {
	return &RunConfig{
		Strategy:          ptrString(DefaultStrategy),
		Budget:            ptrInt(DefaultBudget),
		StepsPerTick:      ptrInt(DefaultStepsPerTick),
		TickDelay:         ptrString(DefaultTickDelay),
		MaxTicks:          ptrInt(0),
		Render:            ptrBool(true),
		LedgerPath:        ptrString(""),
		MaxEnumerateCells: ptrInt(DefaultMaxEnumerateCells),
	}
}

// maxConfigBytes bounds how much of a config file is read.
const maxConfigBytes = 64 << 10

// LoadRunConfig reads a RunConfig from a JSON file and validates it.
func LoadRunConfig(path string) (*RunConfig, error) {
	data, err := readConfigFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &RunConfig{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("run config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("run config %s: %w", path, err)
	}
	return cfg, nil
}

// readConfigFile returns the contents of a .json file no larger than
// maxConfigBytes.
func readConfigFile(path string) ([]byte, error) {
	if filepath.Ext(path) != ".json" {
		return nil, fmt.Errorf("run config %s: not a .json file", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open run config: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxConfigBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read run config %s: %w", path, err)
	}
	if len(data) > maxConfigBytes {
		return nil, fmt.Errorf("run config %s: larger than %d bytes", path, maxConfigBytes)
	}
	return data, nil
}

// Validate checks the fields that are set.
func (c *RunConfig) Validate() error {
	if c.Strategy != nil {
		if _, err := search.ParseKind(*c.Strategy); err != nil {
			return err
		}
	}
	if c.Budget != nil && *c.Budget < 1 {
		return fmt.Errorf("budget must be at least 1, got %d", *c.Budget)
	}
	if c.StepsPerTick != nil && *c.StepsPerTick < 1 {
		return fmt.Errorf("steps_per_tick must be at least 1, got %d", *c.StepsPerTick)
	}
	if c.TickDelay != nil {
		d, err := time.ParseDuration(*c.TickDelay)
		if err != nil {
			return fmt.Errorf("invalid tick_delay %q: %w", *c.TickDelay, err)
		}
		if d < 0 {
			return fmt.Errorf("tick_delay must be non-negative, got %s", d)
		}
	}
	if c.MaxTicks != nil && *c.MaxTicks < 0 {
		return fmt.Errorf("max_ticks must be non-negative, got %d", *c.MaxTicks)
	}
	if c.MaxEnumerateCells != nil && *c.MaxEnumerateCells < 0 {
		return fmt.Errorf("max_enumerate_cells must be non-negative, got %d", *c.MaxEnumerateCells)
	}
	return nil
}

func (c *RunConfig) GetStrategy() search.Kind {
	if c.Strategy == nil {
		return search.Kind(DefaultStrategy)
	}
	k, err := search.ParseKind(*c.Strategy)
	if err != nil {
		return search.Kind(DefaultStrategy)
	}
	return k
}

func (c *RunConfig) GetBudget() int {
	if c.Budget == nil {
		return DefaultBudget
	}
	return *c.Budget
}

func (c *RunConfig) GetStepsPerTick() int {
	if c.StepsPerTick == nil {
		return DefaultStepsPerTick
	}
	return *c.StepsPerTick
}

func (c *RunConfig) GetTickDelay() time.Duration {
	s := DefaultTickDelay
	if c.TickDelay != nil {
		s = *c.TickDelay
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		d, _ = time.ParseDuration(DefaultTickDelay)
	}
	return d
}

func (c *RunConfig) GetMaxTicks() int {
	if c.MaxTicks == nil {
		return 0
	}
	return *c.MaxTicks
}

func (c *RunConfig) GetRender() bool {
	if c.Render == nil {
		return true
	}
	return *c.Render
}

func (c *RunConfig) GetLedgerPath() string {
	if c.LedgerPath == nil {
		return ""
	}
	return *c.LedgerPath
}

func (c *RunConfig) GetMaxEnumerateCells() int {
	if c.MaxEnumerateCells == nil {
		return DefaultMaxEnumerateCells
	}
	return *c.MaxEnumerateCells
}
