// Package config loads holdem-advisor configuration from an HCL file.
// Every setting has a sensible default; an absent file yields the default
// configuration.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/holdem-advisor/internal/advisor"
)

// Config represents the complete advisor configuration
type Config struct {
	Strategy *StrategySettings `hcl:"strategy,block"`
	Table    *TableSettings    `hcl:"table,block"`
	Server   *ServerSettings   `hcl:"server,block"`
}

// StrategySettings tunes the recommendation heuristic
type StrategySettings struct {
	BaseRequiredEquity float64 `hcl:"base_required_equity,optional"`
	MultiwayStep       float64 `hcl:"multiway_step,optional"`
	LargeEdgeGap       float64 `hcl:"large_edge_gap,optional"`
	SlightEdgeGap      float64 `hcl:"slight_edge_gap,optional"`
	MarginalGap        float64 `hcl:"marginal_gap,optional"`
	WeakHighCardCutoff float64 `hcl:"weak_high_card_cutoff,optional"`
}

// TableSettings sets the default table situation for omitted CLI flags
// and incoming requests.
type TableSettings struct {
	Position string  `hcl:"position,optional"`
	Stack    float64 `hcl:"stack,optional"`
	Pot      float64 `hcl:"pot,optional"`
	Players  int     `hcl:"players,optional"`
}

// ServerSettings configures the advice service
type ServerSettings struct {
	Address     string `hcl:"address,optional"`
	IdleTimeout int    `hcl:"idle_timeout,optional"` // seconds
}

// DefaultConfig returns the stock configuration
func DefaultConfig() *Config {
	return &Config{
		Strategy: &StrategySettings{
			BaseRequiredEquity: 0.35,
			MultiwayStep:       0.03,
			LargeEdgeGap:       0.15,
			SlightEdgeGap:      0.05,
			MarginalGap:        0.05,
			WeakHighCardCutoff: 0.7,
		},
		Table: &TableSettings{
			Position: "BTN",
			Stack:    100,
			Pot:      10,
			Players:  6,
		},
		Server: &ServerSettings{
			Address:     "localhost:8080",
			IdleTimeout: 120,
		},
	}
}

// Load reads configuration from an HCL file. A missing file returns the
// defaults; settings omitted from the file keep their default values.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", diags.Error())
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// applyDefaults fills missing blocks and zero-value settings. Zero is not
// a meaningful value for any threshold, so it always means "unset".
func applyDefaults(cfg *Config) {
	def := DefaultConfig()

	if cfg.Strategy == nil {
		cfg.Strategy = def.Strategy
	} else {
		s, d := cfg.Strategy, def.Strategy
		if s.BaseRequiredEquity == 0 {
			s.BaseRequiredEquity = d.BaseRequiredEquity
		}
		if s.MultiwayStep == 0 {
			s.MultiwayStep = d.MultiwayStep
		}
		if s.LargeEdgeGap == 0 {
			s.LargeEdgeGap = d.LargeEdgeGap
		}
		if s.SlightEdgeGap == 0 {
			s.SlightEdgeGap = d.SlightEdgeGap
		}
		if s.MarginalGap == 0 {
			s.MarginalGap = d.MarginalGap
		}
		if s.WeakHighCardCutoff == 0 {
			s.WeakHighCardCutoff = d.WeakHighCardCutoff
		}
	}

	if cfg.Table == nil {
		cfg.Table = def.Table
	} else {
		tbl, d := cfg.Table, def.Table
		if tbl.Position == "" {
			tbl.Position = d.Position
		}
		if tbl.Stack == 0 {
			tbl.Stack = d.Stack
		}
		if tbl.Pot == 0 {
			tbl.Pot = d.Pot
		}
		if tbl.Players == 0 {
			tbl.Players = d.Players
		}
	}

	if cfg.Server == nil {
		cfg.Server = def.Server
	} else {
		srv, d := cfg.Server, def.Server
		if srv.Address == "" {
			srv.Address = d.Address
		}
		if srv.IdleTimeout == 0 {
			srv.IdleTimeout = d.IdleTimeout
		}
	}
}

// ToStrategy converts the settings into advisor thresholds.
func (c *Config) ToStrategy() advisor.Strategy {
	return advisor.Strategy{
		BaseRequiredEquity: c.Strategy.BaseRequiredEquity,
		MultiwayStep:       c.Strategy.MultiwayStep,
		LargeEdgeGap:       c.Strategy.LargeEdgeGap,
		SlightEdgeGap:      c.Strategy.SlightEdgeGap,
		MarginalGap:        c.Strategy.MarginalGap,
		WeakHighCardCutoff: c.Strategy.WeakHighCardCutoff,
	}
}

// DefaultSituation converts the table settings into a default situation.
func (c *Config) DefaultSituation() advisor.Situation {
	return advisor.Situation{
		Position: c.Table.Position,
		StackBB:  c.Table.Stack,
		PotBB:    c.Table.Pot,
		Players:  c.Table.Players,
	}
}
