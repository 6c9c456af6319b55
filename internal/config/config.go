package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ericogr/gridstrike/internal/game"

	"github.com/caarlos0/env/v11"
)

type unitEntry struct {
	Name            string  `json:"name"`
	Kind            string  `json:"kind"`
	Cost            int     `json:"cost"`
	SizeX           int     `json:"size_x"`
	SizeY           int     `json:"size_y"`
	Range           int     `json:"range"`
	AreaX           int     `json:"area_x"`
	AreaY           int     `json:"area_y"`
	ManaCost        int     `json:"mana_cost"`
	Coverage        int     `json:"coverage"`
	InterceptChance float64 `json:"intercept_chance"`
}

type rawConfig struct {
	GridSize             int            `json:"grid_size"`
	BuildBudget          int            `json:"build_budget"`
	Mana                 game.ManaRules `json:"mana"`
	TurnDurationSeconds  int            `json:"turn_duration_seconds"`
	BuildDurationSeconds int            `json:"build_duration_seconds"`
	UnitList             []unitEntry    `json:"unit_list"`
	DefaultLauncher      string         `json:"default_launcher"`
}

// ServerSettings holds process-level settings sourced from the environment.
type ServerSettings struct {
	Address       string        `env:"GRIDSTRIKE_ADDR" envDefault:":8080"`
	DBPath        string        `env:"GRIDSTRIKE_DB" envDefault:"./data/gridstrike.db"`
	ConfigPath    string        `env:"GRIDSTRIKE_CONFIG" envDefault:"./gridstrike_config.json"`
	SessionSecret string        `env:"SESSION_SECRET"`
	SessionTTL    time.Duration `env:"SESSION_TTL" envDefault:"24h"`
}

// LoadServerSettings parses server settings from the environment.
func LoadServerSettings() (*ServerSettings, error) {
	var s ServerSettings
	if err := env.Parse(&s); err != nil {
		return nil, fmt.Errorf("failed to parse environment settings: %w", err)
	}
	return &s, nil
}

// LoadRuleset reads the ruleset file at path and validates it. It requires
// the key `unit_list` with at least one launcher type.
func LoadRuleset(path string) (*game.Ruleset, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if rc.GridSize <= 0 {
		return nil, fmt.Errorf("config file %s: grid_size must be positive", path)
	}
	if rc.BuildBudget <= 0 {
		return nil, fmt.Errorf("config file %s: build_budget must be positive", path)
	}
	if rc.Mana.Max <= 0 || rc.Mana.Start < 0 || rc.Mana.PerTurn < 0 {
		return nil, fmt.Errorf("config file %s: invalid mana block", path)
	}
	if rc.Mana.MaxShotsPerTurn <= 0 || rc.Mana.MaxShotsPerLauncher <= 0 {
		return nil, fmt.Errorf("config file %s: shot caps must be positive", path)
	}
	if len(rc.UnitList) == 0 {
		return nil, fmt.Errorf("config file %s: unit_list is empty (provide 'unit_list' array)", path)
	}

	types := make(map[string]game.UnitType, len(rc.UnitList))
	launchers := 0
	for _, u := range rc.UnitList {
		name := strings.TrimSpace(u.Name)
		if name == "" {
			return nil, fmt.Errorf("config file %s: unit entry missing 'name'", path)
		}
		if _, exists := types[name]; exists {
			return nil, fmt.Errorf("config file %s: duplicate unit name '%s'", path, name)
		}
		kind := game.UnitKind(u.Kind)
		if kind != game.KindLauncher && kind != game.KindDefense {
			return nil, fmt.Errorf("config file %s: unit '%s' has unknown kind '%s'", path, name, u.Kind)
		}
		if u.Cost <= 0 || u.Cost > rc.BuildBudget {
			return nil, fmt.Errorf("config file %s: unit '%s' cost must be in (0, build_budget]", path, name)
		}
		if u.SizeX <= 0 || u.SizeY <= 0 || u.SizeX > rc.GridSize || u.SizeY > rc.GridSize {
			return nil, fmt.Errorf("config file %s: unit '%s' has invalid size", path, name)
		}
		switch kind {
		case game.KindLauncher:
			if u.Range < 2 {
				return nil, fmt.Errorf("config file %s: launcher '%s' range must be at least 2", path, name)
			}
			if u.AreaX <= 0 || u.AreaY <= 0 {
				return nil, fmt.Errorf("config file %s: launcher '%s' area must be positive", path, name)
			}
			if u.ManaCost < 0 {
				return nil, fmt.Errorf("config file %s: launcher '%s' mana_cost must not be negative", path, name)
			}
			launchers++
		case game.KindDefense:
			if u.Coverage <= 0 {
				return nil, fmt.Errorf("config file %s: defense '%s' coverage must be positive", path, name)
			}
			if u.InterceptChance < 0 || u.InterceptChance > 1 {
				return nil, fmt.Errorf("config file %s: defense '%s' intercept_chance must be in [0,1]", path, name)
			}
		}
		types[name] = game.UnitType{
			Name:            name,
			Kind:            kind,
			Cost:            u.Cost,
			SizeX:           u.SizeX,
			SizeY:           u.SizeY,
			Range:           u.Range,
			AreaX:           u.AreaX,
			AreaY:           u.AreaY,
			ManaCost:        u.ManaCost,
			Coverage:        u.Coverage,
			InterceptChance: u.InterceptChance,
		}
	}
	if launchers == 0 {
		return nil, fmt.Errorf("config file %s: unit_list must contain at least one launcher", path)
	}

	defaultLauncher := strings.TrimSpace(rc.DefaultLauncher)
	if defaultLauncher == "" {
		// pick the cheapest launcher as the build-timeout fallback
		for name, t := range types {
			if t.Kind != game.KindLauncher {
				continue
			}
			if defaultLauncher == "" || t.Cost < types[defaultLauncher].Cost {
				defaultLauncher = name
			}
		}
	} else {
		t, ok := types[defaultLauncher]
		if !ok || t.Kind != game.KindLauncher {
			return nil, fmt.Errorf("config file %s: default_launcher '%s' is not a known launcher", path, defaultLauncher)
		}
	}

	return &game.Ruleset{
		GridSize:        rc.GridSize,
		BuildBudget:     rc.BuildBudget,
		Mana:            rc.Mana,
		TurnDuration:    time.Duration(rc.TurnDurationSeconds) * time.Second,
		BuildDuration:   time.Duration(rc.BuildDurationSeconds) * time.Second,
		UnitTypes:       types,
		DefaultLauncher: defaultLauncher,
	}, nil
}
