// statsdump prints the compiled-in entity stats catalog.
//
// Usage:
//
//	go run ./cmd/statsdump
//	go run ./cmd/statsdump -format yaml
//	go run ./cmd/statsdump -only rogue,king
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/arena/internal/config"
	"github.com/udisondev/arena/internal/stats"
)

const DefaultConfigPath = "config/statsdump.yaml"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("statsdump", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "path to YAML config (default $ARENA_CONFIG or "+DefaultConfigPath+")")
	format := fs.String("format", "", "output format: table or yaml")
	only := fs.String("only", "", "comma-separated record names to print")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parsing flags: %w", err)
	}

	path := *cfgPath
	if path == "" {
		path = DefaultConfigPath
		if p := os.Getenv("ARENA_CONFIG"); p != "" {
			path = p
		}
	}
	cfg, err := config.LoadStatsDump(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if *format != "" {
		cfg.Format = *format
	}
	if *only != "" {
		cfg.Only = strings.Split(*only, ",")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	// Logs go to stderr so that stdout stays parseable.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	sel, err := selectRecords(cfg.Only)
	if err != nil {
		return err
	}
	slog.Debug("records selected", "mobs", len(sel.mobs), "buildings", len(sel.buildings))

	switch cfg.Format {
	case config.FormatYAML:
		return writeYAML(out, sel, cfg.Fingerprint)
	default:
		return writeTable(out, sel, cfg.Fingerprint)
	}
}

type selection struct {
	mobs      []*stats.Mob
	buildings []*stats.Building
}

// selectRecords resolves names to records; empty names selects everything.
func selectRecords(names []string) (selection, error) {
	if len(names) == 0 {
		return selection{mobs: stats.Mobs(), buildings: stats.Buildings()}, nil
	}

	var sel selection
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		if mt, err := stats.ParseMobType(name); err == nil {
			sel.mobs = append(sel.mobs, stats.LookupMob(mt))
			continue
		}
		bt, err := stats.ParseBuildingType(name)
		if err != nil {
			return selection{}, fmt.Errorf("selecting %q: %w", name, err)
		}
		sel.buildings = append(sel.buildings, stats.LookupBuilding(bt))
	}
	if len(sel.mobs) == 0 && len(sel.buildings) == 0 {
		return selection{}, errors.New("selection is empty")
	}
	return sel, nil
}

func writeTable(out io.Writer, sel selection, withFingerprint bool) error {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintln(tw, "NAME\tGLYPH\tKIND\tHP\tDMG\tTYPE\tTARGET\tRANGE\tCD\tSIGHT\tSIZE\tCOST\tSPEED\tMASS\tSPRING")
	for _, m := range sel.mobs {
		spring := "-"
		if rs, ok := m.Rogue(); ok && rs.CanSpringAttack {
			spring = fmt.Sprintf("r=%g v=%g dmg=%g", rs.SpringRange, rs.SpringSpeed, rs.SpringAttackDamage)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\t%s\t%g\t%g\t%g\t%g\t%g\t%g\t%g\t%s\n",
			m.Name(), m.DisplayLetter(), m.Kind(), m.MaxHealth(), m.Damage(), m.DamageType(),
			m.TargetType(), m.AttackRange(), m.AttackTime(), m.SightRadius(), m.Size(),
			m.ElixirCost(), m.Speed(), m.Mass(), spring)
	}
	for _, b := range sel.buildings {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\t%s\t%g\t%g\t%g\t%g\t-\t-\t-\t-\n",
			b.Name(), b.DisplayLetter(), b.Kind(), b.MaxHealth(), b.Damage(), b.DamageType(),
			b.TargetType(), b.AttackRange(), b.AttackTime(), b.SightRadius(), b.Size())
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing table: %w", err)
	}

	if withFingerprint {
		if _, err := fmt.Fprintf(out, "\nfingerprint: %s\n", stats.FingerprintHex()); err != nil {
			return fmt.Errorf("writing fingerprint: %w", err)
		}
	}
	return nil
}

type yamlCatalog struct {
	Fingerprint string        `yaml:"fingerprint,omitempty"`
	Mobs        []stats.Sheet `yaml:"mobs,omitempty"`
	Buildings   []stats.Sheet `yaml:"buildings,omitempty"`
}

func writeYAML(out io.Writer, sel selection, withFingerprint bool) error {
	doc := yamlCatalog{}
	if withFingerprint {
		doc.Fingerprint = stats.FingerprintHex()
	}
	for _, m := range sel.mobs {
		doc.Mobs = append(doc.Mobs, m.Sheet())
	}
	for _, b := range sel.buildings {
		doc.Buildings = append(doc.Buildings, b.Sheet())
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
