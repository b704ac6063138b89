package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/udisondev/arena/internal/stats"
)

// runDump runs statsdump against a config path that does not exist (defaults).
func runDump(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	args = append([]string{"-config", filepath.Join(t.TempDir(), "none.yaml")}, args...)
	err := run(args, &out)
	return out.String(), err
}

func TestRun_Table(t *testing.T) {
	out, err := runDump(t)
	require.NoError(t, err)

	for s := range stats.All() {
		assert.Contains(t, out, s.Name())
	}
	assert.Contains(t, out, "fingerprint: "+stats.FingerprintHex())
	assert.Contains(t, out, "r=3 v=5 dmg=240")
}

func TestRun_YAML(t *testing.T) {
	out, err := runDump(t, "-format", "yaml", "-only", "rogue, king")
	require.NoError(t, err)

	var doc yamlCatalog
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))

	assert.Equal(t, stats.FingerprintHex(), doc.Fingerprint)
	require.Len(t, doc.Mobs, 1)
	require.Len(t, doc.Buildings, 1)
	assert.Equal(t, stats.LookupMob(stats.Rogue).Sheet(), doc.Mobs[0])
	assert.Equal(t, stats.LookupBuilding(stats.King).Sheet(), doc.Buildings[0])
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown format", []string{"-format", "xml"}},
		{"unknown record", []string{"-only", "dragon"}},
		{"empty selection", []string{"-only", " , "}},
		{"unknown flag", []string{"-verbose"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runDump(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestSelectRecords(t *testing.T) {
	t.Parallel()

	sel, err := selectRecords(nil)
	require.NoError(t, err)
	assert.Len(t, sel.mobs, int(stats.NumMobTypes))
	assert.Len(t, sel.buildings, int(stats.NumBuildingTypes))

	sel, err = selectRecords([]string{"Giant", "princess"})
	require.NoError(t, err)
	require.Len(t, sel.mobs, 1)
	assert.Equal(t, stats.Giant, sel.mobs[0].MobType())
	require.Len(t, sel.buildings, 1)
	assert.Equal(t, stats.Princess, sel.buildings[0].BuildingType())

	_, err = selectRecords([]string{"knight"})
	assert.ErrorIs(t, err, stats.ErrUnknownType)
}

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "DEBUG", parseLogLevel("debug").String())
	assert.Equal(t, "WARN", parseLogLevel("WARN").String())
	assert.Equal(t, "INFO", parseLogLevel("").String())
	assert.Equal(t, "INFO", parseLogLevel("nonsense").String())
}
