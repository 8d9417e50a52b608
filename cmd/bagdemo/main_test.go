package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/rdeusser/bag/bag"
	"github.com/rdeusser/bag/config"
)

var update = flag.Bool("update", false, "update golden files")

func TestMain(m *testing.M) {
	color.NoColor = true
	goleak.VerifyTestMain(m)
}

func TestRun(t *testing.T) {
	testCases := []struct {
		testName string
		args     []string
	}{
		{"array", nil},
		{"linked", []string{"--left-kind=linked"}},
		{"intersection counts right", []string{"--left-entries=A", "--right-entries=A,A,A,C"}},
		{"difference capped", []string{"--left-entries=A", "--right-entries=A,A,A"}},
		{"empty left", []string{"--left-entries=", "--right-kind=linked"}},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			fs := pflag.NewFlagSet("bagdemo", pflag.ContinueOnError)
			config.RegisterFlags(fs)
			require.NoError(t, fs.Parse(tc.args))

			cfg, err := config.Load(fs)
			require.NoError(t, err)

			var out bytes.Buffer
			require.NoError(t, run(&out, cfg, zaptest.NewLogger(t)))

			golden := filepath.Join("testdata", t.Name()[len("TestRun/"):]+".golden")

			if *update {
				require.NoError(t, os.WriteFile(golden, out.Bytes(), 0o644))
			}

			want, err := os.ReadFile(golden)
			require.NoError(t, err)
			assert.Equal(t, string(want), out.String())
		})
	}
}

func TestRunCapacityExceeded(t *testing.T) {
	cfg := &config.Config{
		Left: config.BagConfig{Kind: bag.KindArray, Capacity: 1, Entries: []string{"A", "B"}},
		Right: config.BagConfig{Kind: bag.KindArray, Capacity: 1},
	}

	err := run(&bytes.Buffer{}, cfg, zaptest.NewLogger(t))
	assert.ErrorIs(t, err, bag.ErrCapacityExceeded)
}
