package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/rdeusser/bag/bag"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func parse(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))

	return fs
}

func TestDefaults(t *testing.T) {
	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.True(t, cfg.Log.Pretty)
	assert.Equal(t, BagConfig{
		Kind:     bag.KindArray,
		Capacity: bag.DefaultCapacity,
		Entries:  []string{"A", "B", "B", "B"},
	}, cfg.Left)
	assert.Equal(t, BagConfig{
		Kind:     bag.KindArray,
		Capacity: bag.DefaultCapacity,
		Entries:  []string{"A", "B", "B", "D", "E"},
	}, cfg.Right)
}

func TestUnsetFlagsKeepDefaults(t *testing.T) {
	cfg, err := Load(parse(t))
	require.NoError(t, err)

	assert.Equal(t, bag.KindArray, cfg.Left.Kind)
	assert.Equal(t, bag.DefaultCapacity, cfg.Left.Capacity)
	assert.Equal(t, []string{"A", "B", "B", "D", "E"}, cfg.Right.Entries)
}

func TestFlags(t *testing.T) {
	cfg, err := Load(parse(t,
		"--left-kind=linked",
		"--right-entries=X,Y",
		"--right-capacity=2",
		"--right-resizable",
		"--log-level=debug",
	))
	require.NoError(t, err)

	assert.Equal(t, bag.KindLinked, cfg.Left.Kind)
	assert.Equal(t, []string{"X", "Y"}, cfg.Right.Entries)
	assert.Equal(t, 2, cfg.Right.Capacity)
	assert.True(t, cfg.Right.Resizable)
	assert.Equal(t, "debug", cfg.LoggerOptions().Level)
}

func TestInvalidKindFlag(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.SetOutput(&discard{})
	RegisterFlags(fs)

	assert.Error(t, fs.Parse([]string{"--left-kind=tree"}))
}

func TestEnv(t *testing.T) {
	t.Setenv("BAGDEMO_LEFT_KIND", "linked")
	t.Setenv("BAGDEMO_LEFT_ENTRIES", "C,D")
	t.Setenv("BAGDEMO_LOG_PRETTY", "false")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, bag.KindLinked, cfg.Left.Kind)
	assert.Equal(t, []string{"C", "D"}, cfg.Left.Entries)
	assert.False(t, cfg.Log.Pretty)
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("BAGDEMO_LEFT_KIND", "linked")

	cfg, err := Load(parse(t, "--left-kind=array"))
	require.NoError(t, err)

	assert.Equal(t, bag.KindArray, cfg.Left.Kind)
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bagdemo.yaml")
	data := []byte(`
log:
  level: warn
left:
  kind: linked
  entries: [P, Q]
right:
  capacity: 1
  resizable: true
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(parse(t, "--config="+path))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, bag.KindLinked, cfg.Left.Kind)
	assert.Equal(t, []string{"P", "Q"}, cfg.Left.Entries)
	assert.Equal(t, 1, cfg.Right.Capacity)
	assert.True(t, cfg.Right.Resizable)
	assert.Equal(t, bag.KindArray, cfg.Right.Kind)
}

func TestMissingConfigFile(t *testing.T) {
	_, err := Load(parse(t, "--config="+filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		testName string
		env      map[string]string
		wantErr  error
	}{
		{
			"negative capacity",
			map[string]string{"BAGDEMO_RIGHT_CAPACITY": "-1"},
			ErrInvalidCapacity,
		},
		{
			"unknown kind",
			map[string]string{"BAGDEMO_LEFT_KIND": "tree"},
			nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			_, err := Load(nil)
			require.Error(t, err)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}

	cfg := Config{Left: BagConfig{Kind: bag.KindArray}}
	assert.ErrorIs(t, cfg.Validate(), bag.ErrInvalidKind)
}

func TestBuild(t *testing.T) {
	testCases := []struct {
		testName string
		cfg      BagConfig
		want     []string
		wantErr  error
	}{
		{
			"array",
			BagConfig{Kind: bag.KindArray, Capacity: 4, Entries: []string{"A", "B"}},
			[]string{"A", "B"},
			nil,
		},
		{
			"linked",
			BagConfig{Kind: bag.KindLinked, Entries: []string{"A", "B"}},
			[]string{"B", "A"},
			nil,
		},
		{
			"array over capacity",
			BagConfig{Kind: bag.KindArray, Capacity: 1, Entries: []string{"A", "B"}},
			nil,
			bag.ErrCapacityExceeded,
		},
		{
			"resizable array",
			BagConfig{Kind: bag.KindArray, Capacity: 1, Resizable: true, Entries: []string{"A", "B"}},
			[]string{"A", "B"},
			nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.testName, func(t *testing.T) {
			b, err := tc.cfg.Build()
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, b.ToSlice())
		})
	}
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
