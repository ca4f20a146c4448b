package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hailstone/internal/cli"
	"github.com/katalvlaran/hailstone/internal/config"
)

// run executes the command tree and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	err := cli.Execute(context.Background(), args, &out, &errOut)
	return out.String(), errOut.String(), err
}

// decode runs args, requires success and unmarshals stdout into v.
func decode(t *testing.T, v any, args ...string) {
	t.Helper()
	out, stderr, err := run(t, args...)
	require.NoError(t, err, stderr)
	require.NoError(t, json.Unmarshal([]byte(out), v), out)
}

// TestRootCommand_Definition lists every subcommand and global flag.
func TestRootCommand_Definition(t *testing.T) {
	root := cli.NewRootCommand(&bytes.Buffer{}, &bytes.Buffer{})
	assert.Equal(t, "hailstone", root.Use)

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"sequence", "prime", "primes", "strip", "preds", "tree", "catalog", "config"} {
		assert.True(t, names[want], "subcommand %s", want)
	}
	for _, flag := range []string{"config", "log-level", "log-format"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
}

// TestRootCommand_HelpExamples runs every invocation listed in the help text.
func TestRootCommand_HelpExamples(t *testing.T) {
	root := cli.NewRootCommand(&bytes.Buffer{}, &bytes.Buffer{})
	var n int
	for _, line := range strings.Split(root.Long, "\n") {
		if !strings.HasPrefix(line, "  hailstone ") {
			continue
		}
		fields := strings.Fields(line)
		n++
		out, stderr, err := run(t, fields[1:]...)
		require.NoError(t, err, "%s: %s", line, stderr)
		assert.True(t, json.Valid([]byte(out)), line)
	}
	assert.Equal(t, 6, n)
}

// TestSequenceCmd_Classic prints the trajectory of 6 with statistics.
func TestSequenceCmd_Classic(t *testing.T) {
	var got struct {
		Type     string   `json:"type"`
		Sequence []string `json:"sequence"`
		Rule     struct{ X, Y, Z int64 }
		Stats    struct {
			Max          string `json:"max"`
			StoppingTime int    `json:"stoppingTime"`
			Paradoxical  bool   `json:"paradoxical"`
		} `json:"stats"`
	}
	decode(t, &got, "sequence", "6", "--stats")
	assert.Equal(t, "converges_to_1", got.Type)
	assert.Equal(t, []string{"6", "3", "10", "5", "16", "8", "4", "2", "1"}, got.Sequence)
	assert.Equal(t, int64(3), got.Rule.Y)
	assert.Equal(t, "16", got.Stats.Max)
	assert.Equal(t, 1, got.Stats.StoppingTime)
	assert.True(t, got.Stats.Paradoxical)
}

// TestSequenceCmd_RuleFlags overrides the configured rule.
func TestSequenceCmd_RuleFlags(t *testing.T) {
	var got struct {
		Type     string   `json:"type"`
		Sequence []string `json:"sequence"`
	}
	decode(t, &got, "sequence", "13", "--y", "5")
	assert.Equal(t, "cycle", got.Type)
	assert.Equal(t, "13", got.Sequence[len(got.Sequence)-1])

	decode(t, &got, "sequence", "6", "--y", "0", "--compat")
	assert.Equal(t, "converges_to_1", got.Type)

	decode(t, &got, "sequence", "7", "--x", "0")
	assert.Equal(t, "error", got.Type)
	assert.Empty(t, got.Sequence)
}

// TestPrimeCmd runs the p-variant and rejects even p.
func TestPrimeCmd(t *testing.T) {
	var got struct {
		Type     string   `json:"type"`
		P        int64    `json:"p"`
		Sequence []string `json:"sequence"`
	}
	decode(t, &got, "prime", "145", "--p", "7")
	assert.Equal(t, "converges_to_1", got.Type)
	assert.Equal(t, int64(7), got.P)
	assert.Equal(t, []string{"145", "127", "89", "13", "23", "1"}, got.Sequence)

	_, _, err := run(t, "prime", "145", "--p", "4")
	assert.Error(t, err)
}

// TestPrimesCmd lists primes below 10 and answers primality checks.
func TestPrimesCmd(t *testing.T) {
	var got struct {
		Count   int             `json:"count"`
		Primes  []int64         `json:"primes"`
		IsPrime map[string]bool `json:"isPrime"`
	}
	decode(t, &got, "primes", "10", "--check", "97,91")
	assert.Equal(t, 4, got.Count)
	assert.Equal(t, []int64{2, 3, 5, 7}, got.Primes)
	assert.True(t, got.IsPrime["97"])
	assert.False(t, got.IsPrime["91"])

	_, _, err := run(t, "primes", "-5")
	assert.Error(t, err)
}

// TestStripCmd removes 2, 3 and 5 from 2520.
func TestStripCmd(t *testing.T) {
	var got struct {
		Result string `json:"result"`
	}
	decode(t, &got, "strip", "2520", "--p", "7")
	assert.Equal(t, "7", got.Result)
}

// TestPredsCmd lists direct and shortcut predecessors.
func TestPredsCmd(t *testing.T) {
	var got struct {
		Predecessors []string `json:"predecessors"`
		Shortcuts    []struct {
			P string `json:"p"`
			K int    `json:"k"`
		} `json:"shortcuts"`
	}
	decode(t, &got, "preds", "10")
	assert.Equal(t, []string{"20", "3"}, got.Predecessors)
	assert.Empty(t, got.Shortcuts)

	decode(t, &got, "preds", "1", "--shortcuts", "--k", "6")
	require.Len(t, got.Shortcuts, 3)
	assert.Equal(t, "21", got.Shortcuts[2].P)
	assert.Equal(t, 6, got.Shortcuts[2].K)
}

// TestTreeCmd builds a small tree and answers reach queries.
func TestTreeCmd(t *testing.T) {
	var got struct {
		Size    int      `json:"size"`
		Q1      []string `json:"q1"`
		Reaches []struct {
			U       string `json:"u"`
			V       string `json:"v"`
			Reaches bool   `json:"reaches"`
		} `json:"reaches"`
	}
	decode(t, &got, "tree", "--depth", "5", "--reaches", "16:5", "--reaches", "32:5")
	assert.Equal(t, 7, got.Size)
	assert.Equal(t, "1", got.Q1[0])
	require.Len(t, got.Reaches, 2)
	assert.True(t, got.Reaches[0].Reaches)
	assert.False(t, got.Reaches[1].Reaches)

	_, _, err := run(t, "tree", "--reaches", "nonsense")
	assert.Error(t, err)
}

// TestCatalogCmd groups the negative cycles of 3n+1.
func TestCatalogCmd(t *testing.T) {
	var groups []struct {
		Signature string            `json:"signature"`
		Entries   []json.RawMessage `json:"entries"`
	}
	decode(t, &groups, "catalog", "--signature", "rotation", "--group", "--", "-8", "-1")
	require.Len(t, groups, 2)
	assert.Equal(t, "rot:01", groups[0].Signature)
	assert.Len(t, groups[0].Entries, 6)
	assert.Equal(t, "rot:00101", groups[1].Signature)

	_, _, err := run(t, "catalog", "5", "1")
	assert.Error(t, err)
	_, _, err = run(t, "catalog", "1", "5", "--signature", "crc")
	assert.Error(t, err)
}

// TestConfigFile applies the file and lets flags override it.
func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hailstone.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sequence:\n  y: 5\nlog:\n  level: debug\n  format: json\n"), 0o600))

	var got struct {
		Type string `json:"type"`
	}
	out, stderr, err := run(t, "--config", path, "sequence", "13")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "cycle", got.Type)
	assert.Contains(t, stderr, `"msg":"sequence generated"`)

	_, stderr, err = run(t, "--config", path, "--log-level", "error", "sequence", "13")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	out, _, err = run(t, "--config", path, "config")
	require.NoError(t, err)
	var cfg config.Config
	require.NoError(t, config.Decode(strings.NewReader(out), &cfg), out)
	assert.Equal(t, int64(5), cfg.Sequence.Y)
	assert.Equal(t, "debug", cfg.Log.Level)

	_, _, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "config")
	assert.Error(t, err)
}
