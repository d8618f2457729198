package cmd_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/humanid/internal/app"
	"github.com/dmitrymomot/humanid/internal/cmd"
)

type cli struct {
	t    *testing.T
	args []string
}

func newCLI(t *testing.T) *cli {
	t.Helper()
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "error")
	return &cli{t: t, args: []string{"--store", app.StoreFile, "--data-dir", t.TempDir(), "--seed", "11"}}
}

func (c *cli) run(args ...string) (string, error) {
	c.t.Helper()
	root := cmd.NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(append(args, c.args...))
	err := root.Execute()
	return out.String(), err
}

func parseTSV(out string) [][]string {
	var rows [][]string
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line != "" {
			rows = append(rows, strings.Split(line, "\t"))
		}
	}
	return rows
}

func TestGenerateResolveLookup(t *testing.T) {
	c := newCLI(t)

	out, err := c.run("generate", "order-1", "order-2")
	require.NoError(t, err)
	rows := parseTSV(out)
	require.Len(t, rows, 2)
	assert.Equal(t, "order-1", rows[0][0])
	assert.Regexp(t, `^\S+-\S+-\d+$`, rows[0][1])
	assert.NotEqual(t, rows[0][1], rows[1][1])

	t.Run("stable across runs", func(t *testing.T) {
		again, err := c.run("generate", "order-1")
		require.NoError(t, err)
		assert.Equal(t, rows[0][1], parseTSV(again)[0][1])
	})

	t.Run("resolve", func(t *testing.T) {
		out, err := c.run("resolve", "order-2")
		require.NoError(t, err)
		assert.Equal(t, [][]string{{"order-2", rows[1][1]}}, parseTSV(out))
	})

	t.Run("resolve unknown", func(t *testing.T) {
		out, err := c.run("resolve", "order-1", "order-3")
		require.ErrorIs(t, err, app.ErrIdentifierNotFound)
		assert.Equal(t, [][]string{{"order-1", rows[0][1]}}, parseTSV(out))
	})

	t.Run("lookup", func(t *testing.T) {
		out, err := c.run("lookup", rows[0][1])
		require.NoError(t, err)
		assert.Equal(t, [][]string{{rows[0][1], "text", "order-1"}}, parseTSV(out))
	})

	t.Run("lookup unknown", func(t *testing.T) {
		_, err := c.run("lookup", "no-such-1")
		require.ErrorIs(t, err, app.ErrIdentifierNotFound)
	})
}

func TestGenerateTypes(t *testing.T) {
	c := newCLI(t)

	_, err := c.run("generate", "--type", "int", "42")
	require.NoError(t, err)
	_, err = c.run("generate", "--type", "uuid", "6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	require.NoError(t, err)

	_, err = c.run("generate", "--type", "int", "forty-two")
	require.Error(t, err)

	out, err := c.run("stats")
	require.NoError(t, err)
	assert.Contains(t, out, "count\t2\n")
	assert.Contains(t, out, "seed\t11\n")
	assert.Contains(t, out, "unsaved\tfalse\n")

	// the text "42" is a different identifier than the integer 42
	_, err = c.run("resolve", "42")
	require.ErrorIs(t, err, app.ErrIdentifierNotFound)
	_, err = c.run("resolve", "--type", "int", "42")
	require.NoError(t, err)
}

func TestExport(t *testing.T) {
	c := newCLI(t)
	_, err := c.run("generate", "a")
	require.NoError(t, err)
	_, err = c.run("generate", "--type", "hex", "cafe")
	require.NoError(t, err)

	type record struct {
		HumanReadable string `json:"human_readable" yaml:"human_readable"`
		Type          string `json:"type" yaml:"type"`
		Value         string `json:"value" yaml:"value"`
	}

	out, err := c.run("export")
	require.NoError(t, err)
	var fromJSON []record
	require.NoError(t, json.Unmarshal([]byte(out), &fromJSON))
	require.Len(t, fromJSON, 2)

	out, err = c.run("export", "--format", "yaml")
	require.NoError(t, err)
	var fromYAML []record
	require.NoError(t, yaml.Unmarshal([]byte(out), &fromYAML))
	assert.Equal(t, fromJSON, fromYAML)

	values := map[string]string{}
	for _, r := range fromJSON {
		values[r.Type] = r.Value
	}
	assert.Equal(t, map[string]string{"text": "a", "bytes": "cafe"}, values)

	_, err = c.run("export", "--format", "xml")
	require.Error(t, err)
}

func TestStatsJSON(t *testing.T) {
	c := newCLI(t)

	out, err := c.run("stats", "--format", "json")
	require.NoError(t, err)

	var stats map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Equal(t, float64(0), stats["count"])
	assert.Equal(t, float64(11), stats["seed"])
}

func TestUnknownStore(t *testing.T) {
	c := newCLI(t)
	c.args = []string{"--store", "etcd"}
	_, err := c.run("stats")
	require.ErrorIs(t, err, app.ErrUnknownStore)
}

func TestGenerateWithDictionaryFile(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "error")

	// 7776 words with the reference words at their positions in the EFF large list
	words := map[int]string{585: "blustery", 3507: "judo", 4987: "pushchair", 2667: "font"}
	var list strings.Builder
	list.WriteString("index\tword\n")
	for i := range 7776 {
		w, ok := words[i]
		if !ok {
			w = fmt.Sprintf("w%04d", i)
		}
		fmt.Fprintf(&list, "%d\t%s\n", i+1, w)
	}
	path := filepath.Join(t.TempDir(), "words.tsv")
	require.NoError(t, os.WriteFile(path, []byte(list.String()), 0o600))

	c := &cli{t: t, args: []string{
		"--store", app.StoreFile, "--data-dir", t.TempDir(), "--seed", "0", "--dictionary", path,
	}}
	out, err := c.run("generate", "id0", "test_id")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"id0", "blustery-judo-28"},
		{"test_id", "pushchair-font-4"},
	}, parseTSV(out))
}
