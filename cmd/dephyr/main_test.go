package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/dball/dephyr/pkg/dephyr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runArgs(args ...string) (code int, stdout string, stderr string) {
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	stdout = out.String()
	stderr = errOut.String()
	return
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cycle.dep")
	require.NoError(t, os.WriteFile(path, []byte("# a cycle\nABCD\nAB->C\nC->D\nD->A\n"), 0o600))

	t.Run("candidates from a file", func(t *testing.T) {
		code, stdout, _ := runArgs(path, "candidates")
		assert.Equal(t, 0, code)
		assert.Equal(t, "AB\nBC\nBD\n", stdout)
	})

	t.Run("closure from a string", func(t *testing.T) {
		code, stdout, _ := runArgs("ABC,A->B", "closure", "a")
		assert.Equal(t, 0, code)
		assert.Equal(t, "AB\n", stdout)
	})

	t.Run("project full", func(t *testing.T) {
		code, stdout, _ := runArgs("ABC;A->B;B->C", "project", "-f", "AC")
		assert.Equal(t, 0, code)
		assert.Equal(t, "A -> C\n", stdout)
	})

	t.Run("project full after the elements", func(t *testing.T) {
		for _, full := range []string{"-f", "-full", "--full"} {
			code, stdout, stderr := runArgs("ABC;A->B;B->C", "project", "AC", full)
			assert.Equal(t, 0, code, stderr)
			assert.Equal(t, "A -> C\n", stdout)
		}
		code, stdout, _ := runArgs("ABC;A->B;B->C", "project", "ABC", "-f")
		assert.Equal(t, 0, code)
		assert.Equal(t, "A -> BC\nB -> C\nAB -> C\nAC -> B\n", stdout)
	})

	t.Run("degree is not a flag", func(t *testing.T) {
		code, _, _ := runArgs("-degree", "4", "ABC;A->B", "candidates")
		assert.Equal(t, 2, code)
	})

	t.Run("decompose", func(t *testing.T) {
		code, stdout, _ := runArgs(path, "decompose", "bcnf")
		assert.Equal(t, 0, code)
		assert.Equal(t, "AC\nC -> A\n\nBC\n\n\nCD\nC -> D\n\n", stdout)
	})

	t.Run("yaml", func(t *testing.T) {
		code, stdout, _ := runArgs("-format", "yaml", "ABC;A->B", "violators", "BCNF")
		assert.Equal(t, 0, code)
		assert.Equal(t, "- A -> B\n", stdout)
	})

	t.Run("verbose", func(t *testing.T) {
		code, _, stderr := runArgs("-verbose", "ABC;A->B", "basis")
		assert.Equal(t, 0, code)
		assert.Contains(t, stderr, "msg=solving")
	})

	t.Run("unknown action", func(t *testing.T) {
		code, stdout, stderr := runArgs("ABC;A->B", "keys")
		assert.Equal(t, 1, code)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "dephyr.action")
	})

	t.Run("bad deps", func(t *testing.T) {
		code, _, stderr := runArgs("ABC;A B", "candidates")
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, "parser.syntax")
	})

	t.Run("missing args", func(t *testing.T) {
		code, _, stderr := runArgs("ABC;A->B")
		assert.Equal(t, 1, code)
		assert.Contains(t, stderr, "Syntax:")
	})
}

func TestParseRequest(t *testing.T) {
	var stderr bytes.Buffer
	req, err := parseRequest("AB", []string{"project", "-full", "A"}, &stderr)
	require.NoError(t, err)
	assert.Equal(t, dephyr.Request{Deps: "AB", Action: dephyr.Project, Vars: "A", Full: true}, req)

	req, err = parseRequest("AB", []string{"violators", "3nf"}, &stderr)
	require.NoError(t, err)
	assert.Equal(t, dephyr.ThreeNF, req.Form)

	_, err = parseRequest("AB", []string{"closure"}, &stderr)
	assert.Error(t, err)
	_, err = parseRequest("AB", []string{"candidates", "A"}, &stderr)
	assert.Error(t, err)
	_, err = parseRequest("AB", []string{"closure", "-f", "A"}, &stderr)
	assert.Error(t, err)
	_, err = parseRequest("AB", []string{"closure", "A", "-f"}, &stderr)
	assert.Error(t, err)
	_, err = parseRequest("AB", []string{"project", "A", "B"}, &stderr)
	assert.Error(t, err)

	req, err = parseRequest("AB", []string{"project", "A", "-f"}, &stderr)
	require.NoError(t, err)
	assert.Equal(t, dephyr.Request{Deps: "AB", Action: dephyr.Project, Vars: "A", Full: true}, req)
}
