package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/chip8asm/asm"
)

func writeSource(t *testing.T, dir string, program []string) (path string) {
	path = filepath.Join(dir, "prog.asm")
	err := os.WriteFile(path, []byte(strings.Join(program, "\n")), 0644)
	require.NoError(t, err)
	return
}

func run(args ...string) (stdout string, err error) {
	cmd := newCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err = cmd.Execute()
	stdout = buf.String()
	return
}

func TestCommand(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	dir := t.TempDir()
	input := writeSource(t, dir, []string{
		"LOOP:",
		"  ADD V0, 1 ; count",
		"  JP LOOP",
	})
	output := filepath.Join(dir, "prog.ch8")

	stdout, err := run(input, output)
	require.NoError(err)
	assert.Contains(stdout, "Successfully assembled")

	data, err := os.ReadFile(output)
	require.NoError(err)
	assert.Equal([]byte{0x70, 0x01, 0x12, 0x00}, data)
}

func TestCommandDefine(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	dir := t.TempDir()
	input := writeSource(t, dir, []string{"LD I, SPRITE"})
	output := filepath.Join(dir, "prog.ch8")

	_, err := run("-D", "SPRITE=0x300", input, output)
	require.NoError(err)

	data, err := os.ReadFile(output)
	require.NoError(err)
	assert.Equal([]byte{0xa3, 0x00}, data)

	_, err = run("-D", "SPRITE", input, output)
	assert.ErrorIs(err, asm.ErrDefineSyntax)
}

func TestCommandArgs(t *testing.T) {
	assert := assert.New(t)

	stdout, err := run("only-one.asm")
	assert.Error(err)
	assert.Contains(stdout, "Usage:")

	_, err = run("a.asm", "b.ch8", "c")
	assert.Error(err)
}

func TestCommandUnknownMnemonic(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	input := writeSource(t, dir, []string{
		"CLS",
		"FOO V0",
	})
	output := filepath.Join(dir, "prog.ch8")

	_, err := run(input, output)
	assert.ErrorIs(err, asm.ErrMnemonicInvalid)
	assert.Contains(err.Error(), "FOO V0")

	_, err = os.Stat(output)
	assert.True(os.IsNotExist(err))

	// No temporary files are left behind either.
	entries, err := os.ReadDir(dir)
	assert.NoError(err)
	assert.Equal(1, len(entries))
}

func TestCommandStrict(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()
	input := writeSource(t, dir, []string{
		"a:",
		"CLS",
		"a:",
		"JP a",
	})
	output := filepath.Join(dir, "prog.ch8")

	_, err := run(input, output)
	assert.NoError(err)

	_, err = run("--strict", input, output+".strict")
	assert.ErrorIs(err, asm.ErrLabelDuplicate)
}

func TestCommandMissingInput(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()

	_, err := run(filepath.Join(dir, "none.asm"), filepath.Join(dir, "out.ch8"))
	assert.ErrorIs(err, os.ErrNotExist)
}
