package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	output := filepath.Join(t.TempDir(), "color_enum.go")

	g := NewGenerator(GeneratorOptions{
		Args:         []string{"-type=Color", "-generate-flag", "-text"},
		Dir:          "./testdata/enum",
		GenerateFlag: true,
		GenerateText: true,
		Output:       output,
		Type:         "Color",
	})

	src, err := g.Run()
	require.NoError(t, err)

	written, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, string(src), string(written))

	code := string(src)
	assert.Contains(t, code, `// Code generated by "gen-enum -type=Color -generate-flag -text"; DO NOT EDIT.`)
	assert.Contains(t, code, "package enum")
	assert.Contains(t, code, `"red":`)
	assert.Contains(t, code, `"light-red":`)
	assert.Contains(t, code, `"sky blue":`)
	assert.Contains(t, code, "func (i *Color) Set(s string) error")
	assert.Contains(t, code, `return "color"`)
	assert.Contains(t, code, "func (i Color) MarshalText() ([]byte, error)")
	assert.Contains(t, code, "func (i *Color) UnmarshalText(text []byte) error")
	assert.NotContains(t, code, "IDToColor")
}

func TestGenerateWithoutOptionalMethods(t *testing.T) {
	g := NewGenerator(GeneratorOptions{
		Dir:    "./testdata/enum",
		Output: filepath.Join(t.TempDir(), "color_enum.go"),
		Type:   "Color",
	})

	src, err := g.Run()
	require.NoError(t, err)

	code := string(src)
	assert.Contains(t, code, "func ColorList() []Color")
	assert.NotContains(t, code, "MarshalText")
	assert.NotContains(t, code, ") Set(")
}

func TestGenerateDuplicateNames(t *testing.T) {
	g := NewGenerator(GeneratorOptions{
		Dir:    "./testdata/enum",
		Output: filepath.Join(t.TempDir(), "dup_enum.go"),
		Type:   "Dup",
	})

	_, err := g.Run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `duplicate name "same"`)
}

func TestGenerateUnknownType(t *testing.T) {
	g := NewGenerator(GeneratorOptions{
		Dir:    "./testdata/enum",
		Output: filepath.Join(t.TempDir(), "shape_enum.go"),
		Type:   "Shape",
	})

	_, err := g.Run()
	assert.Error(t, err)
}
