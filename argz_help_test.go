package argz

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateHelpFormat(t *testing.T) {
	t.Setenv("ARGZ_COLOR", "never")
	initializeColorFromEnv()

	threads := int32(4)
	var verbose bool
	var output *string
	var x int64

	about := NewAbout("A fast indexer.", "2.0.1")
	opts := Options{
		{ID: "threads", Alias: "t", Value: Bind(&threads), Help: "worker threads"},
		{ID: "verbose", Value: Bind(&verbose), Help: "enable verbose logging"},
		{ID: "output", Alias: "o", Value: BindOpt(&output), Help: "output file"},
		{ID: "x", Value: Bind(&x), Help: "x offset"},
	}

	expected := `A fast indexer.
Version: 2.0.1

-h, --help       write help to console
-v, --version    write the version to console
-t, --threads    worker threads, default: 4
--verbose    enable verbose logging, default: false
-o, --output    output file
-x    x offset, default: 0

`
	assert.Equal(t, expected, GenerateHelp(about, opts))
}

func TestGenerateHelpShowsPresentOptionalAsDefault(t *testing.T) {
	t.Setenv("ARGZ_COLOR", "never")
	initializeColorFromEnv()

	level := int32(3)
	preset := &level
	var absent *string

	about := NewAbout("Test application", "1.0.0")
	opts := Options{
		{ID: "level", Value: BindOpt(&preset), Help: "detail level"},
		{ID: "tag", Value: BindOpt(&absent), Help: "build tag"},
	}

	help := GenerateHelp(about, opts)

	assert.Contains(t, help, "--level    detail level, default: 3\n")
	assert.Contains(t, help, "--tag    build tag\n")
}

func TestGenerateHelpOmitsEmptyStringDefault(t *testing.T) {
	t.Setenv("ARGZ_COLOR", "never")
	initializeColorFromEnv()

	var name string
	ratio := 0.5

	about := NewAbout("Test application", "1.0.0")
	opts := Options{
		{ID: "name", Value: Bind(&name), Help: "display name"},
		{ID: "ratio", Value: Bind(&ratio), Help: "blend ratio"},
	}

	help := GenerateHelp(about, opts)

	assert.Contains(t, help, "--name    display name\n")
	assert.Contains(t, help, "--ratio    blend ratio, default: 0.5\n")
}

func TestHelpMarksAboutAndWritesToStdoutWriter(t *testing.T) {
	t.Setenv("ARGZ_COLOR", "never")
	initializeColorFromEnv()

	var stdout bytes.Buffer
	SetStdoutWriter(&stdout)
	defer SetStdoutWriter(os.Stdout)

	about := NewAbout("Test application", "1.0.0")
	opts := Options{}

	Help(about, opts)

	assert.True(t, about.PrintedHelp)
	assert.Equal(t, GenerateHelp(about, opts), stdout.String())

	Help(about, opts)
	assert.True(t, about.PrintedHelp)
}

func TestGenerateVersion(t *testing.T) {
	about := NewAbout("Test application", "0.9.0-rc1")

	assert.Equal(t, "Version: 0.9.0-rc1\n", GenerateVersion(about))
}
