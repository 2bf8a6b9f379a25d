package argz

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/amterp/color"
)

// ExpectedFlagPrefixErr is returned by Parse when a token does not start with '-'.
var ExpectedFlagPrefixErr = errors.New("expected flag prefix")

// UnknownAliasErr is returned by Parse when a single-character flag matches no declared alias.
var UnknownAliasErr = errors.New("unknown alias")

// MalformedNumberErr is returned by Parse when a value token cannot be parsed as a number.
var MalformedNumberErr = errors.New("malformed number")

// MissingValueErr is returned by Parse when a value-consuming flag is the last token.
var MissingValueErr = errors.New("missing value")

type flagPrefixError struct {
	token string
}

func (e *flagPrefixError) Error() string {
	return fmt.Sprintf("expected flag prefix '-', got %q", e.token)
}

func (e *flagPrefixError) Unwrap() error {
	return ExpectedFlagPrefixErr
}

type unknownAliasError struct {
	alias string
}

func (e *unknownAliasError) Error() string {
	return fmt.Sprintf("unknown alias '-%s'", e.alias)
}

func (e *unknownAliasError) Unwrap() error {
	return UnknownAliasErr
}

type malformedNumberError struct {
	token string
}

func (e *malformedNumberError) Error() string {
	return fmt.Sprintf("malformed number %q", e.token)
}

func (e *malformedNumberError) Unwrap() error {
	return MalformedNumberErr
}

type missingValueError struct {
	id string
}

func (e *missingValueError) Error() string {
	return fmt.Sprintf("flag --%s requires a value", e.id)
}

func (e *missingValueError) Unwrap() error {
	return MissingValueErr
}

// Parse scans args and coerces encountered values into the slots bound by
// opts. args follows os.Args convention: index 0 is the program name and
// is never scanned.
//
// Every scanned token must start with '-'; one or two leading dashes are
// stripped before matching, so "-input" and "--input" are equivalent. The
// reserved flags -h/--help and -v/--version write to the stdout writer and
// scanning continues. A token that strips to a single character is treated
// as an alias and must resolve to a declared option. A bare "-" or "--"
// stops the scan; everything after it is left unread.
//
// A matched option bound to a plain bool slot is presence-only: the slot
// is set true and no value token is consumed. Every other binding consumes
// the next token as its value, whatever that token looks like, so negative
// numbers work. Flags with two or more characters that match no declared
// ID are ignored.
//
// When only the program name is present and about.PrintHelpWhenNoOptions
// is set, Parse writes help and returns nil. Errors are reported as soon
// as they occur; slots already assigned keep their values. All returned
// errors match one of ExpectedFlagPrefixErr, UnknownAliasErr,
// MalformedNumberErr, or MissingValueErr under errors.Is.
func Parse(about *About, opts Options, args []string) error {
	initializeColorFromEnv()

	if len(args) == 1 {
		if about.PrintHelpWhenNoOptions {
			Help(about, opts)
		}
		return nil
	}

	for i := 1; i < len(args); i++ {
		token := args[i]
		if !strings.HasPrefix(token, "-") {
			return &flagPrefixError{token: token}
		}
		name := strings.TrimPrefix(token[1:], "-")

		switch name {
		case "h", "help":
			Help(about, opts)
			continue
		case "v", "version":
			writeVersion(about)
			continue
		}

		if len(name) == 1 {
			alias := name
			name = opts.resolveAlias(alias)
			if name == "" {
				return &unknownAliasError{alias: alias}
			}
		}
		if name == "" {
			break
		}

		opt, ok := opts.lookup(name)
		if !ok {
			continue
		}

		if b, isBool := opt.Value.(ref[bool]); isBool {
			*b.slot = true
			continue
		}

		i++
		if i == len(args) {
			return &missingValueError{id: opt.ID}
		}
		if err := opt.Value.coerce(args[i]); err != nil {
			return fmt.Errorf("flag --%s: %w", opt.ID, err)
		}
	}

	return nil
}

// ParseOrExit is the exiting variant of Parse: on a scan failure it writes
// the error and the help text to the stderr writer and exits with code 1.
func ParseOrExit(about *About, opts Options, args []string) {
	if err := Parse(about, opts, args); err != nil {
		fmt.Fprintln(stderrWriter, err.Error())
		fmt.Fprintln(stderrWriter)
		fmt.Fprint(stderrWriter, GenerateHelp(about, opts))
		osExit(1)
	}
}

func writeVersion(about *About) {
	about.PrintedVersion = true
	fmt.Fprint(stdoutWriter, GenerateVersion(about))
}

func initializeColorFromEnv() {
	colorValue := strings.ToLower(strings.TrimSpace(os.Getenv("ARGZ_COLOR")))
	switch colorValue {
	case "never":
		color.NoColor = true
	case "always":
		color.NoColor = false
	case "", "auto":
		// default behavior
		// let amterp/color decide based on tty
	default:
		// invalid value - treat as auto
	}
}
