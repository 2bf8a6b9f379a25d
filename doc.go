/*
Package argz implements a small command-line argument binder. The caller
declares a table of options, each aliasing one of its own variables, and
Parse walks the raw argument tokens and coerces encountered values into
those variables in place. The package holds no parsed state: after Parse
returns, results are read from the caller's variables.

# Bindings

An option binds one storage slot through Bind or BindOpt:

	var threads int32 = 4
	var output *string

	opts := argz.Options{
		{ID: "threads", Alias: "t", Value: argz.Bind(&threads), Help: "worker count"},
		{ID: "output", Alias: "o", Value: argz.BindOpt(&output), Help: "output file"},
	}

	about := argz.NewAbout("example tool", "1.2.3")
	argz.ParseOrExit(about, opts, os.Args)

The slot types are bool, int32, uint32, int64, uint64, float64, string,
and Path. BindOpt binds a pointer slot of any of those types; the slot
stays nil until the option appears, which doubles as presence detection.
A slot's starting value is its default: Parse only ever overwrites.

# Scanning Rules

Every token must start with '-'. One or two leading dashes are stripped
before matching, so -threads and --threads are equivalent. A token that
strips to a single character is resolved through the declared aliases and
fails the parse when no option declares it. A bare "-" or "--" stops the
scan. Multi-character flags that match no declared ID are ignored.

An option bound to a plain bool slot is presence-only and consumes no
value. Every other option consumes the following token as its value,
whatever it looks like, so negative numbers need no special quoting.

Integer values parse as signed 64-bit and are converted to the slot's
width and signedness without range checks. Bool values compare against
the literal "true".

The reserved flags -h/--help and -v/--version write to the configured
stdout writer and scanning continues; About records that they fired in
PrintedHelp and PrintedVersion.

# Errors

Parse reports the first problem it hits and leaves already-assigned slots
assigned. Every returned error matches exactly one of the sentinels
ExpectedFlagPrefixErr, UnknownAliasErr, MalformedNumberErr, or
MissingValueErr under errors.Is, and its message carries the offending
token or flag.

Output destinations and the exit behavior of ParseOrExit are injectable
through SetStdoutWriter, SetStderrWriter, and SetExitFunc. Color in help
and dump output follows the ARGZ_COLOR environment variable (never,
always, or auto).
*/
package argz
