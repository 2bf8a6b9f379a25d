package argz

// Option declares one command-line flag: a long identifier, an optional
// single-character alias, a Binding onto the caller's storage slot, and a
// help line for usage output.
//
// Matching is by ID with a leading "--" (or a single "-"; the scanner
// accepts either). An Alias is matched only from its single-character
// form and resolves to the declaring option's ID before lookup.
type Option struct {
	ID    string
	Alias string
	Value Binding
	Help  string
}

// Options is an ordered flag table. Order matters twice: help output lists
// options in declaration order, and when two entries share an ID or an
// alias the earliest declaration wins.
type Options []Option

// resolveAlias returns the ID of the first option declaring alias, or ""
// when no option does.
func (opts Options) resolveAlias(alias string) string {
	for _, opt := range opts {
		if opt.Alias == alias {
			return opt.ID
		}
	}
	return ""
}

// lookup returns the first option whose ID is id.
func (opts Options) lookup(id string) (Option, bool) {
	for _, opt := range opts {
		if opt.ID == id {
			return opt, true
		}
	}
	return Option{}, false
}

// About carries the metadata for one parse session: the description and
// version lines shown by help, the auto-help policy, and sticky flags
// recording whether help or version text has been written.
type About struct {
	Description string
	Version     string

	// PrintHelpWhenNoOptions makes Parse write help when it is handed
	// only the program name. NewAbout enables it.
	PrintHelpWhenNoOptions bool

	// PrintedHelp and PrintedVersion are set the first time help or
	// version output is written and are never reset by this package.
	// Callers reusing an About across parses reset them explicitly.
	PrintedHelp    bool
	PrintedVersion bool
}

// NewAbout returns an About with the given description and version and
// auto-help on empty invocations enabled.
func NewAbout(description, version string) *About {
	return &About{
		Description:            description,
		Version:                version,
		PrintHelpWhenNoOptions: true,
	}
}
