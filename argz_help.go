package argz

import (
	"fmt"
	"strings"

	"github.com/amterp/color"
)

var (
	greenBold  = color.New(color.FgGreen, color.Bold)
	cyan       = color.New(color.FgCyan)
	bold       = color.New(color.Bold)
	GreenBoldS = greenBold.SprintfFunc()
	CyanS      = cyan.SprintfFunc()
	BoldS      = bold.SprintfFunc()
)

// Help writes the help text for opts to the stdout writer and marks about
// as having printed help.
func Help(about *About, opts Options) {
	about.PrintedHelp = true
	fmt.Fprint(stdoutWriter, GenerateHelp(about, opts))
}

// GenerateHelp renders the help text: the description and version lines,
// the reserved -h/-v entries, then one line per declared option. An option
// line shows the flag forms, the help text, and the bound slot's current
// value as the default when it renders to something. Options appear in
// declaration order.
func GenerateHelp(about *About, opts Options) string {
	var sb strings.Builder

	sb.WriteString(about.Description + "\n")
	sb.WriteString(GenerateVersion(about))
	sb.WriteString("\n")
	sb.WriteString(CyanS("-h, --help") + "       write help to console\n")
	sb.WriteString(CyanS("-v, --version") + "    write the version to console\n")

	for _, opt := range opts {
		sb.WriteString(CyanS("%s", flagForms(opt)))
		sb.WriteString("    " + opt.Help)
		if def := opt.Value.render(); def != "" {
			sb.WriteString(", default: " + def)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	return sb.String()
}

// GenerateVersion renders the version line written by -v and --version.
func GenerateVersion(about *About) string {
	return "Version: " + about.Version + "\n"
}

// flagForms renders the dash forms an option is listed under: alias plus
// ID when an alias is declared, a single-dash form for one-character IDs,
// and the double-dash form otherwise.
func flagForms(opt Option) string {
	if opt.Alias != "" {
		return fmt.Sprintf("-%s, --%s", opt.Alias, opt.ID)
	}
	if len(opt.ID) == 1 {
		return "-" + opt.ID
	}
	return "--" + opt.ID
}
