package argz

import (
	"fmt"
	"os"
	"strings"
)

// GenerateDump creates a diagnostic report of the parse inputs: the About
// metadata, the raw argument tokens, and every declared option with its
// binding type and the current value held by its slot. Intended for
// debugging option tables, not for end users.
func GenerateDump(about *About, opts Options, args []string) string {
	var sb strings.Builder

	sb.WriteString(GreenBoldS("Argz Option Dump") + "\n")
	sb.WriteString(strings.Repeat("=", 50) + "\n\n")

	sb.WriteString(generateAboutSection(about))
	sb.WriteString(generateArgumentsSection(args))
	sb.WriteString(generateOptionsSection(opts))
	sb.WriteString(generateEnvironmentSection())

	return sb.String()
}

func generateAboutSection(about *About) string {
	var sb strings.Builder

	sb.WriteString(GreenBoldS("About:") + "\n")
	if about.Description != "" {
		sb.WriteString(fmt.Sprintf("  Description: %s\n", BoldS(about.Description)))
	} else {
		sb.WriteString(fmt.Sprintf("  Description: %s\n", CyanS("<not set>")))
	}
	if about.Version != "" {
		sb.WriteString(fmt.Sprintf("  Version: %s\n", BoldS(about.Version)))
	} else {
		sb.WriteString(fmt.Sprintf("  Version: %s\n", CyanS("<not set>")))
	}
	sb.WriteString(fmt.Sprintf("  Print Help When No Options: %s\n", BoldS(fmt.Sprintf("%t", about.PrintHelpWhenNoOptions))))
	sb.WriteString(fmt.Sprintf("  Printed Help: %s\n", BoldS(fmt.Sprintf("%t", about.PrintedHelp))))
	sb.WriteString(fmt.Sprintf("  Printed Version: %s\n", BoldS(fmt.Sprintf("%t", about.PrintedVersion))))
	sb.WriteString("\n")

	return sb.String()
}

func generateArgumentsSection(args []string) string {
	var sb strings.Builder

	sb.WriteString(GreenBoldS("Arguments to Parse:") + "\n")
	if len(args) == 0 {
		sb.WriteString("  " + CyanS("<no arguments>") + "\n")
	} else {
		for i, arg := range args {
			sb.WriteString(fmt.Sprintf("  [%d]: %s\n", i, BoldS(fmt.Sprintf("%q", arg))))
		}
	}
	sb.WriteString("\n")

	return sb.String()
}

func generateOptionsSection(opts Options) string {
	var sb strings.Builder

	sb.WriteString(GreenBoldS("Options:") + "\n")
	if len(opts) == 0 {
		sb.WriteString("  " + CyanS("<no options>") + "\n")
	} else {
		for i, opt := range opts {
			sb.WriteString(fmt.Sprintf("  [%d] %s\n", i, formatOptionForDump(opt)))
		}
	}
	sb.WriteString("\n")

	return sb.String()
}

func formatOptionForDump(opt Option) string {
	var parts []string

	if opt.Alias != "" {
		parts = append(parts, fmt.Sprintf("%s (-%s)", BoldS(opt.ID), BoldS(opt.Alias)))
	} else {
		parts = append(parts, BoldS(opt.ID))
	}

	parts = append(parts, fmt.Sprintf("type:%s", CyanS(opt.Value.kind())))

	if current := opt.Value.render(); current != "" {
		parts = append(parts, fmt.Sprintf("current:%s", BoldS(current)))
	}

	if opt.Help != "" {
		parts = append(parts, fmt.Sprintf("help:%q", opt.Help))
	}

	return strings.Join(parts, ", ")
}

func generateEnvironmentSection() string {
	var sb strings.Builder

	sb.WriteString(GreenBoldS("Environment:") + "\n")
	argzColor := os.Getenv("ARGZ_COLOR")
	if argzColor != "" {
		sb.WriteString(fmt.Sprintf("  ARGZ_COLOR: %s\n", BoldS(argzColor)))
	} else {
		sb.WriteString(fmt.Sprintf("  ARGZ_COLOR: %s\n", CyanS("not set")))
	}

	return sb.String()
}
