package argz

import (
	"fmt"
	"io"
	"strings"
)

// GenBashCompletion writes a bash completion script for program to w. The
// script offers the reserved help and version flags plus every declared
// option under the same forms help lists them.
func GenBashCompletion(w io.Writer, program string, opts Options) error {
	words := strings.Join(completionWords(opts), " ")
	_, err := fmt.Fprintf(w, bashCompletionTemplate, program, program, words, program, program)
	return err
}

// GenZshCompletion writes a zsh completion script for program to w.
func GenZshCompletion(w io.Writer, program string, opts Options) error {
	words := strings.Join(completionWords(opts), " ")
	_, err := fmt.Fprintf(w, zshCompletionTemplate, program, program, words, program, program)
	return err
}

// completionWords returns every flag word the shell should offer, in help
// order: the reserved forms first, then each option's forms.
func completionWords(opts Options) []string {
	words := []string{"-h", "--help", "-v", "--version"}
	for _, opt := range opts {
		if opt.Alias != "" {
			words = append(words, "-"+opt.Alias, "--"+opt.ID)
		} else if len(opt.ID) == 1 {
			words = append(words, "-"+opt.ID)
		} else {
			words = append(words, "--"+opt.ID)
		}
	}
	return words
}
