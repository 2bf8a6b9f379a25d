package argz

const zshCompletionTemplate = `#compdef %s

_%s() {
    local -a completions
    completions=(%s)
    compadd -a completions
}

compdef _%s %s
`
