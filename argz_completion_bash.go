package argz

const bashCompletionTemplate = `# bash completion for %s

_%s_completions()
{
    local cur
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"

    COMPREPLY=($(compgen -W "%s" -- "$cur"))
}

complete -o default -F _%s_completions %s
`
