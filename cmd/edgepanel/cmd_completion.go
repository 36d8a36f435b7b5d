package main

import (
	"flag"
	"fmt"
	"io"
)

func completionCmd(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("completion", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: edgepanel completion <bash|zsh|fish>\n\n")
		fmt.Fprintf(stderr, "Generate shell completion scripts.\n\n")
		fmt.Fprintf(stderr, "Examples:\n")
		fmt.Fprintf(stderr, "  # Bash\n")
		fmt.Fprintf(stderr, "  edgepanel completion bash > /usr/local/etc/bash_completion.d/edgepanel\n")
		fmt.Fprintf(stderr, "  # Zsh\n")
		fmt.Fprintf(stderr, "  edgepanel completion zsh > \"${fpath[1]}/_edgepanel\"\n")
		fmt.Fprintf(stderr, "  # Fish\n")
		fmt.Fprintf(stderr, "  edgepanel completion fish > ~/.config/fish/completions/edgepanel.fish\n")
	}

	if err := fs.Parse(args); err != nil {
		return 1
	}

	if fs.NArg() < 1 {
		fmt.Fprintf(stderr, "Error: shell name is required (bash, zsh, or fish)\n\n")
		fs.Usage()
		return 1
	}

	switch shell := fs.Arg(0); shell {
	case "bash":
		fmt.Fprint(stdout, generateBashCompletion())
	case "zsh":
		fmt.Fprint(stdout, generateZshCompletion())
	case "fish":
		fmt.Fprint(stdout, generateFishCompletion())
	default:
		fmt.Fprintf(stderr, "Error: unsupported shell %q (use bash, zsh, or fish)\n", shell)
		return 1
	}
	return 0
}

func generateBashCompletion() string {
	return `# bash completion for edgepanel                          -*- shell-script -*-

_edgepanel() {
    local cur prev words cword
    _init_completion || return

    local commands="call serve themes completion version help"
    local actions="start stop text"

    local tui_flags="--base-url --config --theme --version"
    local call_flags="--base-url --text --output --verbose --timeout --config"
    local serve_flags="--port --latency --error-rate --cors-origin --log-level"

    local output_formats="text json junit"
    local log_levels="debug info warn error"
    local shells="bash zsh fish"

    if [[ ${cword} -eq 1 ]]; then
        if [[ "${cur}" == -* ]]; then
            COMPREPLY=($(compgen -W "${tui_flags}" -- "${cur}"))
        else
            COMPREPLY=($(compgen -W "${commands}" -- "${cur}"))
        fi
        return
    fi

    local command="${words[1]}"

    case "${prev}" in
        --output)
            COMPREPLY=($(compgen -W "${output_formats}" -- "${cur}"))
            return
            ;;
        --log-level)
            COMPREPLY=($(compgen -W "${log_levels}" -- "${cur}"))
            return
            ;;
        --theme)
            COMPREPLY=($(compgen -W "$(edgepanel themes 2>/dev/null | tr ' ' '-')" -- "${cur}"))
            return
            ;;
        --config)
            _filedir yaml
            return
            ;;
        --base-url|--text|--timeout|--port|--latency|--error-rate|--cors-origin)
            return
            ;;
    esac

    case "${command}" in
        call)
            if [[ "${cur}" == -* ]]; then
                COMPREPLY=($(compgen -W "${call_flags}" -- "${cur}"))
            else
                COMPREPLY=($(compgen -W "${actions}" -- "${cur}"))
            fi
            ;;
        serve)
            COMPREPLY=($(compgen -W "${serve_flags}" -- "${cur}"))
            ;;
        completion)
            COMPREPLY=($(compgen -W "${shells}" -- "${cur}"))
            ;;
    esac
}

complete -F _edgepanel edgepanel
`
}

func generateZshCompletion() string {
	return `#compdef edgepanel

# zsh completion for edgepanel

_edgepanel() {
    local -a commands
    commands=(
        'call:Send start/stop/text commands headlessly'
        'serve:Run a demo backend'
        'themes:List built-in color themes'
        'completion:Generate shell completion scripts'
        'version:Print version information'
        'help:Show help message'
    )

    _arguments -C \
        '--base-url[Backend base URL]:url:' \
        '--config[Config file]:config file:_files -g "*.yaml"' \
        '--theme[Color theme]:theme:' \
        '--version[Print version and exit]' \
        '1:command:->command' \
        '*::arg:->args'

    case $state in
        command)
            _describe -t commands 'edgepanel commands' commands
            ;;
        args)
            case $words[1] in
                call)
                    _arguments \
                        '--base-url[Backend base URL]:url:' \
                        '--text[Text to send]:text:' \
                        '--output[Output format]:format:(text json junit)' \
                        '--verbose[Show response data]' \
                        '--timeout[Request timeout]:timeout:' \
                        '--config[Config file]:config file:_files -g "*.yaml"' \
                        '*:command:(start stop text)'
                    ;;
                serve)
                    _arguments \
                        '--port[Port to listen on]:port:' \
                        '--latency[Artificial response latency]:latency:' \
                        '--error-rate[Random error rate]:rate:' \
                        '--cors-origin[Access-Control-Allow-Origin value]:origin:' \
                        '--log-level[Log level]:level:(debug info warn error)'
                    ;;
                completion)
                    _arguments \
                        '1:shell:(bash zsh fish)'
                    ;;
            esac
            ;;
    esac
}

_edgepanel "$@"
`
}

func generateFishCompletion() string {
	return `# fish completion for edgepanel

complete -c edgepanel -f

# Subcommands
complete -c edgepanel -n '__fish_use_subcommand' -a call -d 'Send start/stop/text commands headlessly'
complete -c edgepanel -n '__fish_use_subcommand' -a serve -d 'Run a demo backend'
complete -c edgepanel -n '__fish_use_subcommand' -a themes -d 'List built-in color themes'
complete -c edgepanel -n '__fish_use_subcommand' -a completion -d 'Generate shell completion scripts'
complete -c edgepanel -n '__fish_use_subcommand' -a version -d 'Print version information'
complete -c edgepanel -n '__fish_use_subcommand' -a help -d 'Show help message'

# TUI flags
complete -c edgepanel -n '__fish_use_subcommand' -l base-url -d 'Backend base URL' -r
complete -c edgepanel -n '__fish_use_subcommand' -l config -d 'Config file' -rF
complete -c edgepanel -n '__fish_use_subcommand' -l theme -d 'Color theme' -r
complete -c edgepanel -n '__fish_use_subcommand' -l version -d 'Print version and exit'

# call
complete -c edgepanel -n '__fish_seen_subcommand_from call' -a 'start stop text' -d 'Command'
complete -c edgepanel -n '__fish_seen_subcommand_from call' -l base-url -d 'Backend base URL' -r
complete -c edgepanel -n '__fish_seen_subcommand_from call' -l text -d 'Text to send' -r
complete -c edgepanel -n '__fish_seen_subcommand_from call' -l output -d 'Output format' -ra 'text json junit'
complete -c edgepanel -n '__fish_seen_subcommand_from call' -l verbose -d 'Show response data'
complete -c edgepanel -n '__fish_seen_subcommand_from call' -l timeout -d 'Request timeout' -r
complete -c edgepanel -n '__fish_seen_subcommand_from call' -l config -d 'Config file' -rF

# serve
complete -c edgepanel -n '__fish_seen_subcommand_from serve' -l port -d 'Port to listen on' -r
complete -c edgepanel -n '__fish_seen_subcommand_from serve' -l latency -d 'Artificial response latency' -r
complete -c edgepanel -n '__fish_seen_subcommand_from serve' -l error-rate -d 'Random error rate' -r
complete -c edgepanel -n '__fish_seen_subcommand_from serve' -l cors-origin -d 'Access-Control-Allow-Origin value' -r
complete -c edgepanel -n '__fish_seen_subcommand_from serve' -l log-level -d 'Log level' -ra 'debug info warn error'

# completion - shell names
complete -c edgepanel -n '__fish_seen_subcommand_from completion' -a 'bash zsh fish' -d 'Shell type'
`
}
