// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/kraklabs/sigdoc/internal/errors"
)

// bashCompletionTemplate is the bash completion script for sigdoc.
const bashCompletionTemplate = `#!/bin/bash

# Bash completion script for sigdoc
# Installation:
#   source <(sigdoc completion bash)
#   Or add to ~/.bashrc:
#   echo 'source <(sigdoc completion bash)' >> ~/.bashrc

_sigdoc_completion() {
    local cur prev commands
    commands="init parse format completion"

    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    if [ $COMP_CWORD -eq 1 ]; then
        if [[ ${cur} == -* ]] ; then
            COMPREPLY=( $(compgen -W "--config --json --no-color --quiet --verbose --version" -- ${cur}) )
        else
            COMPREPLY=( $(compgen -W "${commands}" -- ${cur}) )
        fi
        return 0
    fi

    local cmd="${COMP_WORDS[1]}"
    case "${cmd}" in
        init)
            if [[ ${cur} == -* ]] ; then
                COMPREPLY=( $(compgen -W "--force --project-id --dir" -- ${cur}) )
            fi
            ;;
        parse)
            if [[ ${prev} == --prose ]] ; then
                COMPREPLY=( $(compgen -f -- ${cur}) )
            elif [[ ${cur} == -* ]] ; then
                COMPREPLY=( $(compgen -W "--json --prose --function" -- ${cur}) )
            fi
            ;;
        format)
            if [[ ${prev} == --output || ${prev} == --metrics-file ]] ; then
                COMPREPLY=( $(compgen -f -- ${cur}) )
            elif [[ ${cur} == -* ]] ; then
                COMPREPLY=( $(compgen -W "--workers --output --metrics-file --json" -- ${cur}) )
            fi
            ;;
        completion)
            if [ $COMP_CWORD -eq 2 ]; then
                COMPREPLY=( $(compgen -W "bash zsh fish" -- ${cur}) )
            fi
            ;;
    esac
}

complete -F _sigdoc_completion sigdoc
`

// zshCompletionTemplate is the zsh completion script for sigdoc.
const zshCompletionTemplate = `#compdef sigdoc

# Zsh completion script for sigdoc
# Installation:
#   1. Ensure compinit is loaded (add to ~/.zshrc if not present):
#      autoload -U compinit; compinit
#   2. Save this script to a directory in your fpath:
#      sigdoc completion zsh > "${fpath[1]}/_sigdoc"
#   3. Reload completions:
#      rm -f ~/.zcompdump; compinit

_sigdoc() {
    local -a commands
    commands=(
        'init:Create .sigdoc/project.yaml configuration'
        'parse:Parse and render a single raw docstring'
        'format:Format every function of the project'
        'completion:Generate shell completion script'
    )

    _arguments -C \
        '(- *)--version[Show version and exit]' \
        '--config[Path to .sigdoc/project.yaml]:config file:_files -g "*.yaml"' \
        '--json[Machine-readable output]' \
        '--no-color[Disable colored output]' \
        '(-q --quiet)'{-q,--quiet}'[Suppress progress output]' \
        '*'{-v,--verbose}'[Verbose logging]' \
        '1: :->command' \
        '*:: :->args'

    case $state in
        command)
            _describe 'command' commands
            ;;
        args)
            case $words[1] in
                init)
                    _arguments \
                        '--force[Overwrite an existing project.yaml]' \
                        '--project-id[Project identifier]:id:' \
                        '--dir[Project directory]:directory:_files -/'
                    ;;
                parse)
                    _arguments \
                        '--json[Print the parsed document as JSON]' \
                        '--prose[Prose YAML file]:prose file:_files -g "*.yaml"' \
                        '--function[Prose entry to inject]:function:' \
                        '1:raw docstring:'
                    ;;
                format)
                    _arguments \
                        '--workers[Functions formatted concurrently]:workers:' \
                        '--output[Output catalog path]:output file:_files' \
                        '--metrics-file[Prometheus metrics file]:metrics file:_files' \
                        '--json[Print the report as JSON]'
                    ;;
                completion)
                    _arguments \
                        '1:shell:(bash zsh fish)'
                    ;;
            esac
            ;;
    esac
}

_sigdoc
`

// fishCompletionTemplate is the fish completion script for sigdoc.
const fishCompletionTemplate = `# Fish completion script for sigdoc
# Installation:
#   1. Load completions for current session:
#      sigdoc completion fish | source
#   2. Install permanently:
#      sigdoc completion fish > ~/.config/fish/completions/sigdoc.fish

# Commands
complete -c sigdoc -f -n "__fish_use_subcommand" -a "init" -d "Create .sigdoc/project.yaml configuration"
complete -c sigdoc -f -n "__fish_use_subcommand" -a "parse" -d "Parse and render a single raw docstring"
complete -c sigdoc -f -n "__fish_use_subcommand" -a "format" -d "Format every function of the project"
complete -c sigdoc -f -n "__fish_use_subcommand" -a "completion" -d "Generate shell completion script"

# Global flags
complete -c sigdoc -l version -d "Show version and exit"
complete -c sigdoc -l config -d "Path to .sigdoc/project.yaml" -r
complete -c sigdoc -l json -d "Machine-readable output"
complete -c sigdoc -l no-color -d "Disable colored output"
complete -c sigdoc -s q -l quiet -d "Suppress progress output"
complete -c sigdoc -s v -l verbose -d "Verbose logging"

# init command flags
complete -c sigdoc -n "__fish_seen_subcommand_from init" -l force -d "Overwrite an existing project.yaml"
complete -c sigdoc -n "__fish_seen_subcommand_from init" -l project-id -d "Project identifier" -r
complete -c sigdoc -n "__fish_seen_subcommand_from init" -l dir -d "Project directory" -r

# parse command flags
complete -c sigdoc -n "__fish_seen_subcommand_from parse" -l json -d "Print the parsed document as JSON"
complete -c sigdoc -n "__fish_seen_subcommand_from parse" -l prose -d "Prose YAML file" -r
complete -c sigdoc -n "__fish_seen_subcommand_from parse" -l function -d "Prose entry to inject" -r

# format command flags
complete -c sigdoc -n "__fish_seen_subcommand_from format" -l workers -d "Functions formatted concurrently" -r
complete -c sigdoc -n "__fish_seen_subcommand_from format" -l output -d "Output catalog path" -r
complete -c sigdoc -n "__fish_seen_subcommand_from format" -l metrics-file -d "Prometheus metrics file" -r
complete -c sigdoc -n "__fish_seen_subcommand_from format" -l json -d "Print the report as JSON"

# completion command arguments
complete -c sigdoc -n "__fish_seen_subcommand_from completion" -f -a "bash" -d "Generate bash completion script"
complete -c sigdoc -n "__fish_seen_subcommand_from completion" -f -a "zsh" -d "Generate zsh completion script"
complete -c sigdoc -n "__fish_seen_subcommand_from completion" -f -a "fish" -d "Generate fish completion script"
`

var completionScripts = map[string]string{
	"bash": bashCompletionTemplate,
	"zsh":  zshCompletionTemplate,
	"fish": fishCompletionTemplate,
}

// runCompletion executes the 'completion' command, printing the completion
// script for bash, zsh or fish.
//
// Examples:
//
//	source <(sigdoc completion bash)
//	sigdoc completion zsh > "${fpath[1]}/_sigdoc"
//	sigdoc completion fish | source
func runCompletion(args []string, con console) error {
	fs := flag.NewFlagSet("completion", flag.ContinueOnError)
	fs.SetOutput(con.err)

	fs.Usage = func() {
		fmt.Fprintf(con.err, `Usage: sigdoc completion <shell>

Description:
  Generate shell completion scripts for bash, zsh, or fish.

Arguments:
  shell    Shell type: bash, zsh, or fish (required)

Installation:
  Bash:  echo 'source <(sigdoc completion bash)' >> ~/.bashrc
  Zsh:   sigdoc completion zsh > "${fpath[1]}/_sigdoc"
  Fish:  sigdoc completion fish > ~/.config/fish/completions/sigdoc.fish

`)
	}

	ok, err := parseCommandFlags(fs, args)
	if !ok {
		return err
	}

	if fs.NArg() != 1 {
		return errors.NewInputError(
			"Invalid arguments",
			"The completion command requires exactly one argument: the shell name",
			"Run 'sigdoc completion bash', 'sigdoc completion zsh', or 'sigdoc completion fish'",
		)
	}

	shell := fs.Arg(0)
	script, found := completionScripts[shell]
	if !found {
		return errors.NewInputError(
			"Unsupported shell",
			fmt.Sprintf("Shell '%s' is not supported. Valid options: bash, zsh, fish", shell),
			"Run 'sigdoc completion bash', 'sigdoc completion zsh', or 'sigdoc completion fish'",
		)
	}
	_, err = fmt.Fprint(con.out, script)
	return err
}
