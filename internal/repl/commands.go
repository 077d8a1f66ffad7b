// ============================================================================
// lambda - Lambda Calculus Front End
// ============================================================================
//
// Package:     repl
// Description: Colon commands understood by the REPL
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package repl

import (
	"context"
	"strings"
)

// CommandPrefix starts every REPL command
const CommandPrefix = ":"

// Command is a REPL command such as :help
type Command struct {
	Name  string
	Short string
	Usage string
	Help  string
	run   func(s *Session, ctx context.Context, args string) Response
}

// builtinCommands returns the commands in the order :help lists them
func builtinCommands() []Command {
	return []Command{
		{
			Name:  "help",
			Short: "h",
			Usage: ":help",
			Help:  "Shows this help",
			run:   (*Session).cmdHelp,
		},
		{
			Name:  "type",
			Short: "t",
			Usage: ":type <expr>",
			Help:  "Displays the type of the expression provided",
			run:   (*Session).cmdType,
		},
		{
			Name:  "options",
			Short: "o",
			Usage: ":options [ast|tokens|source|type] [on|off]",
			Help:  "Shows or changes the REPL display options",
			run:   (*Session).cmdOptions,
		},
		{
			Name:  "tokens",
			Short: "k",
			Usage: ":tokens <input>",
			Help:  "Shows the tokens of the input",
			run:   (*Session).cmdTokens,
		},
		{
			Name:  "history",
			Short: "y",
			Usage: ":history [n]",
			Help:  "Lists the most recent inputs",
			run:   (*Session).cmdHistory,
		},
		{
			Name:  "quit",
			Short: "q",
			Usage: ":quit",
			Help:  "Exits the REPL environment",
			run:   (*Session).cmdQuit,
		},
	}
}

// Commands returns the available commands
func Commands() []Command {
	return builtinCommands()
}

// IsCommand reports whether line is a command rather than source text
func IsCommand(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), CommandPrefix)
}

// parseCommand splits ":name rest" and looks name up by full or short name.
// name is returned even when no command matches.
func (s *Session) parseCommand(line string) (cmd *Command, name, args string) {
	body := strings.TrimPrefix(strings.TrimSpace(line), CommandPrefix)
	name, args, _ = strings.Cut(body, " ")
	args = strings.TrimSpace(args)

	for i := range s.commands {
		if s.commands[i].Name == name || s.commands[i].Short == name {
			return &s.commands[i], name, args
		}
	}
	return nil, name, args
}
