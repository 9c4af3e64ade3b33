package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"ulascansenturk/weather-lookup/internal/fetchstate"
	"ulascansenturk/weather-lookup/internal/forecast"
)

type suggestionsState = fetchstate.State[[]forecast.Suggestion]

type commandKind int

const (
	cmdQuery commandKind = iota
	cmdPick
	cmdUnit
	cmdSearch
	cmdQuit
	cmdHelp
)

type command struct {
	kind  commandKind
	text  string
	index int
	unit  forecast.TemperatureUnit
}

const usage = `Type a location to search. Commands:
  :pick N     show the weather for suggestion N
  :unit C|F   switch the temperature unit
  :search     search again for the current text
  :help       show this message
  :quit       exit`

// parseCommand turns an input line into a command. Anything not starting
// with ':' is the new search text.
func parseCommand(line string) (command, error) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, ":") {
		return command{kind: cmdQuery, text: trimmed}, nil
	}

	name, arg, _ := strings.Cut(strings.TrimPrefix(trimmed, ":"), " ")
	arg = strings.TrimSpace(arg)

	switch strings.ToLower(name) {
	case "pick":
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 {
			return command{}, errors.New("usage: :pick N, with N a suggestion number")
		}
		return command{kind: cmdPick, index: n - 1}, nil
	case "unit":
		unit, err := forecast.ParseUnit(arg)
		if err != nil || arg == "" {
			return command{}, errors.New("usage: :unit C|F")
		}
		return command{kind: cmdUnit, unit: unit}, nil
	case "search":
		return command{kind: cmdSearch}, nil
	case "quit", "q", "exit":
		return command{kind: cmdQuit}, nil
	case "help", "h":
		return command{kind: cmdHelp}, nil
	}

	return command{}, fmt.Errorf("unknown command %q, try :help", name)
}
