package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"ulascansenturk/weather-lookup/internal/forecast"
	"ulascansenturk/weather-lookup/internal/service"
)

type controller interface {
	screenSource
	OnQueryChanged(text string)
	FlushSuggestions()
	OnSuggestionChosen(locationName string) (<-chan struct{}, bool)
	OnUnitChanged(unit forecast.TemperatureUnit)
}

type app struct {
	coordinator controller
	screen      *screen
	out         io.Writer
}

// handle applies one input line and reports whether the client should keep
// running.
func (a *app) handle(line string) bool {
	cmd, err := parseCommand(line)
	if err != nil {
		fmt.Fprintf(a.out, "Error: %s\n", err)
		return true
	}

	switch cmd.kind {
	case cmdQuit:
		return false
	case cmdHelp:
		fmt.Fprintln(a.out, usage)
	case cmdQuery:
		a.coordinator.OnQueryChanged(cmd.text)
		a.screen.render(a.coordinator)
	case cmdSearch:
		a.coordinator.OnQueryChanged(a.coordinator.Snapshot().Query)
		a.coordinator.FlushSuggestions()
	case cmdUnit:
		a.coordinator.OnUnitChanged(cmd.unit)
		a.screen.render(a.coordinator)
	case cmdPick:
		a.pick(cmd.index)
	}

	return true
}

func (a *app) pick(index int) {
	suggestions := a.coordinator.Snapshot().Suggestions.Data
	if index >= len(suggestions) {
		fmt.Fprintf(a.out, "Error: no suggestion %d\n", index+1)
		return
	}

	name := suggestions[index].Name
	if _, started := a.coordinator.OnSuggestionChosen(name); !started {
		log.Debug().Str("location", name).Msg("forecast already loading")
	}
	a.screen.render(a.coordinator)
}

var _ controller = (*service.SearchCoordinator)(nil)
