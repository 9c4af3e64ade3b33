package forecast

import (
	"fmt"
	"math"
	"strings"
)

type TemperatureUnit string

const (
	Celsius    TemperatureUnit = "C"
	Fahrenheit TemperatureUnit = "F"
)

func ParseUnit(value string) (TemperatureUnit, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "", "C", "CELSIUS":
		return Celsius, nil
	case "F", "FAHRENHEIT":
		return Fahrenheit, nil
	}
	return "", fmt.Errorf("unknown temperature unit %q", value)
}

func (u TemperatureUnit) String() string {
	return string(u)
}

// FormatTemperature renders the reading for u rounded to a whole degree,
// e.g. "20°".
func FormatTemperature(celsius, fahrenheit float64, u TemperatureUnit) string {
	value := celsius
	if u == Fahrenheit {
		value = fahrenheit
	}
	return fmt.Sprintf("%d°", int64(math.Round(value)))
}
