// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"gioui.org/unit"
	"github.com/spf13/viper"
	"github.com/xuri/excelize/v2"

	"github.com/Jokwanhee/gioplot/chart"
)

type config struct {
	WindowWidth  unit.Dp
	WindowHeight unit.Dp
	UpperRatio   float32
	DataFile     string
}

// loadConfig reads gioplot.yaml from the working directory if present and
// falls back to the built-in defaults otherwise.
func loadConfig() config {
	v := viper.New()
	v.SetConfigName("gioplot")
	v.AddConfigPath(".")
	v.SetDefault("window.width", 420)
	v.SetDefault("window.height", 760)
	v.SetDefault("chart.upper_ratio", 0.05)
	v.SetDefault("data.file", "")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Printf("config: %v (using defaults)", err)
		}
	}
	return config{
		WindowWidth:  unit.Dp(v.GetFloat64("window.width")),
		WindowHeight: unit.Dp(v.GetFloat64("window.height")),
		UpperRatio:   float32(v.GetFloat64("chart.upper_ratio")),
		DataFile:     v.GetString("data.file"),
	}
}

// loadSeries reads a series from the first sheet of an xlsx file. Each data
// row is label, value, goal and an optional enabled flag; a non-numeric
// first row is skipped as a header.
func loadSeries(path string) ([]chart.Point, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var series []chart.Point
	for i, row := range rows {
		if len(row) < 3 {
			continue
		}
		value, err := strconv.ParseFloat(row[1], 32)
		if err != nil {
			if i == 0 {
				continue // header
			}
			return nil, fmt.Errorf("%s row %d: bad value %q", path, i+1, row[1])
		}
		goal, err := strconv.ParseFloat(row[2], 32)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad goal %q", path, i+1, row[2])
		}
		enabled := true
		if len(row) > 3 && row[3] != "" {
			enabled, err = strconv.ParseBool(row[3])
			if err != nil {
				return nil, fmt.Errorf("%s row %d: bad enabled flag %q", path, i+1, row[3])
			}
		}
		series = append(series, chart.Point{
			Label:   row[0],
			Value:   float32(value),
			Goal:    float32(goal),
			Enabled: enabled,
		})
	}
	if len(series) == 0 {
		return nil, fmt.Errorf("%s: no data rows", path)
	}
	return series, nil
}

func sampleSeries() []chart.Point {
	return []chart.Point{
		{Label: "Mon", Value: 52.6, Goal: 51.2, Enabled: true},
		{Label: "Tue", Value: 52.6, Goal: 51.3, Enabled: true},
		{Label: "Wed", Value: 51.2, Goal: 51.5, Enabled: true},
		{Label: "Thu", Value: 51.1, Goal: 51.5, Enabled: false},
		{Label: "Fri", Value: 51.3, Goal: 51.5, Enabled: true},
		{Label: "Sat", Value: 51.6, Goal: 51.5, Enabled: true},
		{Label: "Sun", Value: 51.5, Goal: 51.5, Enabled: true},
	}
}
