package common

import (
	"fmt"
	"os"
	"strings"

	"github.com/ternarybob/banner"
)

// PrintBanner displays the application startup banner to stderr.
func PrintBanner(config *Config) {
	lineColor := banner.ColorCyan
	textColor := banner.ColorBold + banner.ColorWhite
	width := 64
	hr := lineColor + strings.Repeat("═", width) + banner.ColorReset

	art := []string{
		` 8888888888 8888888 888b    888  .d8888b.  8888888 .d8888b.`,
		` 888          888   8888b   888 d88P  Y88b   888  d88P  Y88b`,
		` 888          888   88888b  888 Y88b.        888  888    888`,
		` 8888888      888   888Y88b 888  "Y888b.     888  888`,
		` 888          888   888 Y88b888     "Y88b.   888  888  88888`,
		` 888          888   888  Y88888       "888   888  888    888`,
		` 888          888   888   Y8888 Y88b  d88P   888  Y88b  d88P`,
		` 888        8888888 888    Y888  "Y8888P"  8888888 "Y8888P88`,
	}

	fmt.Fprintf(os.Stderr, "\n%s\n\n", hr)
	for _, line := range art {
		fmt.Fprintf(os.Stderr, "%s%s%s\n", textColor, line, banner.ColorReset)
	}
	fmt.Fprintf(os.Stderr, "\n%s  Financial Document Analysis & Stock Screening%s\n", textColor, banner.ColorReset)
	fmt.Fprintf(os.Stderr, "\n%s\n\n", hr)

	kvPad := 14
	kvLines := [][2]string{
		{"Version", GetVersion()},
		{"Build", GetBuild()},
		{"Environment", config.Environment},
		{"Input", config.Storage.Input},
		{"Processing", config.Storage.Processing},
		{"Output", config.Storage.Output},
	}
	for _, kv := range kvLines {
		fmt.Fprintf(os.Stderr, "%s  %-*s %s%s\n", textColor, kvPad, kv[0], kv[1], banner.ColorReset)
	}

	fmt.Fprintf(os.Stderr, "\n%s\n\n", hr)
}
