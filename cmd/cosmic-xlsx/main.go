package main

import (
	"log/slog"
	"os"

	"fpoint.dev/cosmic"
	"fpoint.dev/cosmic/xlsx"
)

func main() {
	m, err := cosmic.Loader{}.Decode(os.Stdin)
	if err != nil {
		slog.Error("Error parsing measurement", "error", err)
		os.Exit(1)
	}

	bs, err := xlsx.ReportXLSX(m)
	if err != nil {
		slog.Error("Error creating Excel file", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile("cosmic_measurement.xlsx", bs, 0o644); err != nil {
		slog.Error("Error writing Excel file", "error", err)
		os.Exit(1)
	}
}
