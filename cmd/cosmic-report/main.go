package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kingpin"

	"fpoint.dev/cosmic"
	"fpoint.dev/cosmic/xlsx"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.Lshortfile)

	cmdSummary := kingpin.Command("summary", "Show total CFP summary")
	cmdProcesses := kingpin.Command("processes", "Show per-process CFP report")
	cmdMovements := kingpin.Command("movements", "List all data movements")
	cmdXLSX := kingpin.Command("xlsx", "Export the report workbook")
	output := cmdXLSX.Flag("output", "Output file").Short('o').Default("cosmic_measurement.xlsx").String()
	infile := kingpin.Flag("input", "Input file").OpenFile(os.O_RDONLY, 0o666)
	engine := kingpin.Flag("engine", "Configuration parser engine").Default("builtin").Enum("builtin", "yaml")
	cmd := kingpin.Parse()

	loader := cosmic.Loader{}
	if *engine == "yaml" {
		loader.Parser = cosmic.ParseYAML
	}

	input := io.Reader(os.Stdin)
	if *infile != nil {
		input = *infile
	}
	m, err := loader.Decode(input)
	if err != nil {
		log.Fatal(err)
	}

	switch cmd {
	case cmdSummary.FullCommand():
		summaryReport(m)
	case cmdProcesses.FullCommand():
		processReport(m)
	case cmdMovements.FullCommand():
		movementReport(m)
	case cmdXLSX.FullCommand():
		path, err := xlsx.WriteReport(m, *output)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println("Excel report generated at:", path)
	}
}

func summaryReport(m *cosmic.Measurement) {
	fmt.Println(m.Name)
	if m.Boundary != "" {
		fmt.Println("Boundary:", m.Boundary)
	}
	fmt.Printf("Functional processes: %d\n", len(m.Processes))
	fmt.Printf("Total CFP: %d\n", m.TotalCFP())
}

func processReport(m *cosmic.Measurement) {
	fmt.Printf("%-40s %5s %5s %5s %5s %5s\n", "PROCESS", "E", "X", "R", "W", "CFP")
	for _, sum := range cosmic.Summarize(m) {
		fmt.Printf("%-40s %5d %5d %5d %5d %5d\n",
			sum.Name, sum.Entries, sum.Exits, sum.Reads, sum.Writes, sum.TotalCFP)
	}
	fmt.Printf("%-40s %29d\n", "TOTAL", m.TotalCFP())
}

func movementReport(m *cosmic.Measurement) {
	for i := range m.Processes {
		p := &m.Processes[i]
		fmt.Printf("%s (%d CFP)\n", p.Name, p.TotalCFP())
		for seq, mv := range p.Movements {
			fmt.Printf("  %2d. [%s] %s\n", seq+1, mv.Type, mv.Description)
		}
	}
}
