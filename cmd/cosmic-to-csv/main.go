package main

import (
	"encoding/csv"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"fpoint.dev/cosmic"
)

func main() {
	dir := flag.String("dir", ".", "Directory")
	flag.Parse()

	m, err := cosmic.Loader{}.Decode(os.Stdin)
	if err != nil {
		log.Fatal(err)
	}

	writeProcesses(*dir, m)
	writeMovements(*dir, m)
}

func writeProcesses(dir string, m *cosmic.Measurement) {
	fd, err := os.Create(filepath.Join(dir, "processes.csv"))
	if err != nil {
		log.Fatal(err)
	}
	cw := csv.NewWriter(fd)
	cw.Write([]string{"Process", "Trigger", "ObjectOfInterest", "Entries", "Exits", "Reads", "Writes", "TotalCFP"})
	for _, sum := range cosmic.Summarize(m) {
		cw.Write([]string{
			sum.Name,
			sum.Trigger,
			sum.ObjectOfInterest,
			strconv.Itoa(sum.Entries),
			strconv.Itoa(sum.Exits),
			strconv.Itoa(sum.Reads),
			strconv.Itoa(sum.Writes),
			strconv.Itoa(sum.TotalCFP),
		})
	}
	cw.Flush()
	fd.Close()
}

func writeMovements(dir string, m *cosmic.Measurement) {
	fd, err := os.Create(filepath.Join(dir, "movements.csv"))
	if err != nil {
		log.Fatal(err)
	}
	cw := csv.NewWriter(fd)
	cw.Write([]string{"Process", "Sequence", "Type", "Description", "ObjectOfInterest", "Trigger", "CodeReference", "Notes"})
	for i := range m.Processes {
		p := &m.Processes[i]
		for seq, mv := range p.Movements {
			cw.Write([]string{
				p.Name,
				strconv.Itoa(seq + 1),
				string(mv.Type),
				mv.Description,
				mv.ObjectOfInterest,
				mv.Trigger,
				mv.CodeReference,
				mv.Notes,
			})
		}
	}
	cw.Flush()
	fd.Close()
}
