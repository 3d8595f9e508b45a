package main

import (
	"database/sql"
	"flag"
	"log"
	"os"

	_ "github.com/lib/pq"

	"fpoint.dev/cosmic"
)

const createTable = `
CREATE TABLE IF NOT EXISTS cfp_process_summary (
	system TEXT NOT NULL,
	process TEXT NOT NULL,
	entries INTEGER NOT NULL,
	exits INTEGER NOT NULL,
	reads INTEGER NOT NULL,
	writes INTEGER NOT NULL,
	total_cfp INTEGER NOT NULL,
	PRIMARY KEY (system, process)
)`

const upsertSummary = `
INSERT INTO cfp_process_summary (system, process, entries, exits, reads, writes, total_cfp)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (system, process) DO UPDATE SET
	entries = EXCLUDED.entries,
	exits = EXCLUDED.exits,
	reads = EXCLUDED.reads,
	writes = EXCLUDED.writes,
	total_cfp = EXCLUDED.total_cfp`

func main() {
	dsn := flag.String("db", "postgres://localhost/cosmic?sslmode=disable", "Postgres DSN")
	flag.Parse()

	m, err := cosmic.Loader{}.Decode(os.Stdin)
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open("postgres", *dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if _, err := db.Exec(createTable); err != nil {
		log.Fatal(err)
	}

	tx, err := db.Begin()
	if err != nil {
		log.Fatal(err)
	}
	for _, sum := range cosmic.Summarize(m) {
		if _, err := tx.Exec(upsertSummary,
			m.Name, sum.Name, sum.Entries, sum.Exits, sum.Reads, sum.Writes, sum.TotalCFP); err != nil {
			tx.Rollback()
			log.Fatal(err)
		}
	}
	if err := tx.Commit(); err != nil {
		log.Fatal(err)
	}
	log.Printf("stored %d process summaries for %q", len(m.Processes), m.Name)
}
