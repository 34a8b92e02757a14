// Package main implements the student-grading demo: a line-oriented
// "id,name,score" input file parsed into a keyed store, printed with letter
// grades and a class average. One malformed line fails the whole read.
package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/google/uuid"

	"github.com/davidegreene/storelab/internal/config"
	"github.com/davidegreene/storelab/internal/domain"
	"github.com/davidegreene/storelab/internal/grading"
	"github.com/davidegreene/storelab/internal/platform/logger"
	"github.com/davidegreene/storelab/internal/store"
)

// sampleInput is written to the configured path when no input file exists,
// so the demo runs out of the box.
const sampleInput = `101, Alice Smith, 84
102, Bruno Costa, 65
103, Chen Wei, 91
104, Dana Levin, 58
105, Emil Novak, 73
`

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	appLogger := logger.Setup(cfg.App).With("run_id", uuid.NewString(), "demo", "grading")
	appLogger.Info("starting grading demo", "input", cfg.Grading.InputFile)

	if _, err := os.Stat(cfg.Grading.InputFile); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(cfg.Grading.InputFile, []byte(sampleInput), 0o644); err != nil {
			log.Fatalf("failed to write sample input: %v", err)
		}
		appLogger.Info("wrote sample input file", "path", cfg.Grading.InputFile)
	}

	records, err := grading.ReadFile(cfg.Grading.InputFile)
	if err != nil {
		var malformed *grading.MalformedRecordError
		if errors.As(err, &malformed) {
			log.Fatalf("input rejected at line %d: %s", malformed.Line, malformed.Reason)
		}
		log.Fatalf("failed to read input: %v", err)
	}

	students := store.New[domain.StudentRecord]("student")
	for _, r := range records {
		if err := students.Insert(r); err != nil {
			log.Fatalf("failed to load students: %v", err)
		}
	}
	appLogger.Info("loaded students", "count", students.Len())

	fmt.Println("Class results:")
	results := students.GetAll()
	sort.Slice(results, func(i, j int) bool { return results[i].ID < results[j].ID })
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSCORE\tGRADE")
	for _, s := range results {
		fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", s.ID, s.Name, s.Score, s.Grade())
	}
	w.Flush()

	fmt.Printf("\nClass average: %.1f\n", grading.Average(results))
}
