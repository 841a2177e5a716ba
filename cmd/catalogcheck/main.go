package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/2beens/fitguide/internal/catalog"
	"github.com/2beens/fitguide/internal/logging"
	"github.com/2beens/fitguide/internal/video"

	log "github.com/sirupsen/logrus"
)

func main() {
	catalogPath := flag.String("catalog", "", "catalog file to check (.toml, .yaml, .yml, .json); empty checks the built-in catalog")
	strict := flag.Bool("strict", false, "fail when an exercise has no playable video")
	dumpJSON := flag.Bool("json", false, "print the normalized catalog as JSON instead of the summary")
	logLevel := flag.String("log-level", "warn", "log level")
	flag.Parse()

	logging.Setup(logging.LoggerSetupParams{
		LogLevel: *logLevel,
	})

	c, err := loadCatalog(*catalogPath)
	if err != nil {
		log.Errorf("invalid catalog: %s", err)
		os.Exit(1)
	}

	if *dumpJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(c.Days()); err != nil {
			log.Fatalf("encode catalog: %s", err)
		}
		return
	}

	unavailable := summarize(os.Stdout, c)
	if *strict && unavailable > 0 {
		log.Errorf("%d exercise(s) without a playable video", unavailable)
		os.Exit(2)
	}
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.Load(path)
}

// summarize prints one line per day and per exercise, and returns the number
// of exercises whose video would render as unavailable.
func summarize(w io.Writer, c *catalog.Catalog) int {
	unavailable := 0

	if featured, ok := c.Featured(); ok {
		fmt.Fprintf(w, "featured: %s (%s / %s)\n", featured.Day, featured.Title, featured.Subtitle)
	} else {
		fmt.Fprintln(w, "featured: none")
	}

	for _, day := range c.Days() {
		fmt.Fprintf(w, "%s [%s] %d exercise(s)\n", day.Day, day.Category, len(day.Exercises))
		for _, ex := range day.Exercises {
			status := "ok"
			if _, err := video.Parse(ex.VideoURL); err != nil {
				status = "video unavailable"
				unavailable++
			}
			fmt.Fprintf(w, "  - %s: %dx%d, %d step(s), %s\n", ex.Name, ex.Sets, ex.Reps, len(ex.Steps), status)
		}
	}

	fmt.Fprintf(w, "total: %d day(s), %d exercise(s), %d without video\n",
		len(c.Days()), c.ExercisesCount(), unavailable)

	return unavailable
}
