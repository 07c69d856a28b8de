// Command parity replays read-only CRM routes against this service and the legacy backend and
// reports where status codes or payloads diverge.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

func main() {
	var (
		currentURL  string
		legacyURL   string
		targetsPath string
		timeout     time.Duration
	)
	flag.StringVar(&currentURL, "current", "http://localhost:4000/api", "Base URL of this service")
	flag.StringVar(&legacyURL, "legacy", "http://localhost:5000/api", "Base URL of the legacy backend")
	flag.StringVar(&targetsPath, "targets", filepath.Join("scripts", "parity", "targets.json"), "Path to JSON targets file")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "Per-request timeout")
	flag.Parse()

	targets, err := loadTargets(targetsPath)
	if err != nil {
		log.Fatalf("failed to load targets: %v", err)
	}

	p := &prober{
		client:     &http.Client{Timeout: timeout},
		currentURL: currentURL,
		legacyURL:  legacyURL,
		token:      os.Getenv("PARITY_BEARER_TOKEN"),
	}

	breaking, optional := 0, 0
	fmt.Println("Parity report")
	for _, t := range targets {
		res := p.check(t)
		report(res)
		if res.failed() {
			if t.Critical {
				breaking++
			} else {
				optional++
			}
		}
	}

	fmt.Printf("breaking: %d, optional: %d\n", breaking, optional)
	if breaking > 0 {
		os.Exit(1)
	}
}

func loadTargets(path string) ([]target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file struct {
		Targets []target `json:"targets"`
	}
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(file.Targets) == 0 {
		return nil, fmt.Errorf("no targets defined in %s", path)
	}
	return file.Targets, nil
}

func report(res result) {
	status := "OK"
	switch {
	case res.Err != nil:
		status = "ERROR"
	case res.failed():
		status = "DIFF"
	}
	fmt.Printf("[%s] GET %s\n", status, res.Target.Path)
	if res.Err != nil {
		fmt.Printf("  %v\n", res.Err)
		return
	}
	fmt.Printf("  current %d in %s, legacy %d in %s, body match %t, critical %t\n",
		res.CurrentStatus, res.Current, res.LegacyStatus, res.Legacy, res.BodyMatch, res.Target.Critical)
}
