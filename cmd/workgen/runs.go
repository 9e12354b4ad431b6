package main

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"pkg.jsn.cam/workgen/internal/catalog"
)

func printRuns(dbPath string) {
	if dbPath == "" {
		log.Fatal("catalog path is required")
	}

	cat, err := catalog.Open(dbPath)
	if err != nil {
		log.Fatalf("Failed to open catalog: %v", err)
	}
	defer cat.Close()

	runs, err := cat.List()
	if err != nil {
		log.Fatalf("Failed to list runs: %v", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded")
		return
	}

	fmt.Printf("%-36s %-12s %-6s %-10s %-20s %s\n",
		"RUN ID", "LINES", "WIDTH", "SIZE", "CREATED", "WORKLOAD")
	fmt.Println(strings.Repeat("─", 110))
	for _, run := range runs {
		fmt.Printf("%-36s %-12s %-6d %-10s %-20s %s\n",
			run.ID,
			humanize.Comma(run.Lines),
			run.LineLength,
			humanize.Bytes(uint64(run.BytesOnDisk)),
			run.CreatedAt.Format("2006-01-02 15:04:05"),
			filepath.Base(run.WorkloadPath))
	}

	stats := cat.Stats()
	fmt.Printf("\n%d runs, %s of workload data\n",
		stats["runs"], humanize.Bytes(uint64(stats["workload_bytes"].(int64))))
}
