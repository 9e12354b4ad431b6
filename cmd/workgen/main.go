package main

import (
	"flag"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/schollz/progressbar/v3"
	"pkg.jsn.cam/workgen/internal/catalog"
	"pkg.jsn.cam/workgen/pkg/workgen"
	"pkg.jsn.cam/workgen/pkg/workgen/generator"
	"pkg.jsn.cam/workgen/pkg/workgen/meta"
)

/*generates benchmark workload files of quoted random lowercase strings,
plus a .meta sidecar describing them*/

var (
	lines          = flag.Int64("lines", 1e7, "Number of workload lines to generate")
	lineLength     = flag.Int("line-length", 100, "Exact line width including the two framing quotes")
	output         = flag.String("output", "workload.txt", "Workload output file path")
	metaOut        = flag.String("meta", "", "Meta output file path (default: output path with .meta extension)")
	generatorName  = flag.String("generator", "quoted", "Line generator (see -list-generators)")
	schemaName     = flag.String("schema", "extended", "Meta schema: basic, extended, or checksum")
	seed           = flag.Int64("seed", -1, "Random seed; negative means non-deterministic")
	catalogPath    = flag.String("catalog", "", "Catalog db path; the run is recorded when set")
	verifyMode     = flag.Bool("verify", false, "Verify an existing workload against its meta instead of generating")
	listRuns       = flag.Bool("list-runs", false, "List cataloged runs and exit")
	listGenerators = flag.Bool("list-generators", false, "List available generators and exit")
	quiet          = flag.Bool("quiet", false, "Suppress the progress bar")
)

func main() {
	flag.Parse()

	switch {
	case *listGenerators:
		printGenerators()
	case *listRuns:
		printRuns(*catalogPath)
	case *verifyMode:
		runVerify()
	default:
		runGenerate()
	}
}

func runGenerate() {
	schema, err := meta.SchemaByName(*schemaName)
	if err != nil {
		log.Fatalf("Invalid schema: %v", err)
	}

	cfg := workgen.Config{
		Lines:        *lines,
		LineLength:   *lineLength,
		WorkloadPath: *output,
		MetaPath:     *metaOut,
		Schema:       schema,
		Generator:    *generatorName,
	}
	if *seed >= 0 {
		s := uint64(*seed)
		cfg.Seed = &s
	}

	var bar *progressbar.ProgressBar
	if !*quiet {
		bar = progressbar.Default(*lines, "generating")
		cfg.OnProgress = func(done int64) { bar.Set64(done) }
	}

	fmt.Printf("Generating %s\n", *output)
	res, err := workgen.Generate(cfg)
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}
	if bar != nil {
		bar.Finish()
	}

	fmt.Printf("Done in %s\n", res.Elapsed.Round(time.Millisecond))
	fmt.Printf("  Lines:       %s\n", humanize.Comma(res.Lines))
	fmt.Printf("  Line length: %d\n", res.LineLength)
	fmt.Printf("  Characters:  %s\n", humanize.Comma(res.FileSize))
	fmt.Printf("  On disk:     %s\n", humanize.Bytes(uint64(res.BytesOnDisk)))
	fmt.Printf("  Checksum:    %016x\n", res.Checksum)
	if secs := res.Elapsed.Seconds(); secs > 0 {
		fmt.Printf("  Rate:        %s/s\n", humanize.Bytes(uint64(float64(res.BytesOnDisk)/secs)))
	}
	fmt.Println("Done generating meta file")

	if *catalogPath != "" {
		recordRun(*catalogPath, res)
	}
}

func runVerify() {
	schema, err := meta.SchemaByName(*schemaName)
	if err != nil {
		log.Fatalf("Invalid schema: %v", err)
	}

	metaPath := *metaOut
	if metaPath == "" {
		metaPath = defaultMetaPath(*output)
	}

	fmt.Printf("Verifying %s against %s\n", *output, metaPath)
	report, err := workgen.Verify(*output, metaPath, schema)
	if err != nil {
		log.Fatalf("Verification failed: %v", err)
	}

	fmt.Printf("OK in %s\n", report.Elapsed.Round(time.Millisecond))
	fmt.Printf("  Lines:       %s\n", humanize.Comma(report.Lines))
	fmt.Printf("  Line length: %d\n", report.LineLength)
	fmt.Printf("  Checksum:    %016x\n", report.Checksum)
}

func recordRun(dbPath string, res *workgen.Result) {
	cat, err := catalog.Open(dbPath)
	if err != nil {
		log.Fatalf("Failed to open catalog: %v", err)
	}
	defer cat.Close()

	run, err := cat.Record(catalog.Run{
		WorkloadPath: res.WorkloadPath,
		MetaPath:     res.MetaPath,
		Generator:    *generatorName,
		Lines:        res.Lines,
		LineLength:   res.LineLength,
		FileSize:     res.FileSize,
		BytesOnDisk:  res.BytesOnDisk,
		Checksum:     fmt.Sprintf("%016x", res.Checksum),
	})
	if err != nil {
		log.Fatalf("Failed to record run: %v", err)
	}
	fmt.Printf("Recorded run %s in %s\n", run.ID, dbPath)
}

func defaultMetaPath(workloadPath string) string {
	ext := filepath.Ext(workloadPath)
	return strings.TrimSuffix(workloadPath, ext) + ".meta"
}

func printGenerators() {
	for _, name := range generator.List() {
		gen, err := generator.Get(name, 2)
		if err != nil {
			continue
		}
		fmt.Printf("%-10s %s (default count: %s)\n",
			name, gen.Description(), humanize.Comma(gen.DefaultCount()))
	}
}
