// Command ocr runs the detection+recognition pipeline against a local image
// file with no service dependencies (no Postgres, MinIO, or NATS) — useful
// for smoke-testing a model manifest or inspecting trace output by hand.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/your-org/goocr/internal/imageio"
	"github.com/your-org/goocr/internal/ocr"
)

func main() {
	manifestPath := flag.String("manifest", "models/manifest.json", "path to model manifest")
	modelsRoot := flag.String("models-root", "models", "model root directory")
	detectorName := flag.String("detector", "craft", "manifest modelName of the detector to load")
	lang := flag.String("lang", "en", "recognizer language to load")
	mergeLines := flag.Bool("merge-lines", false, "merge recognized boxes into lines")
	traceFlag := flag.Bool("trace", false, "print named pipeline trace steps to stderr")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: ocr [flags] <image-file>")
		os.Exit(2)
	}
	imagePath := flag.Arg(0)

	data, err := os.ReadFile(imagePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read image: %v\n", err)
		os.Exit(1)
	}

	img, err := imageio.Decode(data)
	if err != nil {
		fmt.Fprintf(os.Stderr, "decode image: %v\n", err)
		os.Exit(1)
	}

	if err := ort.InitializeEnvironment(); err != nil {
		fmt.Fprintf(os.Stderr, "init onnx runtime: %v\n", err)
		os.Exit(1)
	}
	defer ort.DestroyEnvironment()

	engine, err := ocr.LoadEngine(*manifestPath, *modelsRoot, *detectorName, *lang, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load engine: %v\n", err)
		os.Exit(1)
	}
	defer engine.Detector.Close()
	defer engine.Recognizer.Close()

	var tw ocr.TraceWriter = ocr.NopTrace{}
	if *traceFlag {
		tw = stderrTrace{}
	}

	results, err := engine.Run(img, ocr.Options{MergeLines: *mergeLines}, tw)
	if err != nil {
		fmt.Fprintf(os.Stderr, "run ocr: %v\n", err)
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		fmt.Fprintf(os.Stderr, "encode results: %v\n", err)
		os.Exit(1)
	}
}

// stderrTrace logs each named trace step at info level through the default
// slog logger (which writes to stderr) rather than collecting it, since this
// command has no caller to hand structured trace data back to.
type stderrTrace struct{}

func (stderrTrace) Trace(step ocr.TraceStep, value any) {
	slog.Info("trace", "step", string(step))
}
