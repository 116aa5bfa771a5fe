// Pixel-level image processing command line tool
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"fyne.io/fyne/v2/app"
	"github.com/sirupsen/logrus"

	"yaipt/internal/algorithms"
	"yaipt/internal/core"
	imageio "yaipt/internal/io"
	"yaipt/internal/metrics"
	"yaipt/internal/pipeline"
	"yaipt/internal/view"
)

const (
	AppName    = "yaipt"
	AppID      = "com.yaipt.image-processing"
	AppVersion = "1.0.0"
)

// paramFlags collects repeated -param key=value flags
type paramFlags map[string]interface{}

func (p paramFlags) String() string {
	parts := make([]string, 0, len(p))
	for k, v := range p {
		parts = append(parts, fmt.Sprintf("%s=%v", k, v))
	}
	sort.Strings(parts)
	return strings.Join(parts, ",")
}

func (p paramFlags) Set(s string) error {
	key, value, ok := strings.Cut(s, "=")
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", s)
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		p[key] = f
	} else {
		p[key] = value
	}
	return nil
}

func main() {
	params := paramFlags{}

	// Parse command line flags
	debugMode := flag.Bool("debug", false, "Enable debug mode with verbose logging")
	input := flag.String("in", "", "Input image (jpg, png, tiff, bmp)")
	output := flag.String("out", "", "Output image; the format follows the extension")
	recipePath := flag.String("recipe", "", "Processing recipe (.yaml, .yml or .toml)")
	algorithm := flag.String("algorithm", "", "Single algorithm to apply instead of a recipe")
	flag.Var(params, "param", "Algorithm parameter as key=value (repeatable)")
	showMetrics := flag.Bool("metrics", false, "Print quality metrics between input and output")
	show := flag.Bool("show", false, "Show the original and processed images in a window")
	list := flag.Bool("list", false, "List available algorithms and exit")
	flag.Parse()

	// Initialize logger
	logger := initLogger(*debugMode)

	if *list {
		listAlgorithms()
		return
	}

	logger.WithFields(logrus.Fields{
		"version":    AppVersion,
		"debug_mode": *debugMode,
	}).Info("Starting image processing")

	if err := run(logger, options{
		input:       *input,
		output:      *output,
		recipePath:  *recipePath,
		algorithm:   *algorithm,
		params:      params,
		showMetrics: *showMetrics,
		show:        *show,
	}); err != nil {
		logger.WithError(err).Error("Processing failed")
		os.Exit(1)
	}
}

type options struct {
	input       string
	output      string
	recipePath  string
	algorithm   string
	params      map[string]interface{}
	showMetrics bool
	show        bool
}

func run(logger *logrus.Logger, opts options) error {
	if opts.input == "" {
		return fmt.Errorf("-in is required")
	}
	if (opts.recipePath == "") == (opts.algorithm == "") {
		return fmt.Errorf("exactly one of -recipe and -algorithm is required")
	}

	p, err := buildPipeline(logger, opts)
	if err != nil {
		return err
	}

	loader := imageio.NewImageLoader(logger)
	raw, err := loader.Load(opts.input)
	if err != nil {
		return err
	}
	original, err := core.NewImage(raw, core.WithLogger(logger))
	if err != nil {
		return err
	}

	processed, _, err := p.Run(original)
	if err != nil {
		return err
	}

	if opts.output != "" {
		if err := loader.Save(processed.Export(), opts.output); err != nil {
			return err
		}
	}

	if opts.showMetrics {
		printMetrics(metrics.NewEvaluator(), original, processed)
	}

	if opts.show {
		fyneApp := app.NewWithID(AppID)
		view.NewPreview(fyneApp, logger).Show(AppName+" - "+opts.input, original.Export(), processed.Export())
	}

	logger.Info("Processing finished")
	return nil
}

func buildPipeline(logger *logrus.Logger, opts options) (*pipeline.Pipeline, error) {
	if opts.recipePath != "" {
		recipe, err := pipeline.LoadRecipe(opts.recipePath)
		if err != nil {
			return nil, err
		}
		return pipeline.FromRecipe(recipe, logger)
	}

	p := pipeline.NewPipeline(logger)
	if err := p.AddStep(pipeline.Step{Algorithm: opts.algorithm, Parameters: opts.params}); err != nil {
		return nil, err
	}
	return p, nil
}

func printMetrics(e *metrics.Evaluator, original, processed *core.Image) {
	values := e.CalculateAll(original, processed)
	info := e.GetMetricInfo()
	for _, name := range e.Names() {
		if v, ok := values[name]; ok {
			fmt.Printf("%-14s %10.4f  %s\n", info[name].Name, v, info[name].Description)
		}
	}
}

func listAlgorithms() {
	categories := algorithms.GetAlgorithmsByCategory()
	names := make([]string, 0, len(categories))
	for category := range categories {
		names = append(names, category)
	}
	sort.Strings(names)

	for _, category := range names {
		fmt.Println(category + ":")
		for _, name := range categories[category] {
			alg, _ := algorithms.Get(name)
			fmt.Printf("  %-20s %s\n", name, alg.GetDescription())
			for _, p := range alg.GetParameterInfo() {
				fmt.Printf("      %-12s %-6s default=%v  %s\n", p.Name, p.Type, p.Default, p.Description)
			}
		}
	}
}

// initLogger initializes the logger with appropriate level
func initLogger(debugMode bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	if debugMode {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			ForceColors:   true,
		})
		logger.Debug("Debug logging enabled")
	} else {
		logger.SetLevel(logrus.InfoLevel)
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	return logger
}
