// Image comparison metrics and their evaluator
package metrics

import (
	"fmt"
	"sort"

	"yaipt/internal/core"
)

// Metric defines the interface for quality metrics
type Metric interface {
	// Calculate computes the metric value
	Calculate(original, processed *core.Image) (float64, error)

	GetName() string
	GetDescription() string

	// GetRange returns the value range (min, max)
	GetRange() (float64, float64)

	// IsHigherBetter returns true if higher values indicate better quality
	IsHigherBetter() bool
}

// Evaluator manages and calculates multiple metrics
type Evaluator struct {
	metrics map[string]Metric
}

// NewEvaluator creates a new metrics evaluator
func NewEvaluator() *Evaluator {
	e := &Evaluator{
		metrics: make(map[string]Metric),
	}

	e.RegisterDefaultMetrics()

	return e
}

// RegisterDefaultMetrics registers all default metrics
func (e *Evaluator) RegisterDefaultMetrics() {
	e.Register("mse", NewMSE())
	e.Register("psnr", NewPSNR())
	e.Register("mae", NewMAE())
	e.Register("changed_ratio", NewChangedRatio())
}

// Register registers a metric
func (e *Evaluator) Register(name string, metric Metric) {
	e.metrics[name] = metric
}

// Names returns the registered metric names in sorted order
func (e *Evaluator) Names() []string {
	names := make([]string, 0, len(e.metrics))
	for name := range e.metrics {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Calculate calculates a specific metric
func (e *Evaluator) Calculate(name string, original, processed *core.Image) (float64, error) {
	metric, exists := e.metrics[name]
	if !exists {
		return 0, fmt.Errorf("metric not found: %s", name)
	}

	return metric.Calculate(original, processed)
}

// CalculateAll calculates all registered metrics, skipping those that
// cannot be computed for the pair
func (e *Evaluator) CalculateAll(original, processed *core.Image) map[string]float64 {
	results := make(map[string]float64)

	for name, metric := range e.metrics {
		if value, err := metric.Calculate(original, processed); err == nil {
			results[name] = value
		}
	}

	return results
}

// EvaluateStep calculates the metrics relevant to a processing step
func (e *Evaluator) EvaluateStep(before, after *core.Image, stepName string) map[string]float64 {
	metrics := make(map[string]float64)

	if psnr, err := e.Calculate("psnr", before, after); err == nil {
		metrics["psnr"] = psnr
	}
	if mae, err := e.Calculate("mae", before, after); err == nil {
		metrics["mae"] = mae
	}

	switch stepName {
	case "blur", "convolve":
		// Smoothing touches nearly every pixel; report how many actually moved
		if ratio, err := e.Calculate("changed_ratio", before, after); err == nil {
			metrics["changed_ratio"] = ratio
		}
	case "brightness", "contrast", "brightness_contrast":
		if mse, err := e.Calculate("mse", before, after); err == nil {
			metrics["mse"] = mse
		}
	}

	return metrics
}

// MetricInfo provides metadata about a metric
type MetricInfo struct {
	Name         string
	Description  string
	Range        [2]float64 // [min, max]
	HigherBetter bool
}

// GetMetricInfo returns information about all metrics
func (e *Evaluator) GetMetricInfo() map[string]MetricInfo {
	info := make(map[string]MetricInfo)

	for name, metric := range e.metrics {
		min, max := metric.GetRange()
		info[name] = MetricInfo{
			Name:         metric.GetName(),
			Description:  metric.GetDescription(),
			Range:        [2]float64{min, max},
			HigherBetter: metric.IsHigherBetter(),
		}
	}

	return info
}
