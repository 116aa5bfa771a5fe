// Sequential processing pipeline over the algorithm registry
package pipeline

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"yaipt/internal/algorithms"
	"yaipt/internal/core"
	"yaipt/internal/metrics"
)

// StepResult records what a single step did
type StepResult struct {
	Index     int
	Algorithm string
	Duration  time.Duration
	Metrics   map[string]float64
}

// Pipeline runs validated steps one after another
type Pipeline struct {
	steps       []Step
	metricsEval *metrics.Evaluator
	logger      logrus.FieldLogger
}

func NewPipeline(logger logrus.FieldLogger) *Pipeline {
	return &Pipeline{
		steps:       make([]Step, 0),
		metricsEval: metrics.NewEvaluator(),
		logger:      logger,
	}
}

// FromRecipe builds a pipeline holding every step of r
func FromRecipe(r *Recipe, logger logrus.FieldLogger) (*Pipeline, error) {
	p := NewPipeline(logger)
	for i, step := range r.Steps {
		if err := p.AddStep(step); err != nil {
			return nil, fmt.Errorf("recipe %q step %d: %w", r.Name, i, err)
		}
	}
	return p, nil
}

// AddStep validates step against the registry and appends it
func (p *Pipeline) AddStep(step Step) error {
	if !algorithms.IsValidAlgorithm(step.Algorithm) {
		return fmt.Errorf("unknown algorithm: %s", step.Algorithm)
	}

	if err := algorithms.ValidateParameters(step.Algorithm, step.Parameters); err != nil {
		return fmt.Errorf("invalid parameters for %s: %w", step.Algorithm, err)
	}

	p.steps = append(p.steps, step)
	p.logger.WithFields(logrus.Fields{
		"algorithm": step.Algorithm,
		"disabled":  step.Disabled,
	}).Debug("PIPELINE: Step added")

	return nil
}

// Steps returns a copy of the configured steps
func (p *Pipeline) Steps() []Step {
	out := make([]Step, len(p.steps))
	copy(out, p.steps)
	return out
}

// Run applies every enabled step in order. The input image is never
// modified; each step works on the previous step's output.
func (p *Pipeline) Run(input *core.Image) (*core.Image, []StepResult, error) {
	start := time.Now()
	current := input
	results := make([]StepResult, 0, len(p.steps))

	for i, step := range p.steps {
		if step.Disabled {
			p.logger.WithField("algorithm", step.Algorithm).Debug("PIPELINE: Skipping disabled step")
			continue
		}

		stepStart := time.Now()
		next, err := algorithms.Apply(step.Algorithm, current, step.Parameters)
		if err != nil {
			p.logger.WithFields(logrus.Fields{
				"step":      i,
				"algorithm": step.Algorithm,
				"error":     err,
			}).Error("PIPELINE: Step failed")
			return nil, results, fmt.Errorf("step %d (%s): %w", i, step.Algorithm, err)
		}

		result := StepResult{
			Index:     i,
			Algorithm: step.Algorithm,
			Duration:  time.Since(stepStart),
			Metrics:   p.metricsEval.EvaluateStep(current, next, step.Algorithm),
		}
		results = append(results, result)

		p.logger.WithFields(logrus.Fields{
			"step":      i,
			"algorithm": step.Algorithm,
			"duration":  result.Duration,
			"metrics":   result.Metrics,
		}).Info("PIPELINE: Step completed")

		current = next
	}

	if current == input {
		current = input.Clone()
	}

	p.logger.WithFields(logrus.Fields{
		"steps":    len(results),
		"duration": time.Since(start),
	}).Info("PIPELINE: Processing completed")

	return current, results, nil
}
