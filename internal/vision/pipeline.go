package vision

import "colorviz/internal/model"

// DefaultSampleCount is how many acquisitions are averaged per reading.
const DefaultSampleCount = 5

// Pipeline turns sensor acquisitions into a named, filtered color.
type Pipeline struct {
	Palette     Palette
	SampleCount int
	Pace        Pacer
	// Calibration, when set, corrects the normalized reading before matching.
	Calibration *Calibration
}

func NewPipeline(sampleCount int, pace Pacer) Pipeline {
	return Pipeline{Palette: DefaultPalette(), SampleCount: sampleCount, Pace: pace}
}

// Analyze aggregates a reading, matches it and runs the matched canonical
// color through the variant's simulation. The name comes from the match;
// only the color channels are filtered.
func (p Pipeline) Analyze(acquire Acquirer, variant model.Variant) (model.AnalysisResult, error) {
	sensed, err := Aggregate(p.SampleCount, acquire, p.Pace)
	if err != nil {
		return model.AnalysisResult{}, err
	}
	if p.Calibration != nil {
		sensed = p.Calibration.Apply(sensed)
	}
	res, _ := p.Identify(sensed, variant)
	return res, nil
}

// Identify matches an already normalized color and filters the match.
func (p Pipeline) Identify(sensed model.RGB, variant model.Variant) (model.AnalysisResult, Match) {
	m := p.Palette.Match(sensed)
	return model.AnalysisResult{
		Name:    model.NewColorName(m.Name),
		Color:   Simulate(m.Ideal, variant),
		Sensed:  sensed,
		Variant: variant,
	}, m
}

// Analyze runs the pipeline with the default palette and no pacing.
func Analyze(acquire Acquirer, sampleCount int, variant model.Variant) (model.AnalysisResult, error) {
	return NewPipeline(sampleCount, nil).Analyze(acquire, variant)
}
