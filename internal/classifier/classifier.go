package classifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Artifact file names expected inside the model directory. All three are
// produced by the external training pipeline; the service never writes them.
const (
	SymptomsFile = "symptoms.json"
	WeightsFile  = "model.json"
	LabelsFile   = "labels.json"
)

var (
	// ErrVectorSize is returned when the input vector length does not match
	// the model dimension.
	ErrVectorSize = errors.New("input vector size does not match model dimension")
)

// Predicter is the single-vector inference entry point consumed by the
// prediction service. Implementations must be safe for concurrent use.
type Predicter interface {
	Predict(vector []float64) (int, error)
}

// LabelDecoder maps classifier class indices back to disease names.
type LabelDecoder interface {
	LabelName(classIndex int) (string, error)
}

// weightsArtifact is the on-disk layout of the trained linear model.
type weightsArtifact struct {
	Weights [][]float64 `json:"weights"` // one row per class
	Biases  []float64   `json:"biases"`  // one bias per class
}

// Model is a pre-trained linear classifier loaded from disk. It scores an
// encoded symptom vector per class and predicts the highest-scoring class.
type Model struct {
	symptoms []string
	labels   []string
	weights  [][]float64
	biases   []float64
}

// Load reads the symptom vocabulary, model weights, and label list from the
// given directory. A missing or malformed artifact is a startup error; the
// process must not serve traffic without a usable model.
func Load(dir string) (*Model, error) {
	var symptoms []string
	if err := readJSON(filepath.Join(dir, SymptomsFile), &symptoms); err != nil {
		return nil, fmt.Errorf("load symptom vocabulary: %w", err)
	}
	if len(symptoms) == 0 {
		return nil, fmt.Errorf("load symptom vocabulary: empty vocabulary in %s", SymptomsFile)
	}

	var wa weightsArtifact
	if err := readJSON(filepath.Join(dir, WeightsFile), &wa); err != nil {
		return nil, fmt.Errorf("load model weights: %w", err)
	}

	var labels []string
	if err := readJSON(filepath.Join(dir, LabelsFile), &labels); err != nil {
		return nil, fmt.Errorf("load label map: %w", err)
	}

	if len(wa.Weights) == 0 || len(wa.Weights) != len(labels) {
		return nil, fmt.Errorf("model has %d classes but label map has %d entries", len(wa.Weights), len(labels))
	}
	if len(wa.Biases) != len(wa.Weights) {
		return nil, fmt.Errorf("model has %d classes but %d biases", len(wa.Weights), len(wa.Biases))
	}
	for i, row := range wa.Weights {
		if len(row) != len(symptoms) {
			return nil, fmt.Errorf("class %d weight row has %d features, vocabulary has %d", i, len(row), len(symptoms))
		}
	}

	return &Model{
		symptoms: symptoms,
		labels:   labels,
		weights:  wa.Weights,
		biases:   wa.Biases,
	}, nil
}

// Symptoms returns the ordered symptom vocabulary defining the feature
// vector positions.
func (m *Model) Symptoms() []string {
	return m.symptoms
}

// Predict scores the vector against every class and returns the index of
// the highest-scoring one.
func (m *Model) Predict(vector []float64) (int, error) {
	if len(vector) != len(m.symptoms) {
		return 0, fmt.Errorf("%w: got %d, want %d", ErrVectorSize, len(vector), len(m.symptoms))
	}

	best := 0
	bestScore := 0.0
	for class, row := range m.weights {
		score := m.biases[class]
		for i, w := range row {
			score += w * vector[i]
		}
		if class == 0 || score > bestScore {
			best = class
			bestScore = score
		}
	}
	return best, nil
}

// LabelName returns the disease name for a class index. The label map is
// total over the model's output domain, so an out-of-range index means the
// artifacts are inconsistent.
func (m *Model) LabelName(classIndex int) (string, error) {
	if classIndex < 0 || classIndex >= len(m.labels) {
		return "", fmt.Errorf("class index %d outside label map of size %d", classIndex, len(m.labels))
	}
	return m.labels[classIndex], nil
}

func readJSON(path string, dst any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}
