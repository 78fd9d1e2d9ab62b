package classifier

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeArtifacts(t *testing.T, dir string, symptoms, labels any, weights any) {
	t.Helper()

	write := func(name string, v any) {
		data, err := json.Marshal(v)
		assert.NoError(t, err)
		assert.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
	}

	if symptoms != nil {
		write(SymptomsFile, symptoms)
	}
	if weights != nil {
		write(WeightsFile, weights)
	}
	if labels != nil {
		write(LabelsFile, labels)
	}
}

func TestLoad_Valid(t *testing.T) {
	dir := t.TempDir()
	writeArtifacts(t, dir,
		[]string{"fever", "cough", "headache"},
		[]string{"flu", "migraine"},
		weightsArtifact{
			Weights: [][]float64{
				{1.0, 1.0, 0.0},
				{0.0, 0.0, 2.0},
			},
			Biases: []float64{0.1, 0.0},
		},
	)

	m, err := Load(dir)
	assert.NoError(t, err)
	assert.Equal(t, []string{"fever", "cough", "headache"}, m.Symptoms())
}

func TestLoad_MissingArtifact(t *testing.T) {
	dir := t.TempDir()
	writeArtifacts(t, dir, []string{"fever"}, []string{"flu"}, nil)

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoad_InconsistentArtifacts(t *testing.T) {
	tests := []struct {
		name    string
		labels  []string
		weights weightsArtifact
	}{
		{
			name:   "label count mismatch",
			labels: []string{"flu"},
			weights: weightsArtifact{
				Weights: [][]float64{{1, 0}, {0, 1}},
				Biases:  []float64{0, 0},
			},
		},
		{
			name:   "bias count mismatch",
			labels: []string{"flu", "migraine"},
			weights: weightsArtifact{
				Weights: [][]float64{{1, 0}, {0, 1}},
				Biases:  []float64{0},
			},
		},
		{
			name:   "feature count mismatch",
			labels: []string{"flu", "migraine"},
			weights: weightsArtifact{
				Weights: [][]float64{{1, 0, 1}, {0, 1, 0}},
				Biases:  []float64{0, 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeArtifacts(t, dir, []string{"fever", "cough"}, tt.labels, tt.weights)

			_, err := Load(dir)
			assert.Error(t, err)
		})
	}
}

func TestModel_Predict(t *testing.T) {
	m := &Model{
		symptoms: []string{"fever", "cough", "headache"},
		labels:   []string{"flu", "migraine"},
		weights: [][]float64{
			{1.0, 1.0, 0.0},
			{0.0, 0.0, 2.0},
		},
		biases: []float64{0.0, 0.0},
	}

	class, err := m.Predict([]float64{1, 1, 0})
	assert.NoError(t, err)
	assert.Equal(t, 0, class)

	class, err = m.Predict([]float64{0, 0, 1})
	assert.NoError(t, err)
	assert.Equal(t, 1, class)
}

func TestModel_Predict_WrongVectorSize(t *testing.T) {
	m := &Model{
		symptoms: []string{"fever", "cough"},
		labels:   []string{"flu"},
		weights:  [][]float64{{1, 1}},
		biases:   []float64{0},
	}

	_, err := m.Predict([]float64{1})
	assert.ErrorIs(t, err, ErrVectorSize)
}

func TestModel_LabelName(t *testing.T) {
	m := &Model{
		symptoms: []string{"fever"},
		labels:   []string{"flu", "migraine"},
		weights:  [][]float64{{1}, {0}},
		biases:   []float64{0, 0},
	}

	name, err := m.LabelName(1)
	assert.NoError(t, err)
	assert.Equal(t, "migraine", name)

	_, err = m.LabelName(2)
	assert.Error(t, err)

	_, err = m.LabelName(-1)
	assert.Error(t, err)
}
