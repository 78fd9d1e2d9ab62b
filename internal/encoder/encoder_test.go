package encoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncode_VectorLengthAndValues(t *testing.T) {
	enc := New([]string{"fever", "cough", "headache", "nausea"})

	tests := []struct {
		name   string
		input  []string
		expect []float64
	}{
		{
			name:   "single known symptom",
			input:  []string{"fever"},
			expect: []float64{1, 0, 0, 0},
		},
		{
			name:   "multiple known symptoms",
			input:  []string{"cough", "nausea"},
			expect: []float64{0, 1, 0, 1},
		},
		{
			name:   "no symptoms",
			input:  nil,
			expect: []float64{0, 0, 0, 0},
		},
		{
			name:   "unknown symptoms are ignored",
			input:  []string{"fever", "blurry vision"},
			expect: []float64{1, 0, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vector := enc.Encode(Normalize(tt.input))
			assert.Len(t, vector, enc.Size())
			assert.Equal(t, tt.expect, vector)
			for _, v := range vector {
				assert.True(t, v == 0 || v == 1)
			}
		})
	}
}

func TestNormalize_CaseAndWhitespaceInsensitive(t *testing.T) {
	enc := New([]string{"fever", "cough"})

	a := enc.Encode(Normalize([]string{"Fever, Cough"}))
	b := enc.Encode(Normalize([]string{" fever ", "cough"}))
	c := enc.Encode(Normalize([]string{" fever ,cough "}))

	assert.Equal(t, a, b)
	assert.Equal(t, a, c)
	assert.Equal(t, []float64{1, 1}, a)
}

func TestNormalize_DropsEmptyTokens(t *testing.T) {
	assert.Empty(t, Normalize([]string{"", "   ", " , "}))
	assert.Equal(t, []string{"fever"}, Normalize([]string{" ,fever, "}))
}

func TestNormalize_SplitsCommaSeparatedString(t *testing.T) {
	got := Normalize([]string{"Fever, Dry Cough,  Fatigue"})
	assert.Equal(t, []string{"fever", "dry cough", "fatigue"}, got)
}

func TestCacheKey_OrderAndDuplicatesDoNotMatter(t *testing.T) {
	a := CacheKey([]string{"fever", "cough"})
	b := CacheKey([]string{"cough", "fever", "cough"})

	assert.Equal(t, a, b)
	assert.Equal(t, "cough,fever", a)
}

func TestEncoder_NormalizesVocabulary(t *testing.T) {
	enc := New([]string{" Fever ", "Dry Cough"})

	vector := enc.Encode(Normalize([]string{"fever", "dry cough"}))
	assert.Equal(t, []float64{1, 1}, vector)
}
