package classifier

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"mindful-ai/internal/domain"
)

// newTestClassifier arma un modelo trivial donde la clase i puntua alto
// cuando la feature i vale mas que cero.
func newTestClassifier(t *testing.T) *LinearClassifier {
	t.Helper()
	classes := make([]classWeights, domain.NumCategories)
	for i := range classes {
		weights := make([]float64, FeatureCount)
		weights[i] = 1.0
		classes[i] = classWeights{intercept: 0, weights: weights}
	}
	return &LinearClassifier{classes: classes}
}

func testFeatures(hot int) []float32 {
	features := make([]float32, FeatureCount)
	features[hot] = 9
	return features
}

func TestPredictArgmax(t *testing.T) {
	clf := newTestClassifier(t)
	for want := 0; want < domain.NumCategories; want++ {
		got, err := clf.Predict(testFeatures(want))
		if err != nil {
			t.Fatalf("Predict returned error: %v", err)
		}
		if got != want {
			t.Fatalf("Predict = %d, want %d", got, want)
		}
	}
}

func TestPredictDeterministic(t *testing.T) {
	clf := newTestClassifier(t)
	features := testFeatures(2)
	first, err := clf.Predict(features)
	if err != nil {
		t.Fatalf("first Predict: %v", err)
	}
	second, err := clf.Predict(features)
	if err != nil {
		t.Fatalf("second Predict: %v", err)
	}
	if first != second {
		t.Fatalf("Predict not deterministic: %d vs %d", first, second)
	}
}

func TestPredictTieBreaksToLowestIndex(t *testing.T) {
	clf := newTestClassifier(t)
	// Todas las clases puntuan 0 con un vector nulo.
	got, err := clf.Predict(make([]float32, FeatureCount))
	if err != nil {
		t.Fatalf("Predict returned error: %v", err)
	}
	if got != 0 {
		t.Fatalf("Predict on tie = %d, want 0", got)
	}
}

func TestPredictShapeMismatch(t *testing.T) {
	clf := newTestClassifier(t)
	_, err := clf.Predict(make([]float32, FeatureCount-1))
	if !errors.Is(err, domain.ErrInference) {
		t.Fatalf("Predict error = %v, want ErrInference", err)
	}
}

func writeModelFile(t *testing.T, classes int, weightsPerClass int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.yaml")
	var buf []byte
	buf = append(buf, "classes:\n"...)
	for i := 0; i < classes; i++ {
		buf = append(buf, "  - intercept: 0.5\n    weights: ["...)
		for j := 0; j < weightsPerClass; j++ {
			if j > 0 {
				buf = append(buf, ", "...)
			}
			buf = append(buf, "0.1"...)
		}
		buf = append(buf, "]\n"...)
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		t.Fatalf("write model file: %v", err)
	}
	return path
}

func TestLoadModel(t *testing.T) {
	path := writeModelFile(t, domain.NumCategories, FeatureCount)
	clf, err := LoadModel(path)
	if err != nil {
		t.Fatalf("LoadModel returned error: %v", err)
	}
	if _, err := clf.Predict(make([]float32, FeatureCount)); err != nil {
		t.Fatalf("Predict on loaded model: %v", err)
	}
}

func TestLoadModelWrongClassCount(t *testing.T) {
	path := writeModelFile(t, 3, FeatureCount)
	if _, err := LoadModel(path); err == nil {
		t.Fatalf("expected error for wrong class count")
	}
}

func TestLoadModelWrongWeightCount(t *testing.T) {
	path := writeModelFile(t, domain.NumCategories, FeatureCount-5)
	if _, err := LoadModel(path); err == nil {
		t.Fatalf("expected error for wrong weight count")
	}
}

func TestLoadModelMissingFile(t *testing.T) {
	if _, err := LoadModel(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
