package classifier

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"mindful-ai/internal/domain"
)

// modelFile es el formato YAML con los coeficientes exportados del modelo.
type modelFile struct {
	Classes []struct {
		Intercept float64   `yaml:"intercept"`
		Weights   []float64 `yaml:"weights"`
	} `yaml:"classes"`
}

// LoadModel lee y valida los coeficientes del clasificador desde un archivo
// YAML. El indice de cada clase en el archivo es su CategoryId.
func LoadModel(path string) (*LinearClassifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model file %s: %w", path, err)
	}

	var mf modelFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("parse model file %s: %w", path, err)
	}

	if err := validateModel(&mf); err != nil {
		return nil, fmt.Errorf("validate model file %s: %w", path, err)
	}

	clf := &LinearClassifier{classes: make([]classWeights, 0, len(mf.Classes))}
	for _, c := range mf.Classes {
		clf.classes = append(clf.classes, classWeights{intercept: c.Intercept, weights: c.Weights})
	}
	return clf, nil
}

func validateModel(mf *modelFile) error {
	if len(mf.Classes) != domain.NumCategories {
		return fmt.Errorf("expected %d classes, got %d", domain.NumCategories, len(mf.Classes))
	}
	for i, c := range mf.Classes {
		if len(c.Weights) != FeatureCount {
			return fmt.Errorf("class %d has %d weights, expected %d", i, len(c.Weights), FeatureCount)
		}
	}
	return nil
}
