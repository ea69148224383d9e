package domain

import "fmt"

// TraitLevel es el nivel discreto de un rasgo de personalidad.
type TraitLevel string

const (
	TraitLow     TraitLevel = "Low"
	TraitNeutral TraitLevel = "Neutral"
	TraitHigh    TraitLevel = "High"
)

// NumCategories es la cantidad de categorias que produce el clasificador.
const NumCategories = 5

// CategoryProfile es la interpretacion legible de una categoria:
// un nivel fijo por cada rasgo del modelo Big Five.
// Las claves JSON replican el reporte que consume el prompt.
type CategoryProfile struct {
	Conscientiousness  TraitLevel `json:"Conscientiousness"`
	Openness           TraitLevel `json:"Openness to Experience"`
	Agreeableness      TraitLevel `json:"Agreeableness"`
	EmotionalStability TraitLevel `json:"Emotional Stability"`
	Extraversion       TraitLevel `json:"Extraversion"`
}

// Tabla estatica de interpretacion: exactamente un perfil por categoria.
var categoryProfiles = [NumCategories]CategoryProfile{
	{TraitHigh, TraitHigh, TraitHigh, TraitLow, TraitNeutral},
	{TraitLow, TraitLow, TraitLow, TraitHigh, TraitLow},
	{TraitHigh, TraitLow, TraitNeutral, TraitLow, TraitLow},
	{TraitNeutral, TraitHigh, TraitLow, TraitHigh, TraitHigh},
	{TraitHigh, TraitNeutral, TraitHigh, TraitLow, TraitHigh},
}

// InterpretCategory mapea una categoria del clasificador a su perfil.
// Es una funcion pura y total sobre {0..4}; fuera de ese rango devuelve
// ErrUnknownCategory en lugar de un perfil vacio.
func InterpretCategory(id int) (CategoryProfile, error) {
	if id < 0 || id >= NumCategories {
		return CategoryProfile{}, fmt.Errorf("%w: %d", ErrUnknownCategory, id)
	}
	return categoryProfiles[id], nil
}
