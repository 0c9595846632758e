package scoring

import "fmt"

// explain renders the canned sentence for a verdict and confidence band.
// Band edges: AI_GENERATED high >0.85, moderate >0.65; HUMAN high <0.35,
// moderate <0.5. Everything else is the low-confidence wording
func explain(cls Classification, confidence float64, language string) string {
	if cls == AIGenerated {
		switch {
		case confidence > 0.85:
			return fmt.Sprintf("High confidence AI-generated %s voice detected with synthetic speech patterns.", language)
		case confidence > 0.65:
			return fmt.Sprintf(
				"Moderate confidence AI-generated %s voice detected with some synthetic characteristics.", language)
		default:
			return fmt.Sprintf("Low confidence AI-generated %s voice detected, showing minor synthetic indicators.", language)
		}
	}
	switch {
	case confidence < 0.35:
		return fmt.Sprintf("High confidence human %s voice detected with natural speech characteristics.", language)
	case confidence < 0.5:
		return fmt.Sprintf("Moderate confidence human %s voice detected with authentic vocal patterns.", language)
	default:
		return fmt.Sprintf("Low confidence human %s voice detected, showing mostly natural characteristics.", language)
	}
}
