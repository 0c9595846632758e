package module

import "github.com/shivxmhere/ai-voice-detector/internal/services/api/detect/domain"

// Ports is the detect module's exported port set for cross-module wiring
type Ports struct {
	Detector domain.ServicePort
}
