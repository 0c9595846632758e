package domain

import "context"

// ServicePort is the detect service contract exposed to transports and other modules
type ServicePort interface {
	// Detect decodes the audio payload and produces a classification
	Detect(ctx context.Context, in DetectionRequest) (DetectionResponse, error)
}
