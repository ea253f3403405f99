package models

// ServerConfig is returned by GET /api/config.
type ServerConfig struct {
	Version       string          `json:"version"`
	FeatureStates map[string]bool `json:"featureStates"`
}
