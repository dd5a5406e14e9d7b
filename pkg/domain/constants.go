package domain

// Field keys shared by mapstructure, JSON and YAML encodings.
const (
	// KeyID is the identity field of collection entities.
	KeyID = "id"
)
