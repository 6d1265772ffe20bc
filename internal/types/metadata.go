package types

// Metadata is a generic string map for additional information on entities
type Metadata map[string]string
