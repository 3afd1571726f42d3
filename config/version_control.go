package config

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executible
	Main_version = "v1.0.0"

	// Modular components
	Harness = "v1.0.0"
	Kernels = "v1.0.0"
	Suite   = "v1.0.0"
	Report  = "v0.2.0"
	Profile = "v1.0.0"
)
