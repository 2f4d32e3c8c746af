package config

// DefaultConfig returns the compiled-in defaults. User and project config
// files are layered on top of these by LoadConfig.
func DefaultConfig() Config {
	return Config{
		Engine: EngineSettings{
			Command: []string{"python3", "-m", "pytest"},
			Workers: 4,
		},
		Docker: DockerSettings{
			Image:   "mcr.microsoft.com/playwright/python:v1.47.0-jammy",
			Workdir: "/work",
		},
		Coverage: CoverageSettings{
			Source:    "src",
			Threshold: 80,
		},
		Artifacts: ArtifactSettings{
			Root: "test-results",
		},
	}
}
