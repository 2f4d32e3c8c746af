package config

// Config is the top-level configuration structure for testctl.
type Config struct {
	Engine    EngineSettings   `yaml:"engine"`
	Docker    DockerSettings   `yaml:"docker"`
	Coverage  CoverageSettings `yaml:"coverage"`
	Artifacts ArtifactSettings `yaml:"artifacts"`

	// Env is the process-environment snapshot taken at resolution time.
	// It is never read from a config file and never written back.
	Env EnvSnapshot `yaml:"-"`
}

// EngineSettings describes how to invoke the delegated test engine.
type EngineSettings struct {
	// Command is the engine command and its leading arguments,
	// e.g. ["python3", "-m", "pytest"].
	Command []string `yaml:"command,omitempty"`
	// Workers is the worker count used when parallelism is requested.
	Workers int `yaml:"workers,omitempty"`
}

// DockerSettings describes the containerized venue.
type DockerSettings struct {
	// Image is the container image used for the docker venue.
	Image string `yaml:"image,omitempty"`
	// Workdir is the working directory inside the container.
	Workdir string `yaml:"workdir,omitempty"`
}

// CoverageSettings describes coverage instrumentation of the engine run.
type CoverageSettings struct {
	// Source is the instrumentation target passed to --cov.
	Source string `yaml:"source,omitempty"`
	// Threshold is the minimum coverage percentage enforced via
	// --cov-fail-under. It is fixed per configuration and never altered
	// by request flags.
	Threshold int `yaml:"threshold,omitempty"`
}

// ArtifactSettings describes where run artifacts land.
type ArtifactSettings struct {
	// Root is the default artifact root directory.
	Root string `yaml:"root,omitempty"`
}

// EnvSnapshot carries the environment variables testctl consumes. They are
// read once when a run is resolved and injected verbatim into the child
// process environment; testctl never mutates them.
type EnvSnapshot struct {
	Headless string
	SlowMo   string
	Timeout  string
	BaseURL  string
	CI       string
}
