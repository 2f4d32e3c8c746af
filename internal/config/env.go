package config

// Environment variables consumed by testctl. They are read once per
// invocation and injected into the delegated engine's environment.
const (
	EnvHeadless = "HEADLESS"
	EnvSlowMo   = "SLOW_MO"
	EnvTimeout  = "TIMEOUT"
	EnvBaseURL  = "BASE_URL"
	EnvCI       = "CI"
)

// CaptureEnv reads the consumed environment variables through the given
// lookup function (os.LookupEnv in production, a map lookup in tests).
// Unset variables are left empty and not forwarded to the child.
func CaptureEnv(lookup func(string) (string, bool)) EnvSnapshot {
	get := func(key string) string {
		v, _ := lookup(key)
		return v
	}
	return EnvSnapshot{
		Headless: get(EnvHeadless),
		SlowMo:   get(EnvSlowMo),
		Timeout:  get(EnvTimeout),
		BaseURL:  get(EnvBaseURL),
		CI:       get(EnvCI),
	}
}
