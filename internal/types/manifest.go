package types

// Manifest is the on-disk declaration source. Several manifests found in a
// workspace are composed into one before processing.
type Manifest struct {
	APIVersion   string        `yaml:"api_version"`
	Package      string        `yaml:"package"`
	Types        []string      `yaml:"types,omitempty"`
	Declarations []Declaration `yaml:"declarations"`
}

// RoundSummary records what one processing round did.
type RoundSummary struct {
	Number    int      `msgpack:"number"`
	Submitted []string `msgpack:"submitted"`
	Generated []string `msgpack:"generated"`
	Dirty     []string `msgpack:"dirty"`
	Deferred  []string `msgpack:"deferred"`
}

// RunState is persisted after every process run so that inspect can report
// on it later.
type RunState struct {
	RunID       string         `msgpack:"run_id"`
	CreatedAt   string         `msgpack:"created_at"`
	Sources     []string       `msgpack:"sources"`
	Package     string         `msgpack:"package"`
	Rounds      []RoundSummary `msgpack:"rounds"`
	Files       []string       `msgpack:"files"`
	Unresolved  []string       `msgpack:"unresolved"`
	Diagnostics []Diagnostic   `msgpack:"diagnostics"`
}
