package result

// Status represents the outcome of an operation.
type Status string

const (
	StatusOK   Status = "OK"
	StatusFail Status = "FAIL"
)

// Result holds the outcome of a single read, write or append.
type Result struct {
	Name    string   // e.g., "write: file.txt", "read: data.json"
	Status  Status   // OK or FAIL
	Details []string // human-readable details
	Err     error    // underlying error for failures
}

// New returns a pending Result for an operation on path.
func New(op, path string) Result {
	return Result{Name: op + ": " + path}
}

// OK returns true if the operation succeeded.
func (r Result) OK() bool {
	return r.Status == StatusOK
}
