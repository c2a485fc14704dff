package checks

const (
	StatusOK       = "ok"
	StatusError    = "error"
	StatusDisabled = "disabled"
)

// Result is the outcome of one health check.
type Result struct {
	Status  string         `json:"status"`
	Error   string         `json:"error,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

// Failed reports whether the check ran and failed.
func (r Result) Failed() bool {
	return r.Status == StatusError
}

func ok(details map[string]any) Result {
	return Result{Status: StatusOK, Details: details}
}

func failed(err error, details map[string]any) Result {
	return Result{Status: StatusError, Error: err.Error(), Details: details}
}

func disabled() Result {
	return Result{Status: StatusDisabled}
}
