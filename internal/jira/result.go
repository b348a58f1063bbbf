package jira

// Status reports whether an operation against the ticket API succeeded.
type Status string

const (
	StatusSuccess Status = "Success"
	StatusFailure Status = "Failure"
)

// Result is the uniform record returned by every ticket operation.
// Operations never return errors; a failed call (local precondition or
// remote) comes back as a Result with StatusFailure and a message.
type Result struct {
	Status       Status
	ErrorMessage string
	URL          string
	Content      map[string]interface{}
	Watchers     []string
}

// Failed reports whether the result carries a failure status.
func (r Result) Failed() bool {
	return r.Status == StatusFailure
}
