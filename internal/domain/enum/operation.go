package enum

// OperationType identifies which scheduled register operation was attempted.
type OperationType string

const (
	OperationTypeAutoOpen  OperationType = "auto_open"
	OperationTypeAutoClose OperationType = "auto_close"
)

func (t OperationType) String() string {
	return string(t)
}

// IsValid reports whether the value is one of the known operation types.
func (t OperationType) IsValid() bool {
	return t == OperationTypeAutoOpen || t == OperationTypeAutoClose
}

// OperationStatus is the outcome of one execution attempt.
type OperationStatus string

const (
	OperationStatusSuccess OperationStatus = "success"
	OperationStatusSkipped OperationStatus = "skipped"
	OperationStatusFailed  OperationStatus = "failed"
)

func (s OperationStatus) String() string {
	return string(s)
}
