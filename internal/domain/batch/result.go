package batch

// ItemStatus is the processing outcome of a single batch item.
type ItemStatus string

// Batch item status values.
const (
	StatusOK    ItemStatus = "ok"
	StatusError ItemStatus = "error"
)

// Result is the outcome of analyzing one resume in a batch operation.
type Result struct {
	name   string
	status ItemStatus
	err    error
}

// NewOK creates a successful batch result.
func NewOK(name string) Result { return Result{name: name, status: StatusOK} }

// NewError creates a failed batch result.
func NewError(name string, err error) Result { return Result{name: name, status: StatusError, err: err} }

// Name returns the item identifier.
func (r Result) Name() string { return r.name }

// Status returns the processing outcome.
func (r Result) Status() ItemStatus { return r.status }

// Err returns the error, if any.
func (r Result) Err() error { return r.err }
