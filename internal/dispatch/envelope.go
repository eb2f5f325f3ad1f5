package dispatch

// Envelope is the outcome of one tool call: a JSON-serializable value on
// success or a single message on failure.
type Envelope struct {
	ok      bool
	value   any
	message string
}

// Ok wraps a successful result.
func Ok(v any) Envelope { return Envelope{ok: true, value: v} }

// Err wraps a failure message.
func Err(msg string) Envelope { return Envelope{message: msg} }

func (e Envelope) IsOk() bool      { return e.ok }
func (e Envelope) Value() any      { return e.value }
func (e Envelope) Message() string { return e.message }

// SuccessMarker is the result of operations that return nothing.
type SuccessMarker struct {
	Success bool `json:"success"`
}

var success = SuccessMarker{Success: true}
