package llm

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// TransientError marks a gateway failure worth retrying: rate limits,
// network glitches, gateway restarts. Callers own the backoff policy.
type TransientError struct {
	Capability string
	Err        error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("llm %s: transient: %v", e.Capability, e.Err)
}

func (e *TransientError) Unwrap() error { return e.Err }

// SchemaError means the model output never became valid JSON for the
// requested schema, even after the repair retry. Retrying the same call
// will not help; the caller should fail the step.
type SchemaError struct {
	Capability string
	Raw        string
	Err        error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("llm %s: output failed schema validation: %v", e.Capability, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// IsTransient reports whether err carries a TransientError anywhere in its chain.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}

// retryableCode reports whether a gRPC status code indicates a failure the
// gateway may recover from on a later attempt.
func retryableCode(c codes.Code) bool {
	switch c {
	case codes.Unavailable, codes.ResourceExhausted, codes.DeadlineExceeded, codes.Aborted:
		return true
	}
	return false
}

// classify wraps a gateway transport error as transient or permanent.
func classify(capability string, err error) error {
	if s, ok := status.FromError(err); ok && retryableCode(s.Code()) {
		return &TransientError{Capability: capability, Err: err}
	}
	return fmt.Errorf("llm %s: %w", capability, err)
}
