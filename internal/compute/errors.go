package compute

import (
	"fmt"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/core"
)

// ResolutionError means a required remote resource (image, VCN, subnet)
// could not be found. The fix is out-of-band, so Hint tells the operator
// what to do.
type ResolutionError struct {
	Resource string
	Hint     string
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf("no matching %s found: %s", e.Resource, e.Hint)
}

// ProviderError wraps a failure reported by the OCI API. The provider's
// own detail is preserved verbatim; these are not retried since the usual
// causes (quota, capacity, permissions) are not resolved by retrying.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	if svcErr, ok := common.IsServiceError(e.Err); ok {
		return fmt.Sprintf("%s failed: %s (HTTP %d, code %s, opc-request-id %s)",
			e.Op, svcErr.GetMessage(), svcErr.GetHTTPStatusCode(), svcErr.GetCode(), svcErr.GetOpcRequestID())
	}
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// wrapProvider wraps a non-nil SDK error in a ProviderError.
func wrapProvider(op string, err error) error {
	if err == nil {
		return nil
	}
	return &ProviderError{Op: op, Err: err}
}

// lifecycleError reports an instance that entered a terminal state while
// we were waiting for it to run. It is a ProviderError: the launch failed
// on the provider side and the operator should inspect the instance.
func lifecycleError(instanceID string, state core.InstanceLifecycleStateEnum) error {
	return &ProviderError{
		Op:  "instance launch",
		Err: fmt.Errorf("instance %s entered terminal state %s", instanceID, state),
	}
}

// PollTimeoutError means the readiness poll exhausted its attempt budget
// without the instance reaching RUNNING or a terminal state. The launch
// is inconclusive, not failed; the operator should check status again
// later.
type PollTimeoutError struct {
	InstanceID string
	Attempts   int
	LastState  core.InstanceLifecycleStateEnum
}

func (e *PollTimeoutError) Error() string {
	return fmt.Sprintf("instance %s still %s after %d checks; it may yet start, check status later",
		e.InstanceID, e.LastState, e.Attempts)
}

// PartialTerminateError means one or more instances in a terminate-all
// batch could not be terminated. The per-instance results carry the
// detail.
type PartialTerminateError struct {
	Failed int
	Total  int
}

func (e *PartialTerminateError) Error() string {
	return fmt.Sprintf("failed to terminate %d of %d instances", e.Failed, e.Total)
}
