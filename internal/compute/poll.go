package compute

import (
	"context"
	"time"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/core"
)

// Poll defaults: check every 5 seconds, give up after 60 checks (5 minutes).
const (
	DefaultPollInterval = 5 * time.Second
	DefaultMaxAttempts  = 60
)

// PollOptions bounds the readiness poll. Sleep is injectable so tests can
// simulate state transitions without real delay.
type PollOptions struct {
	Interval    time.Duration
	MaxAttempts int
	Sleep       func(time.Duration)
}

func (o PollOptions) withDefaults() PollOptions {
	if o.Interval <= 0 {
		o.Interval = DefaultPollInterval
	}
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = DefaultMaxAttempts
	}
	if o.Sleep == nil {
		o.Sleep = time.Sleep
	}
	return o
}

// waitForRunning polls the instance lifecycle state until it reaches
// RUNNING.
//
// It keeps polling while the state is PROVISIONING or STARTING. Any
// terminal state (terminating, terminated, stopping, stopped, or an
// unexpected state) fails immediately with a ProviderError. Exhausting
// the attempt budget fails with a PollTimeoutError, which is a distinct
// condition: the instance may still come up, so the operator should check
// status again rather than assume failure.
func waitForRunning(ctx context.Context, api computeAPI, instanceID string, opts PollOptions) (core.Instance, error) {
	opts = opts.withDefaults()

	var state core.InstanceLifecycleStateEnum
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return core.Instance{}, err
		}

		resp, err := api.GetInstance(ctx, core.GetInstanceRequest{
			InstanceId: common.String(instanceID),
		})
		if err != nil {
			return core.Instance{}, wrapProvider("instance state check", err)
		}

		state = resp.Instance.LifecycleState
		switch state {
		case core.InstanceLifecycleStateRunning:
			return resp.Instance, nil
		case core.InstanceLifecycleStateProvisioning, core.InstanceLifecycleStateStarting:
			if attempt >= opts.MaxAttempts {
				return core.Instance{}, &PollTimeoutError{
					InstanceID: instanceID,
					Attempts:   attempt,
					LastState:  state,
				}
			}
			opts.Sleep(opts.Interval)
		default:
			return core.Instance{}, lifecycleError(instanceID, state)
		}
	}
}
