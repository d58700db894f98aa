package compute

import (
	"context"
	"log"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/core"

	"github.com/ldraney/ocictl/internal/config"
	"github.com/ldraney/ocictl/internal/oci"
)

// Terminate submits a terminate request for one instance. It does not
// wait for the TERMINATED state; termination is one-way and the provider
// finishes it on its own time.
func Terminate(ctx context.Context, cfg config.Config, instanceID string) error {
	client, err := oci.Connect(cfg)
	if err != nil {
		return err
	}
	return terminateWithDeps(ctx, client.Compute(), instanceID)
}

// terminateWithDeps terminates with an injected dependency.
func terminateWithDeps(ctx context.Context, api computeAPI, instanceID string) error {
	_, err := api.TerminateInstance(ctx, core.TerminateInstanceRequest{
		InstanceId: common.String(instanceID),
	})
	return wrapProvider("instance terminate", err)
}

// TerminateResult reports the outcome of one terminate call in a batch.
type TerminateResult struct {
	ID   string
	Name string
	Err  error
}

// TerminateAll terminates every non-terminated instance in the
// compartment, sequentially. A failed terminate is recorded and the batch
// keeps going; when any call failed, the results come back together with
// a PartialTerminateError.
func TerminateAll(ctx context.Context, cfg config.Config) ([]TerminateResult, error) {
	client, err := oci.Connect(cfg)
	if err != nil {
		return nil, err
	}
	return terminateAllWithDeps(ctx, client.Compute(), cfg.CompartmentID())
}

// terminateAllWithDeps terminates all instances with an injected dependency.
func terminateAllWithDeps(ctx context.Context, api computeAPI, compartmentID string) ([]TerminateResult, error) {
	resp, err := api.ListInstances(ctx, core.ListInstancesRequest{
		CompartmentId: common.String(compartmentID),
	})
	if err != nil {
		return nil, wrapProvider("instance list", err)
	}

	var results []TerminateResult
	failed := 0
	for _, inst := range resp.Items {
		if terminated(inst.LifecycleState) {
			continue
		}

		result := TerminateResult{ID: deref(inst.Id), Name: deref(inst.DisplayName)}
		log.Printf("Terminating %s (%s)...", result.Name, result.ID)
		if err := terminateWithDeps(ctx, api, result.ID); err != nil {
			result.Err = err
			failed++
		}
		results = append(results, result)
	}

	if failed > 0 {
		return results, &PartialTerminateError{Failed: failed, Total: len(results)}
	}
	return results, nil
}
