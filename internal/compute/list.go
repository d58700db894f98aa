// Package compute provides the instance lifecycle operations: launch,
// list, status, terminate. All remote state lives with the provider; the
// operations here sequence API calls and shape their results for output.
package compute

import (
	"context"
	"log"
	"strings"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/core"

	"github.com/ldraney/ocictl/internal/config"
	"github.com/ldraney/ocictl/internal/oci"
)

// List enumerates all instances in the compartment, regardless of state.
// stateFilter, when non-empty, keeps only instances in that lifecycle
// state (case-insensitive). Address lookups are best-effort: an instance
// whose VNIC can't be read is still listed, without IPs.
func List(ctx context.Context, cfg config.Config, stateFilter string) ([]InstanceInfo, error) {
	client, err := oci.Connect(cfg)
	if err != nil {
		return nil, err
	}
	deps := clients{compute: client.Compute(), network: client.Network()}
	return listWithDeps(ctx, deps, cfg.CompartmentID(), stateFilter)
}

// listWithDeps lists instances with injected dependencies.
// This allows for testing by accepting interfaces instead of concrete types.
func listWithDeps(ctx context.Context, deps clients, compartmentID, stateFilter string) ([]InstanceInfo, error) {
	resp, err := deps.compute.ListInstances(ctx, core.ListInstancesRequest{
		CompartmentId: common.String(compartmentID),
	})
	if err != nil {
		return nil, wrapProvider("instance list", err)
	}

	infos := make([]InstanceInfo, 0, len(resp.Items))
	for _, inst := range resp.Items {
		if stateFilter != "" && !strings.EqualFold(string(inst.LifecycleState), stateFilter) {
			continue
		}

		info := instanceInfo(inst)
		if !terminated(inst.LifecycleState) {
			addrs, err := primaryVnicAddresses(ctx, deps.compute, deps.network, compartmentID, info.ID)
			if err != nil {
				log.Printf("Warning: failed to look up addresses for %s: %v", info.Name, err)
			} else {
				info.PublicIP = addrs.PublicIP
				info.PrivateIP = addrs.PrivateIP
			}
		}
		infos = append(infos, info)
	}
	return infos, nil
}
