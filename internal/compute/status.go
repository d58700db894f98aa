package compute

import (
	"context"
	"log"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/core"

	"github.com/ldraney/ocictl/internal/config"
	"github.com/ldraney/ocictl/internal/oci"
)

// Status fetches the detailed state and network info of one instance.
// The address lookup is best-effort for instances that still have VNICs;
// a terminated instance simply has none.
func Status(ctx context.Context, cfg config.Config, instanceID string) (*InstanceInfo, error) {
	client, err := oci.Connect(cfg)
	if err != nil {
		return nil, err
	}
	deps := clients{compute: client.Compute(), network: client.Network()}
	return statusWithDeps(ctx, deps, cfg.CompartmentID(), instanceID)
}

// statusWithDeps fetches status with injected dependencies.
func statusWithDeps(ctx context.Context, deps clients, compartmentID, instanceID string) (*InstanceInfo, error) {
	resp, err := deps.compute.GetInstance(ctx, core.GetInstanceRequest{
		InstanceId: common.String(instanceID),
	})
	if err != nil {
		return nil, wrapProvider("instance lookup", err)
	}

	info := instanceInfo(resp.Instance)
	if !terminated(resp.Instance.LifecycleState) {
		addrs, err := primaryVnicAddresses(ctx, deps.compute, deps.network, compartmentID, instanceID)
		if err != nil {
			log.Printf("Warning: failed to look up addresses for %s: %v", info.Name, err)
		} else {
			info.PublicIP = addrs.PublicIP
			info.PrivateIP = addrs.PrivateIP
		}
	}
	return &info, nil
}
