package compute

import (
	"context"
	"log"
	"strings"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/core"
	"github.com/oracle/oci-go-sdk/v65/identity"

	"github.com/ldraney/ocictl/internal/config"
	"github.com/ldraney/ocictl/internal/oci"
)

// resolveSubnet picks a subnet from the compartment's existing network.
//
// This tool never creates network infrastructure. It takes the first VCN
// in the compartment and, among its subnets, prefers one whose display
// name contains "public" (the usual convention for internet-reachable
// subnets), falling back to the first subnet otherwise.
func resolveSubnet(ctx context.Context, api networkAPI, compartmentID string) (core.Subnet, error) {
	vcnResp, err := api.ListVcns(ctx, core.ListVcnsRequest{
		CompartmentId: common.String(compartmentID),
	})
	if err != nil {
		return core.Subnet{}, wrapProvider("VCN lookup", err)
	}
	if len(vcnResp.Items) == 0 {
		return core.Subnet{}, &ResolutionError{
			Resource: "VCN",
			Hint:     "create a VCN with a public subnet in the OCI console first; this tool does not create networks",
		}
	}
	vcn := vcnResp.Items[0]

	subnetResp, err := api.ListSubnets(ctx, core.ListSubnetsRequest{
		CompartmentId: common.String(compartmentID),
		VcnId:         vcn.Id,
	})
	if err != nil {
		return core.Subnet{}, wrapProvider("subnet lookup", err)
	}
	if len(subnetResp.Items) == 0 {
		return core.Subnet{}, &ResolutionError{
			Resource: "subnet",
			Hint:     "VCN " + deref(vcn.DisplayName) + " has no subnets; create one in the OCI console first",
		}
	}

	for _, subnet := range subnetResp.Items {
		if strings.Contains(strings.ToLower(deref(subnet.DisplayName)), "public") {
			return subnet, nil
		}
	}
	return subnetResp.Items[0], nil
}

// availabilityDomain returns the domain to launch in: the subnet's own
// domain when it is AD-specific, otherwise (regional subnet) the
// compartment's first availability domain.
func availabilityDomain(ctx context.Context, api identityAPI, compartmentID string, subnet core.Subnet) (string, error) {
	if ad := deref(subnet.AvailabilityDomain); ad != "" {
		return ad, nil
	}

	resp, err := api.ListAvailabilityDomains(ctx, identity.ListAvailabilityDomainsRequest{
		CompartmentId: common.String(compartmentID),
	})
	if err != nil {
		return "", wrapProvider("availability domain lookup", err)
	}
	if len(resp.Items) == 0 {
		return "", &ResolutionError{
			Resource: "availability domain",
			Hint:     "the compartment reports no availability domains; check the configured region",
		}
	}
	return deref(resp.Items[0].Name), nil
}

// ListNetworks enumerates every VCN in the compartment with its subnets.
func ListNetworks(ctx context.Context, cfg config.Config) ([]NetworkInfo, error) {
	client, err := oci.Connect(cfg)
	if err != nil {
		return nil, err
	}
	return listNetworksWithDeps(ctx, client.Network(), cfg.CompartmentID())
}

// listNetworksWithDeps lists networks with injected dependencies.
func listNetworksWithDeps(ctx context.Context, api networkAPI, compartmentID string) ([]NetworkInfo, error) {
	vcnResp, err := api.ListVcns(ctx, core.ListVcnsRequest{
		CompartmentId: common.String(compartmentID),
	})
	if err != nil {
		return nil, wrapProvider("VCN lookup", err)
	}

	networks := make([]NetworkInfo, 0, len(vcnResp.Items))
	for _, vcn := range vcnResp.Items {
		info := NetworkInfo{
			ID:        deref(vcn.Id),
			Name:      deref(vcn.DisplayName),
			CIDRBlock: deref(vcn.CidrBlock),
			State:     string(vcn.LifecycleState),
		}

		subnetResp, err := api.ListSubnets(ctx, core.ListSubnetsRequest{
			CompartmentId: common.String(compartmentID),
			VcnId:         vcn.Id,
		})
		if err != nil {
			// Report the VCN even if its subnets can't be listed.
			log.Printf("Warning: failed to list subnets of VCN %s: %v", info.Name, err)
			networks = append(networks, info)
			continue
		}

		for _, subnet := range subnetResp.Items {
			info.Subnets = append(info.Subnets, SubnetInfo{
				ID:                 deref(subnet.Id),
				Name:               deref(subnet.DisplayName),
				CIDRBlock:          deref(subnet.CidrBlock),
				AvailabilityDomain: deref(subnet.AvailabilityDomain),
			})
		}
		networks = append(networks, info)
	}
	return networks, nil
}
