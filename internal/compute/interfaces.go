package compute

import (
	"context"

	"github.com/oracle/oci-go-sdk/v65/core"
	"github.com/oracle/oci-go-sdk/v65/identity"
)

// computeAPI defines the compute-service operations needed for instance
// management. This wraps operations from core.ComputeClient to allow for
// testing.
//
// In production, this is satisfied by *core.ComputeClient directly.
// In tests, this is satisfied by mock implementations.
type computeAPI interface {
	// ListImages lists images in the catalog matching the request filters
	ListImages(ctx context.Context, request core.ListImagesRequest) (core.ListImagesResponse, error)

	// LaunchInstance creates a new compute instance
	LaunchInstance(ctx context.Context, request core.LaunchInstanceRequest) (core.LaunchInstanceResponse, error)

	// GetInstance fetches one instance by OCID
	GetInstance(ctx context.Context, request core.GetInstanceRequest) (core.GetInstanceResponse, error)

	// ListInstances lists instances in a compartment
	ListInstances(ctx context.Context, request core.ListInstancesRequest) (core.ListInstancesResponse, error)

	// TerminateInstance submits a terminate request for an instance
	TerminateInstance(ctx context.Context, request core.TerminateInstanceRequest) (core.TerminateInstanceResponse, error)

	// ListVnicAttachments lists the VNIC attachments of an instance
	ListVnicAttachments(ctx context.Context, request core.ListVnicAttachmentsRequest) (core.ListVnicAttachmentsResponse, error)
}

// networkAPI defines the virtual-network operations needed for instance
// management.
//
// In production, this is satisfied by *core.VirtualNetworkClient directly.
// In tests, this is satisfied by mock implementations.
type networkAPI interface {
	// ListVcns lists virtual cloud networks in a compartment
	ListVcns(ctx context.Context, request core.ListVcnsRequest) (core.ListVcnsResponse, error)

	// ListSubnets lists subnets, optionally scoped to one VCN
	ListSubnets(ctx context.Context, request core.ListSubnetsRequest) (core.ListSubnetsResponse, error)

	// GetVnic fetches one VNIC by OCID
	GetVnic(ctx context.Context, request core.GetVnicRequest) (core.GetVnicResponse, error)
}

// identityAPI defines the identity-service operations needed for instance
// management.
//
// In production, this is satisfied by *identity.IdentityClient directly.
// In tests, this is satisfied by mock implementations.
type identityAPI interface {
	// ListAvailabilityDomains lists the availability domains of a compartment
	ListAvailabilityDomains(ctx context.Context, request identity.ListAvailabilityDomainsRequest) (identity.ListAvailabilityDomainsResponse, error)
}

// clients bundles the service APIs an operation needs. Exported entry
// points build it from a live oci.Client; tests build it from mocks.
type clients struct {
	compute  computeAPI
	network  networkAPI
	identity identityAPI
}
