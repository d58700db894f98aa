package compute

import (
	"context"
	"sync"
	"time"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/core"
	"github.com/oracle/oci-go-sdk/v65/identity"
)

// mockComputeAPI is a mock implementation of the computeAPI interface for testing.
type mockComputeAPI struct {
	mu sync.Mutex

	// Configurable behavior
	listImagesFunc          func(request core.ListImagesRequest) (core.ListImagesResponse, error)
	launchInstanceFunc      func(request core.LaunchInstanceRequest) (core.LaunchInstanceResponse, error)
	getInstanceFunc         func(request core.GetInstanceRequest) (core.GetInstanceResponse, error)
	listInstancesFunc       func(request core.ListInstancesRequest) (core.ListInstancesResponse, error)
	terminateInstanceFunc   func(request core.TerminateInstanceRequest) (core.TerminateInstanceResponse, error)
	listVnicAttachmentsFunc func(request core.ListVnicAttachmentsRequest) (core.ListVnicAttachmentsResponse, error)

	// Call tracking
	listImagesCalls          []core.ListImagesRequest
	launchInstanceCalls      []core.LaunchInstanceRequest
	getInstanceCalls         []core.GetInstanceRequest
	listInstancesCalls       []core.ListInstancesRequest
	terminateInstanceCalls   []string
	listVnicAttachmentsCalls []core.ListVnicAttachmentsRequest
}

// newMockComputeAPI creates a mock with empty-result defaults.
func newMockComputeAPI() *mockComputeAPI {
	return &mockComputeAPI{
		listImagesFunc: func(core.ListImagesRequest) (core.ListImagesResponse, error) {
			return core.ListImagesResponse{}, nil
		},
		launchInstanceFunc: func(core.LaunchInstanceRequest) (core.LaunchInstanceResponse, error) {
			return core.LaunchInstanceResponse{Instance: testInstance("ocid1.instance.oc1..launched", core.InstanceLifecycleStateProvisioning)}, nil
		},
		getInstanceFunc: func(core.GetInstanceRequest) (core.GetInstanceResponse, error) {
			return core.GetInstanceResponse{Instance: testInstance("ocid1.instance.oc1..launched", core.InstanceLifecycleStateRunning)}, nil
		},
		listInstancesFunc: func(core.ListInstancesRequest) (core.ListInstancesResponse, error) {
			return core.ListInstancesResponse{}, nil
		},
		terminateInstanceFunc: func(core.TerminateInstanceRequest) (core.TerminateInstanceResponse, error) {
			return core.TerminateInstanceResponse{}, nil
		},
		listVnicAttachmentsFunc: func(core.ListVnicAttachmentsRequest) (core.ListVnicAttachmentsResponse, error) {
			return core.ListVnicAttachmentsResponse{
				Items: []core.VnicAttachment{{VnicId: common.String("ocid1.vnic.oc1..primary")}},
			}, nil
		},
	}
}

func (m *mockComputeAPI) ListImages(_ context.Context, request core.ListImagesRequest) (core.ListImagesResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listImagesCalls = append(m.listImagesCalls, request)
	return m.listImagesFunc(request)
}

func (m *mockComputeAPI) LaunchInstance(_ context.Context, request core.LaunchInstanceRequest) (core.LaunchInstanceResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.launchInstanceCalls = append(m.launchInstanceCalls, request)
	return m.launchInstanceFunc(request)
}

func (m *mockComputeAPI) GetInstance(_ context.Context, request core.GetInstanceRequest) (core.GetInstanceResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getInstanceCalls = append(m.getInstanceCalls, request)
	return m.getInstanceFunc(request)
}

func (m *mockComputeAPI) ListInstances(_ context.Context, request core.ListInstancesRequest) (core.ListInstancesResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listInstancesCalls = append(m.listInstancesCalls, request)
	return m.listInstancesFunc(request)
}

func (m *mockComputeAPI) TerminateInstance(_ context.Context, request core.TerminateInstanceRequest) (core.TerminateInstanceResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.terminateInstanceCalls = append(m.terminateInstanceCalls, *request.InstanceId)
	return m.terminateInstanceFunc(request)
}

func (m *mockComputeAPI) ListVnicAttachments(_ context.Context, request core.ListVnicAttachmentsRequest) (core.ListVnicAttachmentsResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listVnicAttachmentsCalls = append(m.listVnicAttachmentsCalls, request)
	return m.listVnicAttachmentsFunc(request)
}

// mockNetworkAPI is a mock implementation of the networkAPI interface for testing.
type mockNetworkAPI struct {
	mu sync.Mutex

	listVcnsFunc    func(request core.ListVcnsRequest) (core.ListVcnsResponse, error)
	listSubnetsFunc func(request core.ListSubnetsRequest) (core.ListSubnetsResponse, error)
	getVnicFunc     func(request core.GetVnicRequest) (core.GetVnicResponse, error)

	listVcnsCalls    []core.ListVcnsRequest
	listSubnetsCalls []core.ListSubnetsRequest
	getVnicCalls     []string
}

// newMockNetworkAPI creates a mock with a single VCN, one public subnet,
// and a primary VNIC carrying a public IP.
func newMockNetworkAPI() *mockNetworkAPI {
	return &mockNetworkAPI{
		listVcnsFunc: func(core.ListVcnsRequest) (core.ListVcnsResponse, error) {
			return core.ListVcnsResponse{
				Items: []core.Vcn{{
					Id:          common.String("ocid1.vcn.oc1..main"),
					DisplayName: common.String("main-vcn"),
					CidrBlock:   common.String("10.0.0.0/16"),
				}},
			}, nil
		},
		listSubnetsFunc: func(core.ListSubnetsRequest) (core.ListSubnetsResponse, error) {
			return core.ListSubnetsResponse{
				Items: []core.Subnet{{
					Id:                 common.String("ocid1.subnet.oc1..public"),
					DisplayName:        common.String("public-subnet"),
					CidrBlock:          common.String("10.0.0.0/24"),
					AvailabilityDomain: common.String("Uocm:PHX-AD-1"),
				}},
			}, nil
		},
		getVnicFunc: func(core.GetVnicRequest) (core.GetVnicResponse, error) {
			return core.GetVnicResponse{
				Vnic: core.Vnic{
					Id:        common.String("ocid1.vnic.oc1..primary"),
					IsPrimary: common.Bool(true),
					PublicIp:  common.String("129.146.10.20"),
					PrivateIp: common.String("10.0.0.5"),
				},
			}, nil
		},
	}
}

func (m *mockNetworkAPI) ListVcns(_ context.Context, request core.ListVcnsRequest) (core.ListVcnsResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listVcnsCalls = append(m.listVcnsCalls, request)
	return m.listVcnsFunc(request)
}

func (m *mockNetworkAPI) ListSubnets(_ context.Context, request core.ListSubnetsRequest) (core.ListSubnetsResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listSubnetsCalls = append(m.listSubnetsCalls, request)
	return m.listSubnetsFunc(request)
}

func (m *mockNetworkAPI) GetVnic(_ context.Context, request core.GetVnicRequest) (core.GetVnicResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getVnicCalls = append(m.getVnicCalls, *request.VnicId)
	return m.getVnicFunc(request)
}

// mockIdentityAPI is a mock implementation of the identityAPI interface for testing.
type mockIdentityAPI struct {
	mu sync.Mutex

	listAvailabilityDomainsFunc  func(request identity.ListAvailabilityDomainsRequest) (identity.ListAvailabilityDomainsResponse, error)
	listAvailabilityDomainsCalls int
}

func newMockIdentityAPI() *mockIdentityAPI {
	return &mockIdentityAPI{
		listAvailabilityDomainsFunc: func(identity.ListAvailabilityDomainsRequest) (identity.ListAvailabilityDomainsResponse, error) {
			return identity.ListAvailabilityDomainsResponse{
				Items: []identity.AvailabilityDomain{{Name: common.String("Uocm:PHX-AD-1")}},
			}, nil
		},
	}
}

func (m *mockIdentityAPI) ListAvailabilityDomains(_ context.Context, request identity.ListAvailabilityDomainsRequest) (identity.ListAvailabilityDomainsResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.listAvailabilityDomainsCalls++
	return m.listAvailabilityDomainsFunc(request)
}

// mockClients bundles fresh default mocks.
func mockClients() (clients, *mockComputeAPI, *mockNetworkAPI, *mockIdentityAPI) {
	capi := newMockComputeAPI()
	napi := newMockNetworkAPI()
	iapi := newMockIdentityAPI()
	return clients{compute: capi, network: napi, identity: iapi}, capi, napi, iapi
}

// testInstance builds a minimal SDK instance fixture.
func testInstance(id string, state core.InstanceLifecycleStateEnum) core.Instance {
	return core.Instance{
		Id:                 common.String(id),
		DisplayName:        common.String("instance-" + string(state)),
		Shape:              common.String("VM.Standard.A1.Flex"),
		LifecycleState:     state,
		AvailabilityDomain: common.String("Uocm:PHX-AD-1"),
		Region:             common.String("phx"),
		TimeCreated:        &common.SDKTime{Time: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)},
	}
}

// testImage builds an image fixture with the given publish time.
func testImage(id, name string, created time.Time) core.Image {
	return core.Image{
		Id:          common.String(id),
		DisplayName: common.String(name),
		TimeCreated: &common.SDKTime{Time: created},
	}
}

// stateSequence returns a getInstanceFunc that walks through the given
// lifecycle states, one per call, holding the last state forever.
func stateSequence(id string, states ...core.InstanceLifecycleStateEnum) func(core.GetInstanceRequest) (core.GetInstanceResponse, error) {
	call := 0
	return func(core.GetInstanceRequest) (core.GetInstanceResponse, error) {
		state := states[len(states)-1]
		if call < len(states) {
			state = states[call]
		}
		call++
		return core.GetInstanceResponse{Instance: testInstance(id, state)}, nil
	}
}
