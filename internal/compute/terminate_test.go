package compute

import (
	"context"
	"testing"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminateWithDeps(t *testing.T) {
	mock := newMockComputeAPI()

	err := terminateWithDeps(context.Background(), mock, "ocid1.instance.oc1..a")
	require.NoError(t, err)

	assert.Equal(t, []string{"ocid1.instance.oc1..a"}, mock.terminateInstanceCalls)
}

func TestTerminateWithDeps_ProviderError(t *testing.T) {
	mock := newMockComputeAPI()
	mock.terminateInstanceFunc = func(core.TerminateInstanceRequest) (core.TerminateInstanceResponse, error) {
		return core.TerminateInstanceResponse{}, assert.AnError
	}

	err := terminateWithDeps(context.Background(), mock, "ocid1.instance.oc1..a")

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
}

func terminateAllFixture(mock *mockComputeAPI) {
	mock.listInstancesFunc = func(core.ListInstancesRequest) (core.ListInstancesResponse, error) {
		a := testInstance("ocid1.instance.oc1..a", core.InstanceLifecycleStateRunning)
		a.DisplayName = common.String("a")
		b := testInstance("ocid1.instance.oc1..b", core.InstanceLifecycleStateRunning)
		b.DisplayName = common.String("b")
		c := testInstance("ocid1.instance.oc1..c", core.InstanceLifecycleStateStopped)
		c.DisplayName = common.String("c")
		gone := testInstance("ocid1.instance.oc1..gone", core.InstanceLifecycleStateTerminated)
		return core.ListInstancesResponse{Items: []core.Instance{a, b, c, gone}}, nil
	}
}

func TestTerminateAll(t *testing.T) {
	mock := newMockComputeAPI()
	terminateAllFixture(mock)

	results, err := terminateAllWithDeps(context.Background(), mock, testCompartment)
	require.NoError(t, err)

	// Terminated instances are skipped, everything else is submitted.
	require.Len(t, results, 3)
	assert.Equal(t, []string{"ocid1.instance.oc1..a", "ocid1.instance.oc1..b", "ocid1.instance.oc1..c"},
		mock.terminateInstanceCalls)
	for _, r := range results {
		assert.NoError(t, r.Err)
	}
}

func TestTerminateAll_PartialFailureContinues(t *testing.T) {
	mock := newMockComputeAPI()
	terminateAllFixture(mock)
	mock.terminateInstanceFunc = func(req core.TerminateInstanceRequest) (core.TerminateInstanceResponse, error) {
		if *req.InstanceId == "ocid1.instance.oc1..b" {
			return core.TerminateInstanceResponse{}, assert.AnError
		}
		return core.TerminateInstanceResponse{}, nil
	}

	results, err := terminateAllWithDeps(context.Background(), mock, testCompartment)

	var partial *PartialTerminateError
	require.ErrorAs(t, err, &partial)
	assert.Equal(t, 1, partial.Failed)
	assert.Equal(t, 3, partial.Total)

	// B's failure did not stop the batch: all three were attempted.
	assert.Len(t, mock.terminateInstanceCalls, 3)

	require.Len(t, results, 3)
	byID := map[string]TerminateResult{}
	for _, r := range results {
		byID[r.ID] = r
	}
	assert.NoError(t, byID["ocid1.instance.oc1..a"].Err)
	assert.Error(t, byID["ocid1.instance.oc1..b"].Err)
	assert.NoError(t, byID["ocid1.instance.oc1..c"].Err)
}

func TestTerminateAll_NothingToDo(t *testing.T) {
	mock := newMockComputeAPI()

	results, err := terminateAllWithDeps(context.Background(), mock, testCompartment)
	require.NoError(t, err)

	assert.Empty(t, results)
	assert.Empty(t, mock.terminateInstanceCalls)
}
