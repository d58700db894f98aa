package compute

import (
	"context"
	"fmt"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/core"
)

// addresses holds the IPs of an instance's primary VNIC. PublicIP is
// empty when the subnet does not assign public addresses; that is a
// valid result, not an error.
type addresses struct {
	PublicIP  string
	PrivateIP string
}

// primaryVnicAddresses looks up the instance's primary VNIC and returns
// its addresses. A missing attachment or a failed VNIC fetch is a lookup
// failure, distinct from "the VNIC has no public IP".
func primaryVnicAddresses(ctx context.Context, capi computeAPI, napi networkAPI, compartmentID, instanceID string) (addresses, error) {
	attResp, err := capi.ListVnicAttachments(ctx, core.ListVnicAttachmentsRequest{
		CompartmentId: common.String(compartmentID),
		InstanceId:    common.String(instanceID),
	})
	if err != nil {
		return addresses{}, wrapProvider("VNIC attachment lookup", err)
	}
	if len(attResp.Items) == 0 {
		return addresses{}, fmt.Errorf("instance %s has no VNIC attachments", instanceID)
	}

	// The primary VNIC is the one created at launch. Prefer a VNIC that
	// reports IsPrimary, fall back to the first attachment.
	var first *core.Vnic
	for _, att := range attResp.Items {
		vnicResp, err := napi.GetVnic(ctx, core.GetVnicRequest{VnicId: att.VnicId})
		if err != nil {
			return addresses{}, wrapProvider("VNIC lookup", err)
		}
		vnic := vnicResp.Vnic
		if vnic.IsPrimary != nil && *vnic.IsPrimary {
			return addresses{PublicIP: deref(vnic.PublicIp), PrivateIP: deref(vnic.PrivateIp)}, nil
		}
		if first == nil {
			first = &vnic
		}
	}
	return addresses{PublicIP: deref(first.PublicIp), PrivateIP: deref(first.PrivateIp)}, nil
}
