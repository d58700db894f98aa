package compute

import (
	"time"

	"github.com/oracle/oci-go-sdk/v65/core"
)

// InstanceInfo is the tool's view of one compute instance, flattened for
// reporting. Pointer-heavy SDK fields are resolved to plain values.
type InstanceInfo struct {
	ID                 string    `json:"id" yaml:"id"`
	Name               string    `json:"name" yaml:"name"`
	State              string    `json:"state" yaml:"state"`
	Shape              string    `json:"shape" yaml:"shape"`
	AvailabilityDomain string    `json:"availability_domain,omitempty" yaml:"availability_domain,omitempty"`
	Region             string    `json:"region,omitempty" yaml:"region,omitempty"`
	PublicIP           string    `json:"public_ip,omitempty" yaml:"public_ip,omitempty"`
	PrivateIP          string    `json:"private_ip,omitempty" yaml:"private_ip,omitempty"`
	TimeCreated        time.Time `json:"time_created,omitempty" yaml:"time_created,omitempty"`
}

// NetworkInfo describes one VCN and its subnets for the networks report.
type NetworkInfo struct {
	ID        string       `json:"id" yaml:"id"`
	Name      string       `json:"name" yaml:"name"`
	CIDRBlock string       `json:"cidr_block" yaml:"cidr_block"`
	State     string       `json:"state" yaml:"state"`
	Subnets   []SubnetInfo `json:"subnets" yaml:"subnets"`
}

// SubnetInfo describes one subnet within a VCN.
type SubnetInfo struct {
	ID                 string `json:"id" yaml:"id"`
	Name               string `json:"name" yaml:"name"`
	CIDRBlock          string `json:"cidr_block" yaml:"cidr_block"`
	AvailabilityDomain string `json:"availability_domain,omitempty" yaml:"availability_domain,omitempty"`
}

// deref returns the pointed-to string or "" for nil. SDK models use
// *string throughout.
func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// instanceInfo flattens an SDK instance. Network addresses are filled in
// separately since they require extra API calls.
func instanceInfo(inst core.Instance) InstanceInfo {
	info := InstanceInfo{
		ID:                 deref(inst.Id),
		Name:               deref(inst.DisplayName),
		State:              string(inst.LifecycleState),
		Shape:              deref(inst.Shape),
		AvailabilityDomain: deref(inst.AvailabilityDomain),
		Region:             deref(inst.Region),
	}
	if inst.TimeCreated != nil {
		info.TimeCreated = inst.TimeCreated.Time
	}
	return info
}

// terminated reports whether an instance is already gone or on its way
// out, i.e. there is nothing left to terminate or to look up a VNIC for.
func terminated(state core.InstanceLifecycleStateEnum) bool {
	return state == core.InstanceLifecycleStateTerminated ||
		state == core.InstanceLifecycleStateTerminating
}
