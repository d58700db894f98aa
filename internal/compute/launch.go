package compute

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/core"
	"golang.org/x/crypto/ssh"

	"github.com/ldraney/ocictl/internal/cloudinit"
	"github.com/ldraney/ocictl/internal/config"
	"github.com/ldraney/ocictl/internal/naming"
	"github.com/ldraney/ocictl/internal/oci"
)

// Launch defaults: the always-free ARM shape with its smallest sensible
// sizing, running the current Ubuntu LTS.
const (
	DefaultShape           = "VM.Standard.A1.Flex"
	DefaultOCPUs           = 1
	DefaultMemoryGBs       = 6
	DefaultOperatingSystem = "Canonical Ubuntu"
	DefaultOSVersion       = "22.04"
)

// DefaultSSHKeyPath returns the conventional public key location.
func DefaultSSHKeyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ssh", "id_rsa.pub")
}

// LaunchSpec describes the instance to launch. Zero-valued fields fall
// back to the package defaults.
type LaunchSpec struct {
	Shape           string
	OCPUs           float32
	MemoryGBs       float32
	DisplayName     string // generated from OS + timestamp when empty
	OperatingSystem string
	OSVersion       string
	SSHKeyPath      string
	UserDataPath    string // optional cloud-init bootstrap, raw file
	NoPublicIP      bool
	Poll            PollOptions
}

func (s LaunchSpec) withDefaults() LaunchSpec {
	if s.Shape == "" {
		s.Shape = DefaultShape
	}
	if s.OCPUs <= 0 {
		s.OCPUs = DefaultOCPUs
	}
	if s.MemoryGBs <= 0 {
		s.MemoryGBs = DefaultMemoryGBs
	}
	if s.OperatingSystem == "" {
		s.OperatingSystem = DefaultOperatingSystem
	}
	if s.OSVersion == "" {
		s.OSVersion = DefaultOSVersion
	}
	if s.SSHKeyPath == "" {
		s.SSHKeyPath = DefaultSSHKeyPath()
	}
	if s.DisplayName == "" {
		s.DisplayName = naming.DisplayName(s.OperatingSystem, s.OSVersion, time.Now())
	}
	return s
}

// LaunchResult reports the launched, running instance. PublicIP is empty
// when the subnet does not assign public addresses.
type LaunchResult struct {
	Instance  InstanceInfo
	ImageName string
}

// Launch provisions one instance: resolve image and network, submit the
// launch request, wait for RUNNING, then fetch the assigned addresses.
//
// The launch call is not idempotent; calling Launch twice creates two
// instances. If this process is interrupted mid-poll the instance keeps
// provisioning and must be found via List and cleaned up manually.
func Launch(ctx context.Context, cfg config.Config, spec LaunchSpec) (*LaunchResult, error) {
	client, err := oci.Connect(cfg)
	if err != nil {
		return nil, err
	}
	deps := clients{
		compute:  client.Compute(),
		network:  client.Network(),
		identity: client.Identity(),
	}
	return launchWithDeps(ctx, deps, cfg.CompartmentID(), spec)
}

// launchWithDeps launches with injected dependencies.
// This allows for testing by accepting interfaces instead of concrete types.
func launchWithDeps(ctx context.Context, deps clients, compartmentID string, spec LaunchSpec) (*LaunchResult, error) {
	spec = spec.withDefaults()

	log.Printf("Resolving %s %s image for shape %s...", spec.OperatingSystem, spec.OSVersion, spec.Shape)
	image, err := resolveImage(ctx, deps.compute, compartmentID, ImageSpec{
		OperatingSystem: spec.OperatingSystem,
		Version:         spec.OSVersion,
		Shape:           spec.Shape,
	})
	if err != nil {
		return nil, err
	}
	log.Printf("Using image %s", deref(image.DisplayName))

	log.Printf("Resolving existing network...")
	subnet, err := resolveSubnet(ctx, deps.network, compartmentID)
	if err != nil {
		return nil, err
	}
	log.Printf("Using subnet %s", deref(subnet.DisplayName))

	ad, err := availabilityDomain(ctx, deps.identity, compartmentID, subnet)
	if err != nil {
		return nil, err
	}
	log.Printf("Using availability domain %s", ad)

	sshKey, err := readSSHPublicKey(spec.SSHKeyPath)
	if err != nil {
		return nil, err
	}

	metadata := map[string]string{"ssh_authorized_keys": sshKey}
	if spec.UserDataPath != "" {
		userData, err := cloudinit.ReadFile(spec.UserDataPath)
		if err != nil {
			return nil, err
		}
		metadata["user_data"] = cloudinit.Encode(userData)
		log.Printf("Attached cloud-init user-data from %s", spec.UserDataPath)
	}

	details := core.LaunchInstanceDetails{
		AvailabilityDomain: common.String(ad),
		CompartmentId:      common.String(compartmentID),
		DisplayName:        common.String(spec.DisplayName),
		Shape:              common.String(spec.Shape),
		SourceDetails: core.InstanceSourceViaImageDetails{
			ImageId: image.Id,
		},
		CreateVnicDetails: &core.CreateVnicDetails{
			SubnetId:       subnet.Id,
			AssignPublicIp: common.Bool(!spec.NoPublicIP),
		},
		Metadata: metadata,
	}
	// Flexible shapes carry their sizing in the request; fixed shapes
	// reject a shape config.
	if strings.HasSuffix(spec.Shape, ".Flex") {
		details.ShapeConfig = &core.LaunchInstanceShapeConfigDetails{
			Ocpus:       common.Float32(spec.OCPUs),
			MemoryInGBs: common.Float32(spec.MemoryGBs),
		}
	}

	log.Printf("Launching %s (%s, %g OCPUs, %g GB)...", spec.DisplayName, spec.Shape, spec.OCPUs, spec.MemoryGBs)
	launchResp, err := deps.compute.LaunchInstance(ctx, core.LaunchInstanceRequest{
		LaunchInstanceDetails: details,
	})
	if err != nil {
		return nil, wrapProvider("instance launch", err)
	}
	instanceID := deref(launchResp.Instance.Id)
	log.Printf("Instance created: %s", instanceID)

	log.Printf("Waiting for instance to reach RUNNING...")
	instance, err := waitForRunning(ctx, deps.compute, instanceID, spec.Poll)
	if err != nil {
		return nil, err
	}

	info := instanceInfo(instance)
	addrs, err := primaryVnicAddresses(ctx, deps.compute, deps.network, compartmentID, instanceID)
	if err != nil {
		// The instance is running; only the address lookup failed. Leave
		// the operator enough context to query status separately.
		return nil, fmt.Errorf("instance %s is running but its address lookup failed: %w", instanceID, err)
	}
	info.PublicIP = addrs.PublicIP
	info.PrivateIP = addrs.PrivateIP

	return &LaunchResult{Instance: info, ImageName: deref(image.DisplayName)}, nil
}

// readSSHPublicKey reads and validates the public key that will be
// installed as an authorized key on the instance. Catching a bad key here
// beats launching an instance nobody can log in to.
func readSSHPublicKey(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read SSH public key %s: %w", path, err)
	}
	key := strings.TrimSpace(string(data))
	if _, _, _, _, err := ssh.ParseAuthorizedKey([]byte(key)); err != nil {
		return "", fmt.Errorf("%s is not a valid SSH public key: %w", path, err)
	}
	return key, nil
}
