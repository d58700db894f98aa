package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/ldraney/ocictl/internal/compute"
	"github.com/ldraney/ocictl/internal/config"
	"github.com/ldraney/ocictl/internal/oci"
	"github.com/ldraney/ocictl/internal/output"
)

// operation is one invocation's worth of work: ocictl runs exactly one
// operation per process and exits.
type operation interface {
	run(ctx context.Context, cfg config.Config) error
}

type launchOp struct {
	spec compute.LaunchSpec
}

func (o *launchOp) run(ctx context.Context, cfg config.Config) error {
	result, err := compute.Launch(ctx, cfg, o.spec)
	if err != nil {
		return err
	}

	f, err := formatter()
	if err != nil {
		return err
	}
	text, err := f.FormatInstance(&result.Instance)
	if err != nil {
		return err
	}
	fmt.Print(text)

	if output.Format(outputFormat) == output.FormatTable {
		printSSHHint(result.Instance)
		fmt.Printf("\nTo terminate later:\n  ocictl --terminate %s\n", result.Instance.ID)
	}
	return nil
}

type listOp struct {
	state string
}

func (o *listOp) run(ctx context.Context, cfg config.Config) error {
	infos, err := compute.List(ctx, cfg, o.state)
	if err != nil {
		return err
	}

	f, err := formatter()
	if err != nil {
		return err
	}
	text, err := f.FormatInstanceList(infos)
	if err != nil {
		return err
	}
	fmt.Print(text)
	return nil
}

type statusOp struct {
	instanceID string
}

func (o *statusOp) run(ctx context.Context, cfg config.Config) error {
	info, err := compute.Status(ctx, cfg, o.instanceID)
	if err != nil {
		return err
	}

	f, err := formatter()
	if err != nil {
		return err
	}
	text, err := f.FormatInstance(info)
	if err != nil {
		return err
	}
	fmt.Print(text)

	if output.Format(outputFormat) == output.FormatTable {
		printSSHHint(*info)
	}
	return nil
}

type terminateOp struct {
	instanceID string
}

func (o *terminateOp) run(ctx context.Context, cfg config.Config) error {
	if err := compute.Terminate(ctx, cfg, o.instanceID); err != nil {
		return err
	}
	// Fire-and-forget: the provider finishes termination on its own.
	fmt.Printf("Termination started for %s\n", o.instanceID)
	return nil
}

type terminateAllOp struct{}

func (o *terminateAllOp) run(ctx context.Context, cfg config.Config) error {
	results, err := compute.TerminateAll(ctx, cfg)

	for _, r := range results {
		if r.Err != nil {
			fmt.Printf("✗ %s (%s): %v\n", r.Name, r.ID, r.Err)
		} else {
			fmt.Printf("✓ %s (%s): termination started\n", r.Name, r.ID)
		}
	}
	if err == nil && len(results) == 0 {
		fmt.Println("No instances to terminate")
	}
	return err
}

type networksOp struct{}

func (o *networksOp) run(ctx context.Context, cfg config.Config) error {
	networks, err := compute.ListNetworks(ctx, cfg)
	if err != nil {
		return err
	}

	f, err := formatter()
	if err != nil {
		return err
	}
	text, err := f.FormatNetworks(networks)
	if err != nil {
		return err
	}
	fmt.Print(text)
	return nil
}

type checkConfigOp struct{}

func (o *checkConfigOp) run(ctx context.Context, cfg config.Config) error {
	fmt.Printf("Region:      %s\n", cfg.Region)
	fmt.Printf("Tenancy:     %s\n", redact(cfg.TenancyOCID))
	fmt.Printf("User:        %s\n", redact(cfg.UserOCID))
	fmt.Printf("Fingerprint: %s\n", redact(cfg.Fingerprint))
	fmt.Printf("Key file:    %s\n", cfg.KeyFile)
	fmt.Printf("Compartment: %s\n", redact(cfg.CompartmentID()))

	client, err := oci.Connect(cfg)
	if err != nil {
		return err
	}
	if err := client.Ping(ctx, cfg.CompartmentID()); err != nil {
		return err
	}
	fmt.Println("API access:  OK")
	return nil
}

// redact keeps enough of an identifier to recognize it without printing
// the whole thing.
func redact(s string) string {
	if len(s) <= 20 {
		return s
	}
	return s[:20] + "..."
}

// printSSHHint prints a ready-to-paste ssh command when the instance has
// a public IP. A missing public IP is a normal outcome for private
// subnets, and says so.
func printSSHHint(info compute.InstanceInfo) {
	if info.PublicIP == "" {
		fmt.Println("\nNo public IP assigned (private subnet); connect over the VCN")
		return
	}
	fmt.Printf("\nSSH into it with:\n  ssh %s@%s\n", sshUser(info), info.PublicIP)
}

// sshUser guesses the image's default login user from the instance name.
// Ubuntu images create "ubuntu"; Oracle Linux images create "opc".
func sshUser(info compute.InstanceInfo) string {
	if strings.Contains(strings.ToLower(info.Name), "ubuntu") {
		return "ubuntu"
	}
	return "opc"
}
