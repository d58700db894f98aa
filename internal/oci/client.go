// Package oci constructs authenticated OCI service clients from an
// explicit configuration. It is the only package that touches the SDK's
// authentication machinery; everything above it works against narrow
// interfaces.
package oci

import (
	"context"
	"fmt"
	"os"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/core"
	"github.com/oracle/oci-go-sdk/v65/identity"

	"github.com/ldraney/ocictl/internal/config"
)

// Client bundles the compute, networking, and identity clients built from
// one set of credentials.
type Client struct {
	compute  core.ComputeClient
	network  core.VirtualNetworkClient
	identity identity.IdentityClient
}

// Connect reads the API private key and builds the OCI service clients.
// No network traffic happens here; authentication failures surface on the
// first real request.
func Connect(cfg config.Config) (*Client, error) {
	key, err := os.ReadFile(cfg.KeyFile)
	if err != nil {
		return nil, &config.KeyFileError{Path: cfg.KeyFile, Err: err}
	}

	provider := common.NewRawConfigurationProvider(
		cfg.TenancyOCID,
		cfg.UserOCID,
		cfg.Region,
		cfg.Fingerprint,
		string(key),
		nil, // key passphrase not supported
	)

	computeClient, err := core.NewComputeClientWithConfigurationProvider(provider)
	if err != nil {
		return nil, fmt.Errorf("failed to create compute client: %w", err)
	}

	networkClient, err := core.NewVirtualNetworkClientWithConfigurationProvider(provider)
	if err != nil {
		return nil, fmt.Errorf("failed to create virtual network client: %w", err)
	}

	identityClient, err := identity.NewIdentityClientWithConfigurationProvider(provider)
	if err != nil {
		return nil, fmt.Errorf("failed to create identity client: %w", err)
	}

	return &Client{
		compute:  computeClient,
		network:  networkClient,
		identity: identityClient,
	}, nil
}

// Compute returns the compute client for direct API access.
func (c *Client) Compute() *core.ComputeClient { return &c.compute }

// Network returns the virtual network client for direct API access.
func (c *Client) Network() *core.VirtualNetworkClient { return &c.network }

// Identity returns the identity client for direct API access.
func (c *Client) Identity() *identity.IdentityClient { return &c.identity }

// Ping verifies API access with a minimal list request against the
// compartment. Used by the config-check command.
func (c *Client) Ping(ctx context.Context, compartmentID string) error {
	_, err := c.compute.ListInstances(ctx, core.ListInstancesRequest{
		CompartmentId: common.String(compartmentID),
		Limit:         common.Int(1),
	})
	if err != nil {
		return fmt.Errorf("API access check failed: %w", err)
	}
	return nil
}
