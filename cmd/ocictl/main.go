package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ldraney/ocictl/internal/compute"
	"github.com/ldraney/ocictl/internal/config"
	"github.com/ldraney/ocictl/internal/output"
)

var (
	version = "dev"
	commit  = "unknown"
)

// Exit codes, one per error kind, so scripts can tell a config problem
// from a provider rejection or an inconclusive poll.
const (
	exitOK       = 0
	exitGeneral  = 1
	exitConfig   = 2
	exitResolve  = 3
	exitProvider = 4
	exitTimeout  = 5
	exitPartial  = 6
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to its exit code by kind.
func exitCode(err error) int {
	var (
		missingVar *config.MissingVarError
		keyFile    *config.KeyFileError
		resolve    *compute.ResolutionError
		timeout    *compute.PollTimeoutError
		partial    *compute.PartialTerminateError
		provider   *compute.ProviderError
	)
	switch {
	case errors.As(err, &missingVar), errors.As(err, &keyFile):
		return exitConfig
	case errors.As(err, &resolve):
		return exitResolve
	case errors.As(err, &timeout):
		return exitTimeout
	case errors.As(err, &partial):
		return exitPartial
	case errors.As(err, &provider):
		return exitProvider
	default:
		return exitGeneral
	}
}

var (
	// Operation selectors. Without any, the default invocation launches.
	flagList         bool
	flagStatus       string
	flagTerminate    string
	flagTerminateAll bool
	flagNetworks     bool
	flagCheckConfig  bool

	// Launch parameters.
	flagShape      string
	flagOCPUs      float32
	flagMemory     float32
	flagName       string
	flagOS         string
	flagOSVersion  string
	flagSSHKey     string
	flagUserData   string
	flagNoPublicIP bool
	flagTimeout    time.Duration

	// List parameters.
	flagState string

	// Output options.
	outputFormat string
	noHeaders    bool
)

var rootCmd = &cobra.Command{
	Use:   "ocictl",
	Short: "ocictl - launch and manage OCI compute instances",
	Long: `ocictl launches, lists, inspects, and terminates OCI compute
instances using your existing VCN and subnet. It never creates network
infrastructure.

Credentials come from the environment (or a .env file):
  OCI_USER_OCID, OCI_FINGERPRINT, OCI_TENANCY_OCID, OCI_KEY_FILE,
  OCI_REGION (optional, default us-phoenix-1),
  OCI_COMPARTMENT_OCID (optional, default: the tenancy root).

With no flags, ocictl launches an instance with the default shape and OS.`,
	Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := output.ValidateFormat(outputFormat); err != nil {
			return err
		}

		op, err := selectOperation()
		if err != nil {
			return err
		}

		cfg, err := config.FromEnv()
		if err != nil {
			return err
		}

		return op.run(cmd.Context(), cfg)
	},
}

func init() {
	flags := rootCmd.Flags()

	flags.BoolVar(&flagList, "list", false, "list instances in the compartment")
	flags.StringVar(&flagStatus, "status", "", "print detailed state and network info for one instance")
	flags.StringVar(&flagTerminate, "terminate", "", "terminate one instance by OCID")
	flags.BoolVar(&flagTerminateAll, "terminate-all", false, "terminate every instance in the compartment")
	flags.BoolVar(&flagNetworks, "networks", false, "list VCNs and subnets")
	flags.BoolVar(&flagCheckConfig, "check-config", false, "print the loaded configuration and probe API access")

	flags.StringVar(&flagShape, "shape", compute.DefaultShape, "compute shape to launch")
	flags.Float32Var(&flagOCPUs, "ocpus", compute.DefaultOCPUs, "OCPU count (flexible shapes only)")
	flags.Float32Var(&flagMemory, "memory", compute.DefaultMemoryGBs, "memory in GB (flexible shapes only)")
	flags.StringVar(&flagName, "name", "", "instance display name (default: generated from OS and timestamp)")
	flags.StringVar(&flagOS, "os", compute.DefaultOperatingSystem, "image operating system")
	flags.StringVar(&flagOSVersion, "os-version", compute.DefaultOSVersion, "image operating system version")
	flags.StringVar(&flagSSHKey, "ssh-key", compute.DefaultSSHKeyPath(), "SSH public key installed on the instance")
	flags.StringVar(&flagUserData, "user-data", "", "cloud-init user-data file attached at launch")
	flags.BoolVar(&flagNoPublicIP, "no-public-ip", false, "do not assign a public IP")
	flags.DurationVar(&flagTimeout, "timeout", compute.DefaultPollInterval*compute.DefaultMaxAttempts, "how long to wait for the instance to reach RUNNING")

	flags.StringVar(&flagState, "state", "", "with --list, keep only instances in this lifecycle state")

	flags.StringVarP(&outputFormat, "output", "o", string(output.FormatTable), "output format: table, json, or yaml")
	flags.BoolVar(&noHeaders, "no-headers", false, "omit headers in table output")
}

// selectOperation turns the flag surface into exactly one operation.
func selectOperation() (operation, error) {
	var ops []operation
	if flagList {
		ops = append(ops, &listOp{state: flagState})
	}
	if flagStatus != "" {
		ops = append(ops, &statusOp{instanceID: flagStatus})
	}
	if flagTerminate != "" {
		ops = append(ops, &terminateOp{instanceID: flagTerminate})
	}
	if flagTerminateAll {
		ops = append(ops, &terminateAllOp{})
	}
	if flagNetworks {
		ops = append(ops, &networksOp{})
	}
	if flagCheckConfig {
		ops = append(ops, &checkConfigOp{})
	}

	switch len(ops) {
	case 0:
		return &launchOp{spec: launchSpecFromFlags()}, nil
	case 1:
		return ops[0], nil
	default:
		return nil, fmt.Errorf("choose one of --list, --status, --terminate, --terminate-all, --networks, --check-config")
	}
}

func launchSpecFromFlags() compute.LaunchSpec {
	interval := compute.DefaultPollInterval
	attempts := int(flagTimeout / interval)
	if attempts < 1 {
		attempts = 1
	}

	return compute.LaunchSpec{
		Shape:           flagShape,
		OCPUs:           flagOCPUs,
		MemoryGBs:       flagMemory,
		DisplayName:     flagName,
		OperatingSystem: flagOS,
		OSVersion:       flagOSVersion,
		SSHKeyPath:      flagSSHKey,
		UserDataPath:    flagUserData,
		NoPublicIP:      flagNoPublicIP,
		Poll:            compute.PollOptions{Interval: interval, MaxAttempts: attempts},
	}
}

func formatter() (output.Formatter, error) {
	return output.NewFormatter(output.Options{
		Format:    output.Format(outputFormat),
		NoHeaders: noHeaders,
	})
}
