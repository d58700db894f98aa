package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/ldraney/ocictl/internal/compute"
)

// TableFormatter formats reports as human-readable tables.
type TableFormatter struct {
	// NoHeaders omits the header row.
	NoHeaders bool
}

// FormatInstance formats a single instance as a key/value detail block.
func (f *TableFormatter) FormatInstance(info *compute.InstanceInfo) (string, error) {
	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	_, _ = fmt.Fprintf(w, "Name:\t%s\n", info.Name)
	_, _ = fmt.Fprintf(w, "ID:\t%s\n", info.ID)
	_, _ = fmt.Fprintf(w, "State:\t%s\n", info.State)
	_, _ = fmt.Fprintf(w, "Shape:\t%s\n", info.Shape)
	if info.AvailabilityDomain != "" {
		_, _ = fmt.Fprintf(w, "Availability domain:\t%s\n", info.AvailabilityDomain)
	}
	if info.Region != "" {
		_, _ = fmt.Fprintf(w, "Region:\t%s\n", info.Region)
	}
	_, _ = fmt.Fprintf(w, "Public IP:\t%s\n", orDash(info.PublicIP))
	_, _ = fmt.Fprintf(w, "Private IP:\t%s\n", orDash(info.PrivateIP))
	if !info.TimeCreated.IsZero() {
		_, _ = fmt.Fprintf(w, "Created:\t%s (%s ago)\n",
			info.TimeCreated.Format(time.RFC3339), formatAge(time.Since(info.TimeCreated)))
	}

	_ = w.Flush()
	return buf.String(), nil
}

// FormatInstanceList formats instances as a table, one row each.
func (f *TableFormatter) FormatInstanceList(infos []compute.InstanceInfo) (string, error) {
	if len(infos) == 0 {
		return "No instances found\n", nil
	}

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	if !f.NoHeaders {
		_, _ = fmt.Fprintln(w, "NAME\tSTATE\tSHAPE\tPUBLIC IP\tAGE\tID")
	}

	for _, info := range infos {
		age := "-"
		if !info.TimeCreated.IsZero() {
			age = formatAge(time.Since(info.TimeCreated))
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			info.Name, info.State, info.Shape, orDash(info.PublicIP), age, info.ID)
	}

	_ = w.Flush()
	return buf.String(), nil
}

// FormatNetworks formats VCNs and their subnets as an indented listing.
func (f *TableFormatter) FormatNetworks(networks []compute.NetworkInfo) (string, error) {
	if len(networks) == 0 {
		return "No VCNs found\n", nil
	}

	var buf bytes.Buffer
	for _, vcn := range networks {
		_, _ = fmt.Fprintf(&buf, "VCN %s (%s, %s)\n", vcn.Name, vcn.CIDRBlock, vcn.ID)
		for _, subnet := range vcn.Subnets {
			ad := subnet.AvailabilityDomain
			if ad == "" {
				ad = "regional"
			}
			_, _ = fmt.Fprintf(&buf, "  subnet %s (%s, %s, %s)\n", subnet.Name, subnet.CIDRBlock, ad, subnet.ID)
		}
	}
	return buf.String(), nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

// formatAge formats a duration as a human-readable age string.
// Examples: "5s", "2m", "3h", "4d", "2w", "1y"
func formatAge(d time.Duration) string {
	if d < 0 {
		return "unknown"
	}

	seconds := int(d.Seconds())
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}

	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%dm", minutes)
	}

	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%dh", hours)
	}

	days := hours / 24
	if days < 7 {
		return fmt.Sprintf("%dd", days)
	}

	weeks := days / 7
	if weeks < 8 {
		return fmt.Sprintf("%dw", weeks)
	}

	years := days / 365
	if years > 0 {
		return fmt.Sprintf("%dy", years)
	}

	return fmt.Sprintf("%dd", days)
}
