package compute

import (
	"context"
	"fmt"
	"log"

	"github.com/oracle/oci-go-sdk/v65/common"
	"github.com/oracle/oci-go-sdk/v65/core"
)

// ImageSpec selects an image from the provider catalog.
type ImageSpec struct {
	OperatingSystem string // e.g. "Canonical Ubuntu"
	Version         string // e.g. "22.04"
	Shape           string // restricts the catalog to images compatible with the shape's architecture
}

// resolveImage finds the most recently published image matching the spec.
//
// The catalog is filtered by shape first because the shape determines the
// CPU architecture (A1 shapes are ARM). If nothing matches the shape
// filter, the lookup is retried without it, which picks up x86 builds of
// the same OS.
func resolveImage(ctx context.Context, api computeAPI, compartmentID string, spec ImageSpec) (core.Image, error) {
	images, err := listImages(ctx, api, compartmentID, spec, spec.Shape)
	if err != nil {
		return core.Image{}, err
	}

	if len(images) == 0 && spec.Shape != "" {
		log.Printf("No %s %s images for shape %s, trying without shape filter...",
			spec.OperatingSystem, spec.Version, spec.Shape)
		images, err = listImages(ctx, api, compartmentID, spec, "")
		if err != nil {
			return core.Image{}, err
		}
	}

	if len(images) == 0 {
		return core.Image{}, &ResolutionError{
			Resource: "image",
			Hint: fmt.Sprintf("no %s %s image is compatible with shape %s; pick a different OS version or shape",
				spec.OperatingSystem, spec.Version, spec.Shape),
		}
	}

	// The request asks for newest-first, but pick the newest explicitly
	// so the selection does not depend on server-side ordering.
	newest := images[0]
	for _, img := range images[1:] {
		if img.TimeCreated != nil &&
			(newest.TimeCreated == nil || img.TimeCreated.After(newest.TimeCreated.Time)) {
			newest = img
		}
	}
	return newest, nil
}

func listImages(ctx context.Context, api computeAPI, compartmentID string, spec ImageSpec, shape string) ([]core.Image, error) {
	req := core.ListImagesRequest{
		CompartmentId:          common.String(compartmentID),
		OperatingSystem:        common.String(spec.OperatingSystem),
		OperatingSystemVersion: common.String(spec.Version),
		SortBy:                 core.ListImagesSortByTimecreated,
		SortOrder:              core.ListImagesSortOrderDesc,
	}
	if shape != "" {
		req.Shape = common.String(shape)
	}

	resp, err := api.ListImages(ctx, req)
	if err != nil {
		return nil, wrapProvider("image lookup", err)
	}
	return resp.Items, nil
}
