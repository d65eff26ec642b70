// Package quotefile provides quote-definition file parsing.
// A quotefile declares a region, instance configurations, and an estimated
// bandwidth volume in HCL; Apply replays it through a session.
package quotefile

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"cloud-quote/core/quote"
	"cloud-quote/core/session"
	"cloud-quote/internal/errors"
)

// QuoteFile is a decoded quote definition
type QuoteFile struct {
	// Region is the region key to load (US, UK, SG, EU, JP, CA, AU)
	Region string `hcl:"region"`

	// Instances are the instance configurations to add, in order
	Instances []InstanceBlock `hcl:"instance,block"`

	// BandwidthTB is the estimated total monthly outgoing traffic
	BandwidthTB *float64 `hcl:"bandwidth_tb"`
}

// InstanceBlock is one instance configuration
type InstanceBlock struct {
	// Type is the catalog instance type key
	Type string `hcl:"type"`

	// Quantity is the number of instances; defaults to 1
	Quantity *int `hcl:"quantity"`

	// Storage is "local" or "network"; defaults to local
	Storage *string `hcl:"storage"`

	// StorageGB is the total capacity per instance; defaults to the
	// baseline allowance
	StorageGB *int `hcl:"storage_gb"`
}

// Decode parses a quotefile from disk
func Decode(path string) (*QuoteFile, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, errors.Wrap(errors.TypeConfig, "parsing quotefile "+path, diags)
	}

	var qf QuoteFile
	if diags := gohcl.DecodeBody(file.Body, nil, &qf); diags.HasErrors() {
		return nil, errors.Wrap(errors.TypeConfig, "decoding quotefile "+path, diags)
	}
	return &qf, nil
}

// DecodeBytes parses a quotefile from memory; filename is used in
// diagnostics only
func DecodeBytes(src []byte, filename string) (*QuoteFile, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Wrap(errors.TypeConfig, "parsing quotefile "+filename, diags)
	}

	var qf QuoteFile
	if diags := gohcl.DecodeBody(file.Body, nil, &qf); diags.HasErrors() {
		return nil, errors.Wrap(errors.TypeConfig, "decoding quotefile "+filename, diags)
	}
	return &qf, nil
}

// Apply loads the quotefile's region and replays its contents through the
// session: each instance block in order, then the bandwidth line.
func Apply(ctx context.Context, qf *QuoteFile, sess *session.Session) error {
	if _, err := sess.LoadRegion(ctx, qf.Region); err != nil {
		return err
	}

	for i, block := range qf.Instances {
		quantity := 1
		if block.Quantity != nil {
			quantity = *block.Quantity
		}

		storageType := quote.StorageLocal
		if block.Storage != nil {
			st, err := quote.ParseStorageType(*block.Storage)
			if err != nil {
				return blockErr(err, i, block.Type)
			}
			storageType = st
		}

		storageGB := quote.BaselineStorageGB
		if block.StorageGB != nil {
			storageGB = *block.StorageGB
		}

		if _, err := sess.AddInstance(block.Type, quantity, storageType, storageGB); err != nil {
			return blockErr(err, i, block.Type)
		}
	}

	if qf.BandwidthTB != nil {
		totalTB, err := quote.ParseBandwidth(*qf.BandwidthTB)
		if err != nil {
			return err
		}
		if _, err := sess.SetBandwidth(totalTB); err != nil {
			return err
		}
	}

	return nil
}

func blockErr(err error, index int, instanceType string) error {
	if e, ok := err.(*errors.Error); ok {
		return e.WithContext("instance_block", fmt.Sprintf("#%d (%s)", index+1, instanceType))
	}
	return err
}
