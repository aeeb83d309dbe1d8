// Package inventory holds the tabular result model and the run orchestration
// for an asset collection pass.
package inventory

import "context"

// Row is one flattened record describing a discovered resource. The first
// cell is always the account ID of the run.
type Row []string

// Table is a named, ordered collection of rows sharing a header. A kind with
// zero matching resources still produces its table so the report keeps the
// sheet with its header row.
type Table struct {
	Name   string
	Header []string
	Rows   []Row
}

// Kind declares one resource kind to enumerate. Global kinds are collected
// once with an empty region; regional kinds are collected once per enabled
// region. Collect owns the kind's pagination contract and row shape.
type Kind struct {
	Sheet   string
	Header  []string
	Global  bool
	Collect func(ctx context.Context, region string) ([]Row, error)
}
