package report

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ulko-io/ulko/internal/inventory"
)

func fixedClock() time.Time {
	return time.Date(2026, 8, 29, 14, 30, 5, 0, time.Local)
}

func TestExcelWriterWrite(t *testing.T) {
	dir := t.TempDir()
	w := NewExcelWriter(dir)
	w.now = fixedClock

	tables := []inventory.Table{
		{
			Name:   "EC2 Instances",
			Header: []string{"Account ID", "Region", "Instance ID", "Public IP", "Public DNS"},
			Rows: []inventory.Row{
				{"123456789012", "eu-west-1", "i-abc", "198.51.100.4", "ec2-198-51-100-4.compute-1.amazonaws.com"},
			},
		},
		{
			Name:   "RDS Endpoints",
			Header: []string{"Account ID", "Region", "DB Instance ID", "Endpoint"},
		},
	}

	path, err := w.Write("123456789012", tables)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "aws_resources_123456789012_20260829143005.xlsx"), path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{"EC2 Instances", "RDS Endpoints"}, f.GetSheetList())

	ec2Rows, err := f.GetRows("EC2 Instances")
	require.NoError(t, err)
	require.Len(t, ec2Rows, 2)
	assert.Equal(t, []string{"Account ID", "Region", "Instance ID", "Public IP", "Public DNS"}, ec2Rows[0])
	assert.Equal(t, "i-abc", ec2Rows[1][2])

	// Empty table still exists with its header.
	rdsRows, err := f.GetRows("RDS Endpoints")
	require.NoError(t, err)
	require.Len(t, rdsRows, 1)
	assert.Equal(t, []string{"Account ID", "Region", "DB Instance ID", "Endpoint"}, rdsRows[0])
}

func TestExcelWriterNoTables(t *testing.T) {
	w := NewExcelWriter(t.TempDir())
	w.now = fixedClock

	_, err := w.Write("123456789012", nil)

	require.Error(t, err)
}
