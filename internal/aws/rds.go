package aws

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds"

	"github.com/ulko-io/ulko/internal/inventory"
)

// collectDBInstances lists RDS instances in one region. Instances still
// provisioning have no endpoint yet; the row carries the sentinel rather
// than a missing field.
func (c *Collector) collectDBInstances(ctx context.Context, region string) ([]inventory.Row, error) {
	client := c.rdsClientFor(region)

	var rows []inventory.Row
	var marker *string

	for {
		out, err := client.DescribeDBInstances(ctx, &rds.DescribeDBInstancesInput{Marker: marker})
		if err != nil {
			return nil, fmt.Errorf("describe db instances: %w", err)
		}

		for _, instance := range out.DBInstances {
			endpoint := sentinelNA
			if instance.Endpoint != nil && instance.Endpoint.Address != nil {
				endpoint = awssdk.ToString(instance.Endpoint.Address)
			}
			rows = append(rows, inventory.Row{
				c.accountID,
				region,
				awssdk.ToString(instance.DBInstanceIdentifier),
				endpoint,
			})
		}

		if out.Marker == nil {
			break
		}
		marker = out.Marker
	}

	return rows, nil
}
