package aws

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"

	"github.com/ulko-io/ulko/internal/inventory"
)

// collectInstances lists EC2 instances in one region. Only instances with a
// public IP are reported; this is an external-surface inventory.
func (c *Collector) collectInstances(ctx context.Context, region string) ([]inventory.Row, error) {
	client := c.ec2ClientFor(region)

	var rows []inventory.Row
	var nextToken *string

	for {
		out, err := client.DescribeInstances(ctx, &ec2.DescribeInstancesInput{NextToken: nextToken})
		if err != nil {
			return nil, fmt.Errorf("describe instances: %w", err)
		}

		for _, reservation := range out.Reservations {
			for _, instance := range reservation.Instances {
				if instance.PublicIpAddress == nil {
					continue
				}
				publicDNS := awssdk.ToString(instance.PublicDnsName)
				if publicDNS == "" {
					publicDNS = sentinelNA
				}
				rows = append(rows, inventory.Row{
					c.accountID,
					region,
					awssdk.ToString(instance.InstanceId),
					awssdk.ToString(instance.PublicIpAddress),
					publicDNS,
				})
			}
		}

		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}

	return rows, nil
}
