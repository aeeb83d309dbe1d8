package aws

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"

	"github.com/ulko-io/ulko/internal/inventory"
)

// collectLoadBalancers lists ELBv2 load balancers in one region.
func (c *Collector) collectLoadBalancers(ctx context.Context, region string) ([]inventory.Row, error) {
	client := c.elbClientFor(region)

	var rows []inventory.Row
	var marker *string

	for {
		out, err := client.DescribeLoadBalancers(ctx, &elasticloadbalancingv2.DescribeLoadBalancersInput{Marker: marker})
		if err != nil {
			return nil, fmt.Errorf("describe load balancers: %w", err)
		}

		for _, lb := range out.LoadBalancers {
			rows = append(rows, inventory.Row{
				c.accountID,
				region,
				awssdk.ToString(lb.LoadBalancerName),
				awssdk.ToString(lb.DNSName),
			})
		}

		if out.NextMarker == nil {
			break
		}
		marker = out.NextMarker
	}

	return rows, nil
}
