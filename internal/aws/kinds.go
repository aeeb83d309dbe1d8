package aws

import (
	"context"
	"fmt"

	"github.com/ulko-io/ulko/internal/inventory"
)

// Kinds returns the nine reported resource kinds in sheet order. Each kind
// keeps its own pagination contract; the wrapper promotes auth failures to a
// kind abort so the run stops fanning that kind out to further regions.
func (c *Collector) Kinds() []inventory.Kind {
	return []inventory.Kind{
		c.kind("Route 53 DNS Records",
			[]string{"Account ID", "Hosted Zone", "Domain", "Record Type", "Record Value"},
			true, c.collectRoute53Records),
		c.kind("API Gateway Endpoints",
			[]string{"Account ID", "Region", "API Name", "API ID", "Stage", "Invoke URL"},
			false, c.collectAPIGatewayEndpoints),
		c.kind("Lambda Functions",
			[]string{"Account ID", "Region", "Function Name", "Function URL"},
			false, c.collectLambdaFunctions),
		c.kind("AppSync Endpoints",
			[]string{"Account ID", "Region", "API Name", "API URL"},
			false, c.collectAppSyncEndpoints),
		c.kind("CloudFront Distributions",
			[]string{"Account ID", "Distribution ID", "Distribution Name", "Domain Name", "Alternate Domain Names"},
			true, c.collectCloudFrontDistributions),
		c.kind("Amplify Apps",
			[]string{"Account ID", "Region", "App ID", "App Name", "Branch Name", "Branch URL"},
			false, c.collectAmplifyApps),
		c.kind("ELB Endpoints",
			[]string{"Account ID", "Region", "Load Balancer Name", "DNS Name"},
			false, c.collectLoadBalancers),
		c.kind("RDS Endpoints",
			[]string{"Account ID", "Region", "DB Instance ID", "Endpoint"},
			false, c.collectDBInstances),
		c.kind("EC2 Instances",
			[]string{"Account ID", "Region", "Instance ID", "Public IP", "Public DNS"},
			false, c.collectInstances),
	}
}

func (c *Collector) kind(sheet string, header []string, global bool, collect func(context.Context, string) ([]inventory.Row, error)) inventory.Kind {
	return inventory.Kind{
		Sheet:  sheet,
		Header: header,
		Global: global,
		Collect: func(ctx context.Context, region string) ([]inventory.Row, error) {
			rows, err := collect(ctx, region)
			if err != nil && isAccessDenied(err) {
				return nil, fmt.Errorf("%w: %v", inventory.ErrKindAborted, err)
			}
			return rows, err
		},
	}
}
