package aws

import (
	"context"
	"fmt"
	"sort"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
)

// Regions returns the regions regional kinds fan out to: the configured
// override when present, otherwise the account's enabled regions.
func (c *Collector) Regions(ctx context.Context) ([]string, error) {
	if len(c.regions) > 0 {
		return c.regions, nil
	}

	out, err := c.regionsClient.DescribeRegions(ctx, &ec2.DescribeRegionsInput{})
	if err != nil {
		return nil, fmt.Errorf("describe regions: %w", err)
	}

	regions := make([]string, 0, len(out.Regions))
	for _, region := range out.Regions {
		if region.RegionName != nil {
			regions = append(regions, awssdk.ToString(region.RegionName))
		}
	}
	sort.Strings(regions)
	return regions, nil
}
