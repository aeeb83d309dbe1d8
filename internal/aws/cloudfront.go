package aws

import (
	"context"
	"fmt"
	"strings"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	cftypes "github.com/aws/aws-sdk-go-v2/service/cloudfront/types"

	"github.com/ulko-io/ulko/internal/inventory"
)

// collectCloudFrontDistributions lists distributions. CloudFront is global,
// so the region argument is ignored.
func (c *Collector) collectCloudFrontDistributions(ctx context.Context, _ string) ([]inventory.Row, error) {
	var rows []inventory.Row
	var marker *string

	for {
		out, err := c.cloudfrontClient.ListDistributions(ctx, &cloudfront.ListDistributionsInput{Marker: marker})
		if err != nil {
			return nil, fmt.Errorf("list distributions: %w", err)
		}

		list := out.DistributionList
		if list == nil {
			break
		}

		for _, dist := range list.Items {
			rows = append(rows, inventory.Row{
				c.accountID,
				awssdk.ToString(dist.Id),
				distributionName(dist),
				awssdk.ToString(dist.DomainName),
				strings.Join(aliasItems(dist.Aliases), ", "),
			})
		}

		if !awssdk.ToBool(list.IsTruncated) {
			break
		}
		marker = list.NextMarker
	}

	return rows, nil
}

// distributionName is the ID of the first origin, matching how the
// distribution is usually referred to.
func distributionName(dist cftypes.DistributionSummary) string {
	if dist.Origins == nil || len(dist.Origins.Items) == 0 {
		return sentinelNA
	}
	return awssdk.ToString(dist.Origins.Items[0].Id)
}

func aliasItems(aliases *cftypes.Aliases) []string {
	if aliases == nil {
		return nil
	}
	return aliases.Items
}
