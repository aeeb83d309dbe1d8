package aws

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/appsync"

	"github.com/ulko-io/ulko/internal/inventory"
)

// collectAppSyncEndpoints lists GraphQL APIs in one region. Only APIs that
// expose a GRAPHQL uri become rows.
func (c *Collector) collectAppSyncEndpoints(ctx context.Context, region string) ([]inventory.Row, error) {
	client := c.appsyncClientFor(region)

	var rows []inventory.Row
	var nextToken *string

	for {
		out, err := client.ListGraphqlApis(ctx, &appsync.ListGraphqlApisInput{NextToken: nextToken})
		if err != nil {
			return nil, fmt.Errorf("list graphql apis: %w", err)
		}

		for _, api := range out.GraphqlApis {
			url, ok := api.Uris["GRAPHQL"]
			if !ok || url == "" {
				continue
			}
			rows = append(rows, inventory.Row{
				c.accountID,
				region,
				awssdk.ToString(api.Name),
				url,
			})
		}

		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}

	return rows, nil
}
