package aws

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/amplify"
	amplifytypes "github.com/aws/aws-sdk-go-v2/service/amplify/types"
	"github.com/rs/zerolog/log"

	"github.com/ulko-io/ulko/internal/inventory"
)

// collectAmplifyApps lists apps in one region and emits a row per branch
// with the branch URL built from the app's default domain.
func (c *Collector) collectAmplifyApps(ctx context.Context, region string) ([]inventory.Row, error) {
	client := c.amplifyClientFor(region)

	var rows []inventory.Row
	var nextToken *string

	for {
		out, err := client.ListApps(ctx, &amplify.ListAppsInput{NextToken: nextToken})
		if err != nil {
			return nil, fmt.Errorf("list apps: %w", err)
		}

		for _, app := range out.Apps {
			appRows, err := c.collectAppBranches(ctx, client, region, app)
			if err != nil {
				log.Warn().Err(err).Str("region", region).Str("app", awssdk.ToString(app.Name)).
					Msg("listing branches failed, skipping app")
				continue
			}
			rows = append(rows, appRows...)
		}

		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}

	return rows, nil
}

func (c *Collector) collectAppBranches(ctx context.Context, client AmplifyAPI, region string, app amplifytypes.App) ([]inventory.Row, error) {
	appID := awssdk.ToString(app.AppId)
	appName := awssdk.ToString(app.Name)
	domain := awssdk.ToString(app.DefaultDomain)

	var rows []inventory.Row
	var nextToken *string

	for {
		out, err := client.ListBranches(ctx, &amplify.ListBranchesInput{AppId: app.AppId, NextToken: nextToken})
		if err != nil {
			return nil, fmt.Errorf("list branches for app %s: %w", appID, err)
		}

		for _, branch := range out.Branches {
			branchName := awssdk.ToString(branch.BranchName)
			rows = append(rows, inventory.Row{
				c.accountID,
				region,
				appID,
				appName,
				branchName,
				fmt.Sprintf("https://%s.%s", branchName, domain),
			})
		}

		if out.NextToken == nil {
			break
		}
		nextToken = out.NextToken
	}

	return rows, nil
}
