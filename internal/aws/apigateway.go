package aws

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/apigateway"
	"github.com/rs/zerolog/log"

	"github.com/ulko-io/ulko/internal/inventory"
)

// collectAPIGatewayEndpoints lists REST APIs in one region and emits a row
// per deployed stage with its reconstructed invoke URL.
func (c *Collector) collectAPIGatewayEndpoints(ctx context.Context, region string) ([]inventory.Row, error) {
	client := c.apigatewayClientFor(region)

	var rows []inventory.Row
	var position *string

	for {
		out, err := client.GetRestApis(ctx, &apigateway.GetRestApisInput{Position: position})
		if err != nil {
			return nil, fmt.Errorf("get rest apis: %w", err)
		}

		for _, api := range out.Items {
			apiID := awssdk.ToString(api.Id)
			apiName := awssdk.ToString(api.Name)

			stages, err := client.GetStages(ctx, &apigateway.GetStagesInput{RestApiId: api.Id})
			if err != nil {
				log.Warn().Err(err).Str("region", region).Str("api", apiName).
					Msg("listing stages failed, skipping api")
				continue
			}

			for _, stage := range stages.Item {
				stageName := awssdk.ToString(stage.StageName)
				rows = append(rows, inventory.Row{
					c.accountID,
					region,
					apiName,
					apiID,
					stageName,
					invokeURL(apiID, region, stageName),
				})
			}
		}

		if out.Position == nil {
			break
		}
		position = out.Position
	}

	return rows, nil
}

func invokeURL(apiID, region, stage string) string {
	return fmt.Sprintf("https://%s.execute-api.%s.amazonaws.com/%s", apiID, region, stage)
}
