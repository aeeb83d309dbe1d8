package aws

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/rs/zerolog/log"

	"github.com/ulko-io/ulko/internal/inventory"
)

// collectLambdaFunctions lists functions in one region. The function URL is
// a per-item detail lookup; its failures downgrade to a sentinel so one
// unreadable function never drops its siblings.
func (c *Collector) collectLambdaFunctions(ctx context.Context, region string) ([]inventory.Row, error) {
	client := c.lambdaClientFor(region)

	var rows []inventory.Row
	var marker *string

	for {
		out, err := client.ListFunctions(ctx, &lambda.ListFunctionsInput{Marker: marker})
		if err != nil {
			return nil, fmt.Errorf("list functions: %w", err)
		}

		for _, fn := range out.Functions {
			name := awssdk.ToString(fn.FunctionName)
			rows = append(rows, inventory.Row{
				c.accountID,
				region,
				name,
				c.functionURL(ctx, client, region, name).Display(),
			})
		}

		if out.NextMarker == nil {
			break
		}
		marker = out.NextMarker
	}

	return rows, nil
}

func (c *Collector) functionURL(ctx context.Context, client LambdaAPI, region, name string) Detail {
	out, err := client.GetFunctionUrlConfig(ctx, &lambda.GetFunctionUrlConfigInput{
		FunctionName: awssdk.String(name),
	})
	if err != nil {
		detail := classifyDetail(err)
		if detail.Outcome != OutcomeNotFound {
			log.Warn().Err(err).Str("region", region).Str("function", name).
				Msg("function url lookup failed")
		}
		return detail
	}
	return detailValue(awssdk.ToString(out.FunctionUrl))
}
