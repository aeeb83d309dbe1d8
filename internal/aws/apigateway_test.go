package aws

import (
	"context"
	"errors"
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/apigateway"
	apigwtypes "github.com/aws/aws-sdk-go-v2/service/apigateway/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockAPIGatewayClient struct {
	GetRestApisFunc func(ctx context.Context, params *apigateway.GetRestApisInput, optFns ...func(*apigateway.Options)) (*apigateway.GetRestApisOutput, error)
	GetStagesFunc   func(ctx context.Context, params *apigateway.GetStagesInput, optFns ...func(*apigateway.Options)) (*apigateway.GetStagesOutput, error)
}

func (m *mockAPIGatewayClient) GetRestApis(ctx context.Context, params *apigateway.GetRestApisInput, optFns ...func(*apigateway.Options)) (*apigateway.GetRestApisOutput, error) {
	return m.GetRestApisFunc(ctx, params, optFns...)
}

func (m *mockAPIGatewayClient) GetStages(ctx context.Context, params *apigateway.GetStagesInput, optFns ...func(*apigateway.Options)) (*apigateway.GetStagesOutput, error) {
	return m.GetStagesFunc(ctx, params, optFns...)
}

func TestCollectAPIGatewayEndpoints(t *testing.T) {
	mock := &mockAPIGatewayClient{
		GetRestApisFunc: func(_ context.Context, _ *apigateway.GetRestApisInput, _ ...func(*apigateway.Options)) (*apigateway.GetRestApisOutput, error) {
			return &apigateway.GetRestApisOutput{
				Items: []apigwtypes.RestApi{
					{Id: awssdk.String("abc123"), Name: awssdk.String("orders-api")},
				},
			}, nil
		},
		GetStagesFunc: func(_ context.Context, params *apigateway.GetStagesInput, _ ...func(*apigateway.Options)) (*apigateway.GetStagesOutput, error) {
			assert.Equal(t, "abc123", awssdk.ToString(params.RestApiId))
			return &apigateway.GetStagesOutput{
				Item: []apigwtypes.Stage{
					{StageName: awssdk.String("prod")},
					{StageName: awssdk.String("staging")},
				},
			}, nil
		},
	}

	c := &Collector{accountID: "123456789012", apigatewayClientFor: func(string) APIGatewayAPI { return mock }}
	rows, err := c.collectAPIGatewayEndpoints(context.Background(), "eu-west-1")

	require.NoError(t, err)
	require.Len(t, rows, 2, "one row per stage")
	assert.Equal(t, []string{"123456789012", "eu-west-1", "orders-api", "abc123", "prod",
		"https://abc123.execute-api.eu-west-1.amazonaws.com/prod"}, []string(rows[0]))
	assert.Equal(t, "https://abc123.execute-api.eu-west-1.amazonaws.com/staging", rows[1][5])
}

func TestCollectAPIGatewayEndpointsPositionCursor(t *testing.T) {
	calls := 0
	mock := &mockAPIGatewayClient{
		GetRestApisFunc: func(_ context.Context, params *apigateway.GetRestApisInput, _ ...func(*apigateway.Options)) (*apigateway.GetRestApisOutput, error) {
			calls++
			if params.Position == nil {
				return &apigateway.GetRestApisOutput{
					Items:    []apigwtypes.RestApi{{Id: awssdk.String("api-1"), Name: awssdk.String("first")}},
					Position: awssdk.String("cursor-1"),
				}, nil
			}
			assert.Equal(t, "cursor-1", awssdk.ToString(params.Position))
			return &apigateway.GetRestApisOutput{
				Items: []apigwtypes.RestApi{{Id: awssdk.String("api-2"), Name: awssdk.String("second")}},
			}, nil
		},
		GetStagesFunc: func(_ context.Context, _ *apigateway.GetStagesInput, _ ...func(*apigateway.Options)) (*apigateway.GetStagesOutput, error) {
			return &apigateway.GetStagesOutput{Item: []apigwtypes.Stage{{StageName: awssdk.String("v1")}}}, nil
		},
	}

	c := &Collector{accountID: "123456789012", apigatewayClientFor: func(string) APIGatewayAPI { return mock }}
	rows, err := c.collectAPIGatewayEndpoints(context.Background(), "us-east-2")

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	require.Len(t, rows, 2)
}

func TestCollectAPIGatewayEndpointsStageFailureSkipsAPI(t *testing.T) {
	mock := &mockAPIGatewayClient{
		GetRestApisFunc: func(_ context.Context, _ *apigateway.GetRestApisInput, _ ...func(*apigateway.Options)) (*apigateway.GetRestApisOutput, error) {
			return &apigateway.GetRestApisOutput{
				Items: []apigwtypes.RestApi{
					{Id: awssdk.String("broken"), Name: awssdk.String("broken-api")},
					{Id: awssdk.String("ok"), Name: awssdk.String("ok-api")},
				},
			}, nil
		},
		GetStagesFunc: func(_ context.Context, params *apigateway.GetStagesInput, _ ...func(*apigateway.Options)) (*apigateway.GetStagesOutput, error) {
			if awssdk.ToString(params.RestApiId) == "broken" {
				return nil, errors.New("throttled")
			}
			return &apigateway.GetStagesOutput{Item: []apigwtypes.Stage{{StageName: awssdk.String("prod")}}}, nil
		},
	}

	c := &Collector{accountID: "123456789012", apigatewayClientFor: func(string) APIGatewayAPI { return mock }}
	rows, err := c.collectAPIGatewayEndpoints(context.Background(), "eu-west-1")

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "ok-api", rows[0][2])
}
