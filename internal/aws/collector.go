// Package aws implements the AWS resource collector for Ulko.
package aws

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/amplify"
	"github.com/aws/aws-sdk-go-v2/service/apigateway"
	"github.com/aws/aws-sdk-go-v2/service/appsync"
	"github.com/aws/aws-sdk-go-v2/service/cloudfront"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/elasticloadbalancingv2"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
	"github.com/aws/aws-sdk-go-v2/service/rds"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// Config holds collector settings.
type Config struct {
	// Region used for credential resolution and the region-discovery call.
	Region string

	// Regions, when set, overrides enabled-region discovery.
	Regions []string
}

// Collector enumerates the nine reported resource kinds. Route 53 and
// CloudFront are global; every other kind opens a fresh regional client per
// region through the factory funcs, which tests replace with mocks.
type Collector struct {
	accountID string
	regions   []string

	stsClient        STSAPI
	route53Client    Route53API
	cloudfrontClient CloudFrontAPI
	regionsClient    EC2API

	ec2ClientFor        func(region string) EC2API
	apigatewayClientFor func(region string) APIGatewayAPI
	lambdaClientFor     func(region string) LambdaAPI
	appsyncClientFor    func(region string) AppSyncAPI
	amplifyClientFor    func(region string) AmplifyAPI
	elbClientFor        func(region string) ELBAPI
	rdsClientFor        func(region string) RDSAPI
}

// New creates a collector from the ambient credential chain.
func New(ctx context.Context, cfg Config) (*Collector, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &Collector{
		regions:          cfg.Regions,
		stsClient:        sts.NewFromConfig(awsCfg),
		route53Client:    route53.NewFromConfig(awsCfg),
		cloudfrontClient: cloudfront.NewFromConfig(awsCfg),
		regionsClient:    ec2.NewFromConfig(awsCfg),
		ec2ClientFor: func(region string) EC2API {
			return ec2.NewFromConfig(awsCfg, func(o *ec2.Options) { o.Region = region })
		},
		apigatewayClientFor: func(region string) APIGatewayAPI {
			return apigateway.NewFromConfig(awsCfg, func(o *apigateway.Options) { o.Region = region })
		},
		lambdaClientFor: func(region string) LambdaAPI {
			return lambda.NewFromConfig(awsCfg, func(o *lambda.Options) { o.Region = region })
		},
		appsyncClientFor: func(region string) AppSyncAPI {
			return appsync.NewFromConfig(awsCfg, func(o *appsync.Options) { o.Region = region })
		},
		amplifyClientFor: func(region string) AmplifyAPI {
			return amplify.NewFromConfig(awsCfg, func(o *amplify.Options) { o.Region = region })
		},
		elbClientFor: func(region string) ELBAPI {
			return elasticloadbalancingv2.NewFromConfig(awsCfg, func(o *elasticloadbalancingv2.Options) { o.Region = region })
		},
		rdsClientFor: func(region string) RDSAPI {
			return rds.NewFromConfig(awsCfg, func(o *rds.Options) { o.Region = region })
		},
	}, nil
}

// ResolveAccount resolves the caller's account ID and stamps it on every row
// collected afterwards.
func (c *Collector) ResolveAccount(ctx context.Context) (string, error) {
	out, err := c.stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("get caller identity: %w", err)
	}
	c.accountID = awssdk.ToString(out.Account)
	return c.accountID, nil
}
