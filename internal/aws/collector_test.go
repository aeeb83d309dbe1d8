package aws

import (
	"context"
	"errors"
	"testing"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSTSClient struct {
	GetCallerIdentityFunc func(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

func (m *mockSTSClient) GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
	return m.GetCallerIdentityFunc(ctx, params, optFns...)
}

func TestResolveAccount(t *testing.T) {
	mock := &mockSTSClient{
		GetCallerIdentityFunc: func(_ context.Context, _ *sts.GetCallerIdentityInput, _ ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
			return &sts.GetCallerIdentityOutput{Account: awssdk.String("123456789012")}, nil
		},
	}

	c := &Collector{stsClient: mock}
	account, err := c.ResolveAccount(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "123456789012", account)
	assert.Equal(t, "123456789012", c.accountID, "account is stamped on the collector")
}

func TestResolveAccountFailure(t *testing.T) {
	mock := &mockSTSClient{
		GetCallerIdentityFunc: func(_ context.Context, _ *sts.GetCallerIdentityInput, _ ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error) {
			return nil, errors.New("no credential providers")
		},
	}

	c := &Collector{stsClient: mock}
	_, err := c.ResolveAccount(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "get caller identity")
}
