// Package ec2 implements provider.Provider on top of Amazon EC2.
//
// Instances are EC2 instances, the network is a subnet ID, security groups are
// security group IDs and the floating IP pool is the account's VPC Elastic
// IPs. Attachment uses AssociateAddress with reassociation disabled, so EC2
// itself refuses an address another instance already holds.
package ec2

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"

	"github.com/imamik/cloudlaunch/internal/platform/provider"
)

// BackendName identifies this backend in configuration and metrics.
const BackendName = "ec2"

// API is the subset of the EC2 client used by Client.
type API interface {
	awsec2.DescribeInstancesAPIClient
	RunInstances(ctx context.Context, params *awsec2.RunInstancesInput, optFns ...func(*awsec2.Options)) (*awsec2.RunInstancesOutput, error)
	DescribeAddresses(ctx context.Context, params *awsec2.DescribeAddressesInput, optFns ...func(*awsec2.Options)) (*awsec2.DescribeAddressesOutput, error)
	AssociateAddress(ctx context.Context, params *awsec2.AssociateAddressInput, optFns ...func(*awsec2.Options)) (*awsec2.AssociateAddressOutput, error)
}

// Client implements provider.Provider using the EC2 API.
type Client struct {
	api API
}

var _ provider.Provider = (*Client)(nil)

// Options configures the EC2 client.
type Options struct {
	Region string
	// AccessKeyID and SecretAccessKey are optional; the default credential
	// chain is used when either is empty.
	AccessKeyID     string
	SecretAccessKey string
	// Endpoint overrides the EC2 endpoint (e.g. an OpenStack EC2 gateway).
	Endpoint string
}

// NewClient creates a new EC2 client.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(opts.Region),
	}
	if opts.AccessKeyID != "" && opts.SecretAccessKey != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	api := awsec2.NewFromConfig(cfg, func(o *awsec2.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
	})
	return NewClientWithAPI(api), nil
}

// NewClientWithAPI creates a Client around an existing EC2 API implementation.
func NewClientWithAPI(api API) *Client {
	return &Client{api: api}
}
