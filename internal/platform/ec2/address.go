package ec2

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/imamik/cloudlaunch/internal/platform/provider"
)

// vpcDomain restricts address queries to VPC Elastic IPs.
var vpcDomain = types.Filter{
	Name:   aws.String("domain"),
	Values: []string{string(types.DomainTypeVpc)},
}

// ListFloatingIPs returns the account's Elastic IPs.
func (c *Client) ListFloatingIPs(ctx context.Context) ([]provider.FloatingIP, error) {
	out, err := c.api.DescribeAddresses(ctx, &awsec2.DescribeAddressesInput{
		Filters: []types.Filter{vpcDomain},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to describe addresses: %w", err)
	}

	pool := make([]provider.FloatingIP, 0, len(out.Addresses))
	for _, address := range out.Addresses {
		pool = append(pool, provider.FloatingIP{
			Address:    aws.ToString(address.PublicIp),
			InUse:      aws.ToString(address.AssociationId) != "",
			InstanceID: aws.ToString(address.InstanceId),
		})
	}
	return pool, nil
}

// AttachFloatingIP associates the Elastic IP with the instance.
// Reassociation is disabled so a concurrent claim fails on the EC2 side.
func (c *Client) AttachFloatingIP(ctx context.Context, id, address string) error {
	out, err := c.api.DescribeAddresses(ctx, &awsec2.DescribeAddressesInput{
		Filters: []types.Filter{
			vpcDomain,
			{Name: aws.String("public-ip"), Values: []string{address}},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to describe address %s: %w", address, err)
	}
	if len(out.Addresses) == 0 {
		return fmt.Errorf("elastic ip %s: %w", address, provider.ErrAddressNotFound)
	}

	eip := out.Addresses[0]
	if holder := aws.ToString(eip.InstanceId); holder != "" {
		if holder == id {
			return nil
		}
		return fmt.Errorf("elastic ip %s is associated with %s: %w", address, holder, provider.ErrAddressClaimed)
	}

	_, err = c.api.AssociateAddress(ctx, &awsec2.AssociateAddressInput{
		AllocationId:       eip.AllocationId,
		InstanceId:         aws.String(id),
		AllowReassociation: aws.Bool(false),
	})
	if err != nil {
		switch {
		case isAPIErrorCode(err, codeAlreadyAssociated):
			return fmt.Errorf("failed to associate %s: %w: %w", address, provider.ErrAddressClaimed, err)
		case isAPIErrorCode(err, codeAddressNotFound):
			return fmt.Errorf("failed to associate %s: %w: %w", address, provider.ErrAddressNotFound, err)
		case isInstanceNotFound(err):
			return fmt.Errorf("failed to associate %s: %w: %w", address, provider.ErrInstanceNotFound, err)
		}
		return fmt.Errorf("failed to associate %s: %w", address, err)
	}
	return nil
}
