package ec2

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsec2 "github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/ec2/types"

	"github.com/imamik/cloudlaunch/internal/platform/provider"
)

// CreateInstance launches a single EC2 instance without waiting for it to run.
func (c *Client) CreateInstance(ctx context.Context, opts provider.CreateInstanceOpts) (string, error) {
	input := &awsec2.RunInstancesInput{
		ImageId:          aws.String(opts.Image),
		InstanceType:     types.InstanceType(opts.Size),
		KeyName:          optional(opts.KeyPair),
		SecurityGroupIds: opts.SecurityGroups,
		SubnetId:         optional(opts.Network),
		MinCount:         aws.Int32(1),
		MaxCount:         aws.Int32(1),
		TagSpecifications: []types.TagSpecification{
			{
				ResourceType: types.ResourceTypeInstance,
				Tags: []types.Tag{
					{Key: aws.String("Name"), Value: aws.String(opts.Name)},
					{Key: aws.String("managed-by"), Value: aws.String("cloudlaunch")},
				},
			},
		},
	}
	if opts.Location != "" {
		input.Placement = &types.Placement{AvailabilityZone: aws.String(opts.Location)}
	}

	out, err := c.api.RunInstances(ctx, input)
	if err != nil {
		return "", fmt.Errorf("failed to run instance: %w", err)
	}
	if len(out.Instances) == 0 || out.Instances[0].InstanceId == nil {
		return "", fmt.Errorf("failed to run instance: empty response")
	}
	return aws.ToString(out.Instances[0].InstanceId), nil
}

// optional leaves a field unset when the identifier is empty, so EC2 applies
// its default instead of rejecting "".
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return aws.String(s)
}

// GetInstance returns the EC2 instance with the given ID.
func (c *Client) GetInstance(ctx context.Context, id string) (*provider.Instance, error) {
	out, err := c.api.DescribeInstances(ctx, &awsec2.DescribeInstancesInput{
		InstanceIds: []string{id},
	})
	if err != nil {
		if isInstanceNotFound(err) {
			return nil, fmt.Errorf("instance %s: %w", id, provider.ErrInstanceNotFound)
		}
		return nil, fmt.Errorf("failed to describe instance %s: %w", id, err)
	}

	for _, reservation := range out.Reservations {
		for _, instance := range reservation.Instances {
			if aws.ToString(instance.InstanceId) == id {
				return instanceFromEC2(instance), nil
			}
		}
	}
	return nil, fmt.Errorf("instance %s: %w", id, provider.ErrInstanceNotFound)
}

// ListInstances returns all instances visible to the account in the region.
func (c *Client) ListInstances(ctx context.Context) ([]*provider.Instance, error) {
	var instances []*provider.Instance

	paginator := awsec2.NewDescribeInstancesPaginator(c.api, &awsec2.DescribeInstancesInput{})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list instances: %w", err)
		}
		for _, reservation := range page.Reservations {
			for _, instance := range reservation.Instances {
				instances = append(instances, instanceFromEC2(instance))
			}
		}
	}
	return instances, nil
}

// instanceFromEC2 converts an EC2 instance to a provider instance.
func instanceFromEC2(instance types.Instance) *provider.Instance {
	inst := &provider.Instance{
		ID:      aws.ToString(instance.InstanceId),
		Name:    tagValue(instance.Tags, "Name"),
		State:   provider.StateUnknown,
		Created: aws.ToTime(instance.LaunchTime),
	}
	if instance.State != nil {
		inst.State = instanceState(instance.State.Name)
	}
	if ip := aws.ToString(instance.PublicIpAddress); ip != "" {
		inst.PublicIPs = append(inst.PublicIPs, ip)
	}
	if ip := aws.ToString(instance.PrivateIpAddress); ip != "" {
		inst.PrivateIPs = append(inst.PrivateIPs, ip)
	}
	return inst
}

// instanceState maps an EC2 instance state to a provider state.
func instanceState(name types.InstanceStateName) provider.InstanceState {
	switch name {
	case types.InstanceStateNamePending:
		return provider.StatePending
	case types.InstanceStateNameRunning:
		return provider.StateRunning
	case types.InstanceStateNameStopping, types.InstanceStateNameStopped:
		return provider.StateStopped
	case types.InstanceStateNameShuttingDown, types.InstanceStateNameTerminated:
		return provider.StateTerminated
	default:
		return provider.StateUnknown
	}
}

// tagValue returns the value of the tag with the given key.
func tagValue(tags []types.Tag, key string) string {
	for _, tag := range tags {
		if aws.ToString(tag.Key) == key {
			return aws.ToString(tag.Value)
		}
	}
	return ""
}
