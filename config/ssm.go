package config

import (
	"context"
	"errors"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// ParameterFetcher looks up a single decrypted parameter by name.
type ParameterFetcher interface {
	GetParameter(ctx context.Context, name string) (string, error)
}

// SSMParameterStore reads parameters from AWS Systems Manager Parameter Store.
type SSMParameterStore struct {
	client *ssm.Client
}

// NewSSMParameterStore builds a client from the default AWS credential chain.
func NewSSMParameterStore(ctx context.Context) (*SSMParameterStore, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &SSMParameterStore{client: ssm.NewFromConfig(cfg)}, nil
}

func (s *SSMParameterStore) GetParameter(ctx context.Context, name string) (string, error) {
	decrypt := true
	input := &ssm.GetParameterInput{
		Name:           &name,
		WithDecryption: &decrypt,
	}

	result, err := s.client.GetParameter(ctx, input)
	if err != nil {
		return "", fmt.Errorf("get parameter %s: %w", name, err)
	}

	if result.Parameter == nil || result.Parameter.Value == nil {
		return "", fmt.Errorf("parameter %s has no value", name)
	}

	return *result.Parameter.Value, nil
}

// UsesSSM reports whether credentials must be resolved from Parameter Store.
func (c *Config) UsesSSM() bool {
	return c.Log.Environment == "prod" &&
		(c.Coinlist.SSM.AccessKeyParam != "" || c.Coinlist.SSM.AccessSecretParam != "")
}

// ResolveCredentials replaces the configured credentials with Parameter Store
// values in prod. It is a no-op in other environments.
func (c *Config) ResolveCredentials(ctx context.Context, store ParameterFetcher) error {
	if !c.UsesSSM() {
		return nil
	}
	if store == nil {
		return errors.New("resolve credentials: no parameter store")
	}

	if name := c.Coinlist.SSM.AccessKeyParam; name != "" {
		v, err := store.GetParameter(ctx, name)
		if err != nil {
			return fmt.Errorf("resolve access key: %w", err)
		}
		c.Coinlist.AccessKey = v
	}
	if name := c.Coinlist.SSM.AccessSecretParam; name != "" {
		v, err := store.GetParameter(ctx, name)
		if err != nil {
			return fmt.Errorf("resolve access secret: %w", err)
		}
		c.Coinlist.AccessSecret = v
	}
	return nil
}
