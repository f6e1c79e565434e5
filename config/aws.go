package config

import (
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
)

func awsOptions(s StoreConfig) []func(*awsconfig.LoadOptions) error {
	var opts []func(*awsconfig.LoadOptions) error
	if s.Region != "" {
		opts = append(opts, awsconfig.WithRegion(s.Region))
	}
	return opts
}
