package mocks

import (
	"context"

	"gamestats/core/provider"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of provider.Client
type Client struct {
	mock.Mock
}

func (m *Client) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *Client) Profile(ctx context.Context, platform, username string) (*provider.Profile, error) {
	args := m.Called(ctx, platform, username)
	if p, ok := args.Get(0).(*provider.Profile); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
