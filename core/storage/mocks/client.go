package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/briantroy/rigor/core/storage"
)

// Client is a mock implementation of storage.Client
type Client struct {
	mock.Mock
}

func (m *Client) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	if body, ok := args.Get(0).(io.ReadCloser); ok {
		return body, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) GetFile(ctx context.Context, key, localPath string) error {
	args := m.Called(ctx, key, localPath)
	return args.Error(0)
}

func (m *Client) Put(ctx context.Context, key string, data storage.ObjectData) error {
	args := m.Called(ctx, key, data)
	return args.Error(0)
}

func (m *Client) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *Client) List(ctx context.Context, prefix string) <-chan storage.Object {
	args := m.Called(ctx, prefix)
	if ch, ok := args.Get(0).(<-chan storage.Object); ok {
		return ch
	}
	ch := make(chan storage.Object)
	close(ch)
	return ch
}
