package nats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClient(t *testing.T) {
	t.Run("invalid address", func(t *testing.T) {
		client, err := NewClient("invalid://address", "onestop-test")
		assert.Error(t, err)
		assert.Nil(t, client)
		assert.Contains(t, err.Error(), "failed to connect to NATS server")
	})

	t.Run("nothing listening", func(t *testing.T) {
		client, err := NewClient("nats://127.0.0.1:1", "onestop-test")
		assert.Error(t, err)
		assert.Nil(t, client)
	})
}

func TestClient_IsConnectedWithoutConn(t *testing.T) {
	client := &Client{}
	assert.False(t, client.IsConnected())
	client.Close()
}
