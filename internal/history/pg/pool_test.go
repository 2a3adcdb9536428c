package pg

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewConnectionPool_InvalidConfig(t *testing.T) {
	_, err := NewConnectionPool(context.Background(), PoolConfig{ConnStr: "host=localhost pool_max_conns=many"})
	assert.Error(t, err)
}

func TestConnectionPool_HealthyWithoutConnection(t *testing.T) {
	var p *ConnectionPool
	assert.False(t, p.Healthy(context.Background()))
	assert.False(t, (&ConnectionPool{}).Healthy(context.Background()))
}
