package mcpserver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewServerDefaults(t *testing.T) {
	s := NewServer(Config{})
	assert.Equal(t, "http://localhost:8090", s.BaseURL())

	s = NewServer(Config{Host: "0.0.0.0", Port: 9000, Version: "1.2.3"})
	assert.Equal(t, "http://0.0.0.0:9000", s.BaseURL())
}

func TestStopWithoutStart(t *testing.T) {
	s := NewServer(Config{})
	err := s.Stop(context.Background())
	assert.Error(t, err)
}
