package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyz/wirepoint/pkg/wirepoint"
)

func TestBuildCapabilities_Empty(t *testing.T) {
	caps, err := buildCapabilities("")
	require.NoError(t, err)

	for _, convention := range wirepoint.AllConventions() {
		assert.True(t, caps.IsAvailable(convention), convention.String())
	}
}

func TestBuildCapabilities_Without(t *testing.T) {
	caps, err := buildCapabilities("ejb, persistence-unit")
	require.NoError(t, err)

	assert.False(t, caps.IsAvailable(wirepoint.EnterpriseComponent))
	assert.False(t, caps.IsAvailable(wirepoint.PersistenceUnit))
	assert.True(t, caps.IsAvailable(wirepoint.StandardInjection))
	assert.True(t, caps.IsAvailable(wirepoint.PersistenceContext))
}

func TestBuildCapabilities_UnknownConvention(t *testing.T) {
	_, err := buildCapabilities("inject,jms")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jms")
}
