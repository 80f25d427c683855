package tenant

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSellerIDFromHeader(t *testing.T) {
	// No slug means the store is never queried
	sellerID, err := ResolveSellerID(context.Background(), nil, "", "seller-1")
	require.NoError(t, err)
	assert.Equal(t, "seller-1", sellerID)

	sellerID, err = ResolveSellerID(context.Background(), nil, "", "  seller-1  ")
	require.NoError(t, err)
	assert.Equal(t, "seller-1", sellerID)
}

func TestResolveSellerIDMissingTenant(t *testing.T) {
	_, err := ResolveSellerID(context.Background(), nil, "", "")
	assert.ErrorIs(t, err, ErrMissingTenant)

	_, err = ResolveSellerID(context.Background(), nil, "   ", "  ")
	assert.ErrorIs(t, err, ErrMissingTenant)
}
