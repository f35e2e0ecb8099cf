package usecase

import (
	"testing"

	"blip/internal/domain/entity"
	domainerrors "blip/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBroadcastFilter(t *testing.T) {
	filter, err := ParseBroadcastFilter("all")
	require.NoError(t, err)
	assert.Nil(t, filter.Status)
	assert.False(t, filter.RegisteredOnly || filter.LinkedOnly || filter.FlaggedOnly)

	filter, err = ParseBroadcastFilter("Approved")
	require.NoError(t, err)
	require.NotNil(t, filter.Status)
	assert.Equal(t, entity.StatusApproved, *filter.Status)

	filter, err = ParseBroadcastFilter("linked")
	require.NoError(t, err)
	assert.True(t, filter.LinkedOnly)

	_, err = ParseBroadcastFilter("everyone")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}
