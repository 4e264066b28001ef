package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageToDataURI(t *testing.T) {
	uri, err := ImageToDataURI([]byte("fake"), "png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/png;base64,"))

	uri, err = ImageToDataURI([]byte("fake"), ".JPEG")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(uri, "data:image/jpeg;base64,"))

	_, err = ImageToDataURI([]byte("fake"), "gif")
	assert.Error(t, err)
}
