//go:build unit

package qr_test

import (
	"bytes"
	"strings"
	"testing"

	"zavvi-web/internal/pkg/qr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPNG(t *testing.T) {
	png, err := qr.PNG("https://admin.zavvi.co.in/redeem/C1?token=T1", 0)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))

	_, err = qr.PNG("", 100)
	assert.Error(t, err)
}

func TestDataURL(t *testing.T) {
	url, err := qr.DataURL("COUPON-ABCDEF12", 128)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "data:image/png;base64,"))
}
