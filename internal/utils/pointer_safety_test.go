package utils_test

import (
	"testing"

	"github.com/jrsteele09/go-storefront-client/internal/utils"
	"github.com/stretchr/testify/require"
)

func TestValue(t *testing.T) {
	require.Equal(t, "", utils.Value[string](nil))
	require.Equal(t, "x", utils.Value(utils.Ptr("x")))
}

func TestValueOr(t *testing.T) {
	require.Equal(t, "client", utils.ValueOr(nil, "client"))
	require.Equal(t, "admin", utils.ValueOr(utils.Ptr("admin"), "client"))
}
