package defaults

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthlab/hearth/pkg/tools/toolbox"
)

func TestNew_ContainsStandardTools(t *testing.T) {
	tb := New()

	names := make([]string, 0, 3)
	for _, tool := range tb.Tools() {
		names = append(names, tool.Name)
	}
	assert.Equal(t, []string{"get_weather", "search", "calculate"}, names)
}

func TestNew_ExtraBoxesMerged(t *testing.T) {
	extra := toolbox.New()
	extra.Register(toolbox.Tool{
		Name:        "get_time",
		Description: "Get the current time",
		Handler: func(ctx context.Context, input string) (string, error) {
			return "noon", nil
		},
	})

	tb := New(extra)

	tool, ok := tb.Get("get_time")
	require.True(t, ok)

	out, err := tool.Handler(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "noon", out)
}

func TestNew_ExtraOverridesStandard(t *testing.T) {
	extra := toolbox.New()
	extra.Register(toolbox.Tool{
		Name:        "search",
		Description: "A better search",
		Handler: func(ctx context.Context, input string) (string, error) {
			return "real results", nil
		},
	})

	tb := New(extra)

	tool, ok := tb.Get("search")
	require.True(t, ok)
	assert.Equal(t, "A better search", tool.Description)
}
