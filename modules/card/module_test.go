package card

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/composergo/composer"
	"github.com/vk/composergo/internal/widget"
	"github.com/vk/composergo/modules/text"
)

func newRegistry() *widget.Registry {
	r := widget.NewRegistry()
	(&text.Module{}).Register(r)
	(&Module{}).Register(r)
	return r
}

func TestBuild(t *testing.T) {
	t.Run("composes text through a derived child context", func(t *testing.T) {
		r := newRegistry()
		c := composer.NewContext(composer.WithValues(map[string]any{
			"title": "Greetings",
			"body":  "hello from the card",
		}))

		w, err := r.Recall(context.Background(), "card", c)
		require.NoError(t, err)

		out := w.Render()
		assert.Contains(t, out, "Greetings")
		assert.Contains(t, out, "hello from the card")

		// The embedded body must match text's own contract in isolation.
		direct, err := r.Recall(context.Background(), "text",
			composer.NewContext(composer.WithValues(map[string]any{"content": "hello from the card"})))
		require.NoError(t, err)
		assert.Contains(t, out, direct.Render())
	})

	t.Run("title is optional", func(t *testing.T) {
		r := newRegistry()
		c := composer.NewContext(composer.WithValues(map[string]any{"body": "just a body"}))

		w, err := r.Recall(context.Background(), "card", c)
		require.NoError(t, err)
		assert.Contains(t, w.Render(), "just a body")
	})

	t.Run("missing body", func(t *testing.T) {
		r := newRegistry()

		_, err := r.Recall(context.Background(), "card", composer.NewContext())
		assert.ErrorContains(t, err, "missing required context key")
	})

	t.Run("missing text builder propagates", func(t *testing.T) {
		r := newRegistry()
		r.Undefine("text")
		c := composer.NewContext(composer.WithValues(map[string]any{"body": "b"}))

		_, err := r.Recall(context.Background(), "card", c)
		var undefErr *composer.UndefinedBuilderError
		require.ErrorAs(t, err, &undefErr)
		assert.Equal(t, "text", undefErr.Name)
	})
}
