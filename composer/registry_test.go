package composer

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry[string]()
	require.NotNil(t, r)
	assert.Empty(t, r.DefinedNames())
}

func TestDefine(t *testing.T) {
	r := NewRegistry[string]()

	r.Define("text", func(ctx context.Context, c *Context) (string, error) {
		return "text", nil
	})
	assert.True(t, r.IsDefined("text"))
	assert.False(t, r.IsDefined("missing"))

	t.Run("redefining overwrites and keeps position", func(t *testing.T) {
		r.Define("banner", func(ctx context.Context, c *Context) (string, error) {
			return "banner", nil
		})
		r.Define("text", func(ctx context.Context, c *Context) (string, error) {
			return "replacement", nil
		})
		assert.Equal(t, []string{"text", "banner"}, r.DefinedNames())

		out, err := r.Recall(context.Background(), "text", NewContext())
		require.NoError(t, err)
		assert.Equal(t, "replacement", out)
	})
}

func TestUndefine(t *testing.T) {
	r := NewRegistry[string]()
	r.Define("text", func(ctx context.Context, c *Context) (string, error) {
		return "text", nil
	})

	r.Undefine("text")
	assert.False(t, r.IsDefined("text"))
	assert.Empty(t, r.DefinedNames())

	// Absent names are a no-op.
	r.Undefine("never-existed")
	assert.Empty(t, r.DefinedNames())
}

func TestClear(t *testing.T) {
	r := NewRegistry[string]()
	for _, name := range []string{"a", "b", "c"} {
		r.Define(name, func(ctx context.Context, c *Context) (string, error) {
			return "", nil
		})
	}

	r.Clear()
	assert.Empty(t, r.DefinedNames())
	assert.False(t, r.IsDefined("a"))
}

func TestDefinedNames(t *testing.T) {
	r := NewRegistry[string]()
	r.Define("first", func(ctx context.Context, c *Context) (string, error) { return "", nil })
	r.Define("second", func(ctx context.Context, c *Context) (string, error) { return "", nil })
	r.Define("third", func(ctx context.Context, c *Context) (string, error) { return "", nil })

	names := r.DefinedNames()
	assert.Equal(t, []string{"first", "second", "third"}, names)

	// The returned slice is a defensive copy.
	names[0] = "mutated"
	assert.Equal(t, []string{"first", "second", "third"}, r.DefinedNames())
}

func TestRecall(t *testing.T) {
	t.Run("undefined name", func(t *testing.T) {
		r := NewRegistry[string]()
		_, err := r.Recall(context.Background(), "missing", NewContext())

		var undefErr *UndefinedBuilderError
		require.ErrorAs(t, err, &undefErr)
		assert.Equal(t, "missing", undefErr.Name)
	})

	t.Run("nil context without ambient", func(t *testing.T) {
		r := NewRegistry[string]()
		r.Define("text", func(ctx context.Context, c *Context) (string, error) {
			return "text", nil
		})

		_, err := r.Recall(context.Background(), "text", nil)
		assert.ErrorIs(t, err, ErrNoAmbientContext)
	})

	t.Run("nil context resolves ambient at call time", func(t *testing.T) {
		r := NewRegistry[string]()
		r.Define("greeting", func(ctx context.Context, c *Context) (string, error) {
			name, err := GetOr(c, "name", "World")
			if err != nil {
				return "", err
			}
			return "Hello, " + name + "!", nil
		})

		node := NewContext(WithValues(map[string]any{"name": "Flutter"}))

		// The ambient node is published after the builder is defined; Recall
		// must pick it up from the invocation's environment.
		ctx := WithAmbient(context.Background(), node)
		out, err := r.Recall(ctx, "greeting", nil)
		require.NoError(t, err)
		assert.Equal(t, "Hello, Flutter!", out)
	})

	t.Run("builder errors propagate", func(t *testing.T) {
		r := NewRegistry[string]()
		r.Define("broken", func(ctx context.Context, c *Context) (string, error) {
			return "", fmt.Errorf("builder exploded")
		})

		_, err := r.Recall(context.Background(), "broken", NewContext())
		assert.ErrorContains(t, err, "builder exploded")
	})
}

func TestRecall_GreetingScenario(t *testing.T) {
	r := NewRegistry[string]()
	r.Define("greeting", func(ctx context.Context, c *Context) (string, error) {
		name, err := GetOr(c, "name", "World")
		if err != nil {
			return "", err
		}
		return "Hello, " + name + "!", nil
	})

	withName := NewContext(WithValues(map[string]any{"name": "Flutter"}))
	out, err := r.Recall(context.Background(), "greeting", withName)
	require.NoError(t, err)
	assert.Equal(t, "Hello, Flutter!", out)

	out, err = r.Recall(context.Background(), "greeting", NewContext())
	require.NoError(t, err)
	assert.Equal(t, "Hello, World!", out)
}

func TestRecall_Nested(t *testing.T) {
	r := NewRegistry[string]()
	r.Define("text", func(ctx context.Context, c *Context) (string, error) {
		content, _, err := Get[string](c, "content")
		if err != nil {
			return "", err
		}
		return content, nil
	})
	r.Define("card", func(ctx context.Context, c *Context) (string, error) {
		body, err := GetOr(c, "body", "")
		if err != nil {
			return "", err
		}
		child := NewContext(WithParent(c), WithValues(map[string]any{"content": body}))
		inner, err := r.Recall(ctx, "text", child)
		if err != nil {
			return "", err
		}
		return "[" + inner + "]", nil
	})

	c := NewContext(WithValues(map[string]any{"body": "hello"}))
	out, err := r.Recall(context.Background(), "card", c)
	require.NoError(t, err)

	// The nested output must match text's own contract in isolation.
	direct, err := r.Recall(context.Background(), "text",
		NewContext(WithValues(map[string]any{"content": "hello"})))
	require.NoError(t, err)
	assert.Equal(t, "["+direct+"]", out)
}
