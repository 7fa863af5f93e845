package cmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCommand struct {
	name    string
	aliases []string
	ran     int
}

func (s *stubCommand) Name() string        { return s.name }
func (s *stubCommand) Aliases() []string   { return s.aliases }
func (s *stubCommand) Description() string { return "stub" }
func (s *stubCommand) Category() string    { return "test" }
func (s *stubCommand) Run(ctx context.Context, inv *Invocation) error {
	s.ran++
	return nil
}

func TestParse(t *testing.T) {
	inv, ok := Parse("!", "!Album  Night Lights")
	require.True(t, ok)
	assert.Equal(t, "album", inv.Name)
	assert.Equal(t, []string{"Night", "Lights"}, inv.Args)
	assert.Equal(t, "Night Lights", inv.ArgString())

	_, ok = Parse("!", "hello")
	assert.False(t, ok)
	_, ok = Parse("!", "!   ")
	assert.False(t, ok)
}

func TestRegistryAliases(t *testing.T) {
	r := NewRegistry()
	next := &stubCommand{name: "next", aliases: []string{"skip"}}
	r.Register(&stubCommand{name: "stop"})
	r.Register(next)

	assert.Same(t, next, r.Get("skip"))
	assert.Same(t, next, r.Get("NEXT"))
	assert.Nil(t, r.Get("missing"))

	all := r.GetAll()
	require.Len(t, all, 2)
	assert.Equal(t, "next", all[0].Name())
}

func TestApplyOrderAndRoot(t *testing.T) {
	var order []string
	mw := func(tag string) Middleware {
		return func(c Command) Command {
			return Wrap(c, func(ctx context.Context, inv *Invocation) error {
				order = append(order, tag)
				return c.Run(ctx, inv)
			})
		}
	}

	inner := &stubCommand{name: "x"}
	c := Apply(inner, mw("outer"), mw("inner"))

	require.NoError(t, c.Run(context.Background(), &Invocation{}))
	assert.Equal(t, []string{"outer", "inner"}, order)
	assert.Equal(t, 1, inner.ran)
	assert.Same(t, inner, Root(c))
	assert.Equal(t, "x", c.Name())
}
