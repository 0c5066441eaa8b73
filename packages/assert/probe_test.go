package assert

import (
	"errors"
	"net"
	"testing"
	"time"

	tassert "github.com/stretchr/testify/assert"
)

type shade string

type level int

func TestRender_BasicKinds(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "hello world", "hello world"},
		{"int", 55, "55"},
		{"uint", uint(7), "7"},
		{"float", 1.25, "1.25"},
		{"bool", true, "true"},
		{"complex", complex(1, 2), "(1+2i)"},
		{"named string type", shade("dark"), "dark"},
		{"named int type", level(3), "3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Render(tt.value)
			tassert.True(t, ok)
			tassert.Equal(t, tt.want, got)
		})
	}
}

func TestRender_Interfaces(t *testing.T) {
	got, ok := Render(2 * time.Second)
	tassert.True(t, ok)
	tassert.Equal(t, "2s", got)

	got, ok = Render(errors.New("boom"))
	tassert.True(t, ok)
	tassert.Equal(t, "boom", got)

	got, ok = Render(net.ParseIP("10.0.0.1")) // TextMarshaler
	tassert.True(t, ok)
	tassert.Equal(t, "10.0.0.1", got)
}

func TestRender_Unrenderable(t *testing.T) {
	for name, v := range map[string]any{
		"nil":     nil,
		"slice":   []int{1, 2},
		"map":     map[string]int{},
		"struct":  struct{ A int }{1},
		"pointer": &struct{}{},
		"channel": make(chan int),
		"func":    func() {},
	} {
		t.Run(name, func(t *testing.T) {
			_, ok := Render(v)
			tassert.False(t, ok)
		})
	}
}
