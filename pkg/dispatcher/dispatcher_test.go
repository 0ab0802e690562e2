package dispatcher_test

import (
	"fmt"
	"testing"

	"github.com/arthur-debert/dirprefs/pkg/dispatcher"
	"github.com/arthur-debert/dirprefs/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatch(t *testing.T) {
	t.Run("routes to registered handler", func(t *testing.T) {
		d := dispatcher.New()
		var got dispatcher.Event
		d.Register(dispatcher.NavigationChanged, func(ev dispatcher.Event) error {
			got = ev
			return nil
		})

		err := d.Dispatch(dispatcher.Event{
			Kind: dispatcher.NavigationChanged,
			View: 2,
			Path: "/home/user",
		})
		require.NoError(t, err)
		assert.Equal(t, "/home/user", got.Path)
		assert.EqualValues(t, 2, got.View)
	})

	t.Run("unknown kind is EVENT_UNKNOWN", func(t *testing.T) {
		d := dispatcher.New()
		err := d.Dispatch(dispatcher.Event{Kind: "resize"})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrEventUnknown))
	})

	t.Run("handlers run in registration order", func(t *testing.T) {
		d := dispatcher.New()
		var order []int
		d.Register(dispatcher.FolderLoaded, func(dispatcher.Event) error {
			order = append(order, 1)
			return nil
		})
		d.Register(dispatcher.FolderLoaded, func(dispatcher.Event) error {
			order = append(order, 2)
			return nil
		})

		require.NoError(t, d.Dispatch(dispatcher.Event{Kind: dispatcher.FolderLoaded}))
		assert.Equal(t, []int{1, 2}, order)
	})

	t.Run("first error stops the chain", func(t *testing.T) {
		d := dispatcher.New()
		secondRan := false
		d.Register(dispatcher.ActionInvoked, func(dispatcher.Event) error {
			return fmt.Errorf("boom")
		})
		d.Register(dispatcher.ActionInvoked, func(dispatcher.Event) error {
			secondRan = true
			return nil
		})

		err := d.Dispatch(dispatcher.Event{Kind: dispatcher.ActionInvoked, Action: dispatcher.ActionSave})
		assert.Error(t, err)
		assert.False(t, secondRan)
	})
}

func TestRun(t *testing.T) {
	d := dispatcher.New()
	var paths []string
	d.Register(dispatcher.NavigationChanged, func(ev dispatcher.Event) error {
		paths = append(paths, ev.Path)
		return nil
	})

	events := make(chan dispatcher.Event, 3)
	events <- dispatcher.Event{Kind: dispatcher.NavigationChanged, Path: "/a"}
	events <- dispatcher.Event{Kind: "unknown"} // logged, loop keeps going
	events <- dispatcher.Event{Kind: dispatcher.NavigationChanged, Path: "/b"}
	close(events)

	d.Run(events)
	assert.Equal(t, []string{"/a", "/b"}, paths)
}
