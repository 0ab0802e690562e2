package relay_test

import (
	"testing"

	"github.com/arthur-debert/dirprefs/pkg/relay"
	"github.com/arthur-debert/dirprefs/pkg/rules"
	"github.com/arthur-debert/dirprefs/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hidden(show bool) types.ViewPrefs {
	return types.ViewPrefs{ShowHidden: &show}
}

func TestBusDeliversInSubscriptionOrder(t *testing.T) {
	bus := relay.NewBus()
	var order []string
	bus.Subscribe("t", func(relay.Message) { order = append(order, "first") })
	bus.Subscribe("t", func(relay.Message) { order = append(order, "second") })

	bus.Publish(relay.Message{Topic: "t"})
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestBusTopicIsolation(t *testing.T) {
	bus := relay.NewBus()
	called := false
	bus.Subscribe("a", func(relay.Message) { called = true })

	bus.Publish(relay.Message{Topic: "b"})
	assert.False(t, called)
}

func TestRelayPrefsRoundTrip(t *testing.T) {
	bus := relay.NewBus()
	sender := relay.New(bus)
	receiver := relay.New(bus)

	var got []*rules.Rule
	receiver.OnPrefs(func(user []*rules.Rule) { got = user })

	table := rules.Build(
		[]*rules.Rule{rules.NewRule("/home/user/project", hidden(true))},
		[]*rules.Rule{rules.NewPredefined(".*", hidden(false))},
	)
	sender.BroadcastPrefs(table)

	require.Len(t, got, 1)
	assert.Equal(t, rules.Literal("/home/user/project").String(), got[0].Location.String())
	require.NotNil(t, got[0].ShowHidden)
	assert.True(t, *got[0].ShowHidden)
}

func TestRelaySkipsOwnMessages(t *testing.T) {
	bus := relay.NewBus()
	r := relay.New(bus)

	called := false
	r.OnPrefs(func([]*rules.Rule) { called = true })
	r.BroadcastPrefs(rules.NewTable())

	assert.False(t, called)
}

func TestRelayDisabled(t *testing.T) {
	bus := relay.NewBus()
	sender := relay.New(bus)
	receiver := relay.New(bus)

	var got *bool
	receiver.OnDisabled(func(disabled bool) { got = &disabled })

	sender.BroadcastDisabled(true)
	require.NotNil(t, got)
	assert.True(t, *got)
}

func TestRelayLastWriterWins(t *testing.T) {
	bus := relay.NewBus()
	a := relay.New(bus)
	b := relay.New(bus)
	receiver := relay.New(bus)

	var got []*rules.Rule
	receiver.OnPrefs(func(user []*rules.Rule) { got = user })

	a.BroadcastPrefs(rules.NewTable(rules.NewRule("/from-a", hidden(true))))
	b.BroadcastPrefs(rules.NewTable(rules.NewRule("/from-b", hidden(false))))

	require.Len(t, got, 1)
	assert.Equal(t, rules.Literal("/from-b").String(), got[0].Location.String())
}

func TestRelayProjectLoadedCompat(t *testing.T) {
	bus := relay.NewBus()
	receiver := relay.New(bus)

	called := 0
	receiver.OnProjectLoaded(func() { called++ })

	bus.Publish(relay.Message{Topic: relay.TopicProjectLoaded, Sender: "project-plugin"})
	assert.Equal(t, 1, called)
}

func TestRelayDropsMalformedPayload(t *testing.T) {
	bus := relay.NewBus()
	receiver := relay.New(bus)

	called := false
	receiver.OnPrefs(func([]*rules.Rule) { called = true })

	bus.Publish(relay.Message{Topic: relay.TopicPrefs, Sender: "other", Payload: []byte("{broken")})
	assert.False(t, called)
}
