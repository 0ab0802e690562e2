package relay

import (
	"encoding/json"
	"fmt"
	"sync/atomic"

	"github.com/arthur-debert/dirprefs/pkg/logging"
	"github.com/arthur-debert/dirprefs/pkg/rules"
)

// Bus topics. TopicProjectLoaded is a compatibility topic published by
// a cooperating project-management plugin after it restores tabs; on
// receipt the active view gets the current rules re-applied.
const (
	TopicPrefs         = "dirprefs-sync"
	TopicDisabled      = "dirprefs-disabled"
	TopicProjectLoaded = "project-loaded"
)

var instanceCounter atomic.Int64

// Relay is one instance's typed endpoint on the bus. Outgoing
// mutations are broadcast to siblings; incoming ones replace local
// state wholesale.
type Relay struct {
	bus    *Bus
	sender string
}

// New creates a relay with a process-unique sender ID on the given bus.
func New(bus *Bus) *Relay {
	return &Relay{
		bus:    bus,
		sender: fmt.Sprintf("dirprefs-%d", instanceCounter.Add(1)),
	}
}

// Sender returns this relay's sender ID.
func (r *Relay) Sender() string { return r.sender }

// BroadcastPrefs publishes the table's user rules to sibling instances.
func (r *Relay) BroadcastPrefs(table *rules.Table) {
	user := table.UserRules()
	if user == nil {
		user = []*rules.Rule{}
	}
	payload, err := json.Marshal(user)
	if err != nil {
		logger := logging.GetLogger("relay")
		logger.Warn().Err(err).Msg("Failed to encode preference broadcast")
		return
	}
	r.bus.Publish(Message{Topic: TopicPrefs, Sender: r.sender, Payload: payload})
}

// BroadcastDisabled publishes the disabled flag to sibling instances.
func (r *Relay) BroadcastDisabled(disabled bool) {
	payload, _ := json.Marshal(disabled)
	r.bus.Publish(Message{Topic: TopicDisabled, Sender: r.sender, Payload: payload})
}

// OnPrefs registers a handler for incoming preference tables from
// other instances. Messages from this relay's own sender are skipped.
func (r *Relay) OnPrefs(fn func(user []*rules.Rule)) {
	r.bus.Subscribe(TopicPrefs, func(msg Message) {
		if msg.Sender == r.sender {
			return
		}
		var user []*rules.Rule
		if err := json.Unmarshal(msg.Payload, &user); err != nil {
			logger := logging.GetLogger("relay")
			logger.Warn().Err(err).Msg("Dropping malformed preference broadcast")
			return
		}
		fn(user)
	})
}

// OnDisabled registers a handler for incoming disabled-flag changes.
func (r *Relay) OnDisabled(fn func(disabled bool)) {
	r.bus.Subscribe(TopicDisabled, func(msg Message) {
		if msg.Sender == r.sender {
			return
		}
		var disabled bool
		if err := json.Unmarshal(msg.Payload, &disabled); err != nil {
			logger := logging.GetLogger("relay")
			logger.Warn().Err(err).Msg("Dropping malformed disabled broadcast")
			return
		}
		fn(disabled)
	})
}

// OnProjectLoaded registers a handler for the project-plugin
// compatibility topic. Payload contents are ignored.
func (r *Relay) OnProjectLoaded(fn func()) {
	r.bus.Subscribe(TopicProjectLoaded, func(msg Message) {
		if msg.Sender == r.sender {
			return
		}
		fn()
	})
}
