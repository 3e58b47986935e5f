package sim

type EventType int

const (
	EventLightChanged EventType = iota
	EventVehicleSpawned
	EventVehicleCulled
)

type Event struct {
	Type  EventType
	Axis  Axis       // EventLightChanged
	Phase LightPhase // EventLightChanged
	Dir   Direction  // EventVehicleSpawned, EventVehicleCulled
}

type EventHandler func(Event)

type EventBus struct {
	handlers map[EventType][]EventHandler
}

func NewEventBus() *EventBus {
	return &EventBus{
		handlers: make(map[EventType][]EventHandler),
	}
}

func (eb *EventBus) Subscribe(t EventType, fn EventHandler) {
	eb.handlers[t] = append(eb.handlers[t], fn)
}

func (eb *EventBus) Emit(e Event) {
	for _, fn := range eb.handlers[e.Type] {
		fn(e)
	}
}
