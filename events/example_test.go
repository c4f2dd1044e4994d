package events_test

import (
	"fmt"

	"github.com/hasbyte1/go-compat-utils/events"
)

func ExampleEmitter() {
	var e events.Emitter
	log := func(ev events.Event) {
		fmt.Println(ev.Type, ev.Data)
	}

	e.On("pan swipe", log)
	e.Emit("pan", "left")
	e.Emit("swipe", "up")

	e.Off("pan", log)
	e.Emit("pan", "right") // no longer handled
	// Output:
	// pan left
	// swipe up
}
