// Package events provides a minimal emitter whose On/Off accept a
// whitespace-separated list of event type names for a single handler,
// mirroring the attach/detach convenience of DOM listener registration.
package events
