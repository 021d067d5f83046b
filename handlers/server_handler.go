// Package handlers routes decoded server messages into the local world
// state and applies their cross-component side effects.
package handlers

import (
	"log"

	"fortress-client/messages"
	"fortress-client/state"
	"fortress-client/view"
)

// ServerHandler applies each inbound frame to the world mirror. It is the
// one place that knows a snapshot should also recenter the viewport; the
// mirror itself never touches the viewport.
type ServerHandler struct {
	mirror *state.Mirror
	vp     *view.Viewport
}

// NewServerHandler wires the handler to the mirror and viewport it
// orchestrates.
func NewServerHandler(mirror *state.Mirror, vp *view.Viewport) *ServerHandler {
	return &ServerHandler{mirror: mirror, vp: vp}
}

// HandleFrame decodes and applies one raw frame from the server. Protocol
// errors are logged and never stop the stream: a partially decoded delta is
// still applied, and a frame too broken to decode is skipped whole.
func (h *ServerHandler) HandleFrame(data []byte) {
	msg, err := messages.Decode(data)
	if msg == nil {
		if err != nil {
			log.Printf("protocol: %v", err)
		}
		return
	}
	if err != nil {
		log.Printf("protocol (entries skipped): %v", err)
	}

	if err := h.mirror.Apply(msg); err != nil {
		log.Printf("apply %s: %v", msg.Kind(), err)
	}

	if msg.Kind() == messages.MessageTypeSnapshot {
		meta := h.mirror.Meta()
		h.vp.SetWorldSize(meta.Width, meta.Height)
		h.vp.CenterOn(meta.Width/2, meta.Height/2)
	}
}
