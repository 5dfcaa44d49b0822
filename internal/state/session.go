package state

import (
	"image"
	"image/color"
	"sync/atomic"

	"github.com/google/uuid"
)

var (
	sessionID = uuid.NewString()
	strokeSeq uint64
)

// SessionID identifies this process. It is published in the remote panel's
// mDNS record and stamped on every committed stroke.
func SessionID() string {
	return sessionID
}

func nextStrokeSeq() uint64 {
	return atomic.AddUint64(&strokeSeq, 1)
}

// Stroke describes one committed drawing operation: a pen or eraser
// segment, a line, or a rectangle outline.
type Stroke struct {
	Seq     uint64
	Session string
	Tool    Tool
	From    image.Point
	To      image.Point
	Color   color.RGBA
	Size    int
}

// NewStroke builds a Stroke stamped with the session ID and the next sequence number.
func NewStroke(t Tool, from, to image.Point, c color.RGBA, size int) Stroke {
	return Stroke{
		Seq:     nextStrokeSeq(),
		Session: sessionID,
		Tool:    t,
		From:    from,
		To:      to,
		Color:   c,
		Size:    size,
	}
}
