package softgl

import (
	"fmt"

	"github.com/gogpu/glrr/replay"
	"github.com/gogpu/glrr/snapshot"
)

// HostName is the name softgl registers with the replay host registry.
const HostName = "softgl"

func init() {
	replay.RegisterHost(HostName, func() replay.Host { return NewHost() })
}

// Host creates softgl canvases and images for a replay.
type Host struct {
	opts     []Option
	canvases []*Canvas
}

// NewHost returns a host whose canvases are created with opts.
func NewHost(opts ...Option) *Host {
	return &Host{opts: opts}
}

// NewCanvas creates a canvas of the recorded size.
func (h *Host) NewCanvas(width, height int) (any, error) {
	c := NewCanvas(width, height, h.opts...)
	h.canvases = append(h.canvases, c)
	return c, nil
}

// NewImage decodes a snapshot data URL into an Image.
func (h *Host) NewImage(data string) (any, error) {
	img, _, err := snapshot.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("softgl: image: %w", err)
	}
	return NewImage(img), nil
}

// Canvases returns the canvases created so far, in creation order.
func (h *Host) Canvases() []*Canvas {
	return h.canvases
}
