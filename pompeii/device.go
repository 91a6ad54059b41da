package pompeii

import (
	"github.com/perlw/soda/logger"
)

const queuePriority float32 = 1.0

type QueueRole int

const (
	GraphicsQueue QueueRole = iota
	PresentQueue
)

func (r QueueRole) String() string {
	switch r {
	case GraphicsQueue:
		return "graphics"
	case PresentQueue:
		return "present"
	default:
		return "unknown"
	}
}

type BuildOptions struct {
	// Extensions are device extensions to enable. They are validated
	// against the device's own extension list.
	Extensions PropertySet

	Log logger.Logger
}

// LogicalDevice owns a driver device. The physical device and the queues
// are borrowed; queues are only valid while the device is.
type LogicalDevice struct {
	driver Driver
	log    logger.Logger

	handle     DeviceHandle
	physical   PhysicalDevice
	selection  QueueSelection
	requests   []QueueRequest
	extensions PropertySet
	queues     map[QueueRole]QueueHandle

	destroyed bool
}

// QueueRequests builds one single-queue request per distinct family of sel.
func QueueRequests(sel QueueSelection) []QueueRequest {
	families := sel.Families()
	requests := make([]QueueRequest, len(families))
	for i, f := range families {
		requests[i] = QueueRequest{
			Family:     f,
			Priorities: []float32{queuePriority},
		}
	}
	return requests
}

// Build creates the logical device for g with no optional features
// enabled and retrieves one queue per role.
func Build(d Driver, g PhysicalDevice, sel QueueSelection, opts BuildOptions) (*LogicalDevice, error) {
	if !sel.Complete() {
		return nil, newError(LogicalDeviceCreationFailed, nil, "incomplete queue selection graphics=%s present=%s", sel.Graphics, sel.Present)
	}

	extensions, err := NegotiateExtensions(g, opts.Extensions)
	if err != nil {
		return nil, err
	}

	requests := QueueRequests(sel)
	handle, err := d.CreateDevice(g.Handle, DeviceCreateInfo{
		Queues:     requests,
		Extensions: extensions,
	})
	if err != nil {
		return nil, newError(LogicalDeviceCreationFailed, err, "create device on %s", g.Name())
	}
	if handle == 0 {
		return nil, newError(LogicalDeviceCreationFailed, nil, "driver returned a null device for %s", g.Name())
	}

	ld := &LogicalDevice{
		driver:     d,
		log:        opts.Log,
		handle:     handle,
		physical:   g,
		selection:  sel,
		requests:   requests,
		extensions: extensions,
		queues: map[QueueRole]QueueHandle{
			GraphicsQueue: d.DeviceQueue(handle, uint32(sel.Graphics), 0),
			PresentQueue:  d.DeviceQueue(handle, uint32(sel.Present), 0),
		},
	}
	ld.log.Log("device created on %s; queues requested: %d graphics=%s present=%s", g.Name(), len(requests), sel.Graphics, sel.Present)

	return ld, nil
}

func (d *LogicalDevice) Handle() DeviceHandle {
	return d.handle
}

func (d *LogicalDevice) Queue(role QueueRole) QueueHandle {
	return d.queues[role]
}

func (d *LogicalDevice) Physical() PhysicalDevice {
	return d.physical
}

func (d *LogicalDevice) Selection() QueueSelection {
	return d.selection
}

func (d *LogicalDevice) Requests() []QueueRequest {
	return d.requests
}

func (d *LogicalDevice) Extensions() PropertySet {
	return d.extensions
}

func (d *LogicalDevice) WaitIdle() error {
	return d.driver.DeviceWaitIdle(d.handle)
}

// Destroy waits for the device to go idle and destroys it. Calling it
// again is a no-op.
func (d *LogicalDevice) Destroy() {
	if d == nil || d.destroyed {
		return
	}
	d.destroyed = true

	if err := d.WaitIdle(); err != nil {
		d.log.Warn("device wait idle: %v", err)
	}
	d.driver.DestroyDevice(d.handle)
	d.handle = 0
	d.queues = nil
}

func (d *LogicalDevice) Destroyed() bool {
	return d.destroyed
}
