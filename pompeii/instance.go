package pompeii

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/perlw/soda/logger"
)

// Sink receives formatted driver diagnostics. Emit must not fail; a panic
// inside it is swallowed before it can reach driver code.
type Sink interface {
	Emit(message string)
}

// DebugSeverity is a bitset of debug message severities.
type DebugSeverity uint32

const (
	SeverityError DebugSeverity = 1 << iota
	SeverityWarning
	SeverityPerformance
	SeverityInfo
	SeverityDebug
)

// DebugMessage is one diagnostic reported by the driver.
type DebugMessage struct {
	Severity DebugSeverity
	Layer    string
	Code     int32
	Text     string
}

func (m DebugMessage) String() string {
	var tag string
	switch {
	case m.Severity&SeverityError != 0:
		tag = "ERR"
	case m.Severity&SeverityWarning != 0:
		tag = "WARN"
	case m.Severity&SeverityPerformance != 0:
		tag = "PERF"
	case m.Severity&SeverityInfo != 0:
		tag = "INFO"
	case m.Severity&SeverityDebug != 0:
		tag = "DBG"
	default:
		tag = "UNK"
	}
	return fmt.Sprintf("[VK %s %d] %s (layer %s)", tag, m.Code, m.Text, m.Layer)
}

// SinkCallback adapts a Sink to a DebugCallback. The callback never
// reports a message as handled.
func SinkCallback(sink Sink) DebugCallback {
	return func(msg DebugMessage) (handled bool) {
		defer func() {
			_ = recover()
		}()
		sink.Emit(msg.String())
		return false
	}
}

// InstanceOptions configures CreateInstance. Extensions and Layers must
// already be negotiated.
type InstanceOptions struct {
	Application ApplicationInfo
	Extensions  PropertySet
	Layers      PropertySet

	// Debug installs a debug callback forwarding to Sink.
	Debug bool
	Sink  Sink

	// Window is optional. When set, the context creates and owns a
	// presentable surface for it.
	Window Window

	Log logger.Logger
}

// InstanceContext owns a driver instance and its children: the optional
// debug callback and the optional presentation surface.
type InstanceContext struct {
	driver Driver
	log    logger.Logger

	instance InstanceHandle
	debug    DebugInstaller
	hook     DebugHandle
	surface  SurfaceHandle

	extensions PropertySet
	layers     PropertySet
	warnings   []error

	destroyed bool
}

// CreateInstance creates the driver instance, then the debug callback,
// then the surface. Any failure after the instance exists releases what
// was acquired before returning.
func CreateInstance(d Driver, opts InstanceOptions) (*InstanceContext, error) {
	info := InstanceCreateInfo{
		Application: opts.Application,
		Extensions:  opts.Extensions,
		Layers:      opts.Layers,
	}

	handle, err := d.CreateInstance(info)
	if err != nil {
		return nil, newError(InstanceCreationFailed, err, "create instance")
	}
	if handle == 0 {
		return nil, newError(InstanceCreationFailed, nil, "driver returned a null instance")
	}

	i := &InstanceContext{
		driver:     d,
		log:        opts.Log,
		instance:   handle,
		extensions: opts.Extensions,
		layers:     opts.Layers,
	}
	i.log.Log("instance created; layers: %v exts: %v", opts.Layers, opts.Extensions)

	if opts.Debug {
		i.installDebug(opts.Sink)
	}

	if opts.Window != nil {
		if err := i.AttachSurface(opts.Window); err != nil {
			i.Destroy()
			return nil, err
		}
	}

	return i, nil
}

func (i *InstanceContext) installDebug(sink Sink) {
	installer, ok := i.driver.DebugHook(i.instance)
	if !ok {
		i.warn(&Error{Kind: DebugHookUnavailable, Err: errors.New("no debug callback installer on this instance")})
		return
	}
	if sink == nil {
		sink = i.log
	}

	hook, err := installer.Install(i.instance, SinkCallback(sink))
	if err != nil {
		i.warn(&Error{Kind: DebugHookUnavailable, Err: errors.Wrap(err, "install debug callback")})
		return
	}
	i.debug = installer
	i.hook = hook
}

func (i *InstanceContext) warn(err error) {
	i.warnings = append(i.warnings, err)
	i.log.Warn("proceeding without debug callback: %v", err)
}

// AttachSurface creates the presentable surface for window. A context
// owns at most one surface.
func (i *InstanceContext) AttachSurface(window Window) error {
	if i.destroyed {
		return newError(SurfaceCreationFailed, nil, "instance already destroyed")
	}
	if i.surface != 0 {
		return newError(SurfaceCreationFailed, nil, "instance already owns a surface")
	}

	surface, err := window.CreateSurface(i.instance)
	if err != nil {
		return newError(SurfaceCreationFailed, err, "create window surface")
	}
	if surface == 0 {
		return newError(SurfaceCreationFailed, nil, "window returned a null surface")
	}
	i.surface = surface
	return nil
}

// Destroy releases the surface and debug callback, then the instance.
// Calling it again is a no-op.
func (i *InstanceContext) Destroy() {
	if i == nil || i.destroyed {
		return
	}
	i.destroyed = true

	if i.surface != 0 {
		i.driver.DestroySurface(i.instance, i.surface)
		i.surface = 0
	}
	if i.debug != nil {
		i.debug.Uninstall(i.instance, i.hook)
		i.debug = nil
		i.hook = 0
	}
	i.driver.DestroyInstance(i.instance)
	i.instance = 0
}

func (i *InstanceContext) Handle() InstanceHandle {
	return i.instance
}

// Surface returns the owned surface, if any.
func (i *InstanceContext) Surface() (SurfaceHandle, bool) {
	return i.surface, i.surface != 0
}

// HasDebug reports whether a debug callback is installed.
func (i *InstanceContext) HasDebug() bool {
	return i.debug != nil
}

func (i *InstanceContext) Extensions() PropertySet {
	return i.extensions
}

func (i *InstanceContext) Layers() PropertySet {
	return i.layers
}

// Warnings lists the recoverable failures seen during creation.
func (i *InstanceContext) Warnings() []error {
	return i.warnings
}

func (i *InstanceContext) Destroyed() bool {
	return i.destroyed
}
