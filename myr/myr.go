// Package myr is the engine bootstrap. It opens a window, loads the Vulkan
// driver and brings up instance, device and queues through pompeii.
package myr

import (
	"github.com/pkg/errors"

	"github.com/perlw/soda/config"
	"github.com/perlw/soda/logger"
	"github.com/perlw/soda/pompeii"
	"github.com/perlw/soda/pompeii/vkdriver"
)

const engineName = "MYR"

type Myr struct {
	log logger.Logger

	window Window
	driver *vkdriver.Driver
	stack  *Stack
}

// OpenWindow opens the backend named by cfg.Window.
func OpenWindow(cfg config.Configuration) (Window, error) {
	switch cfg.Window {
	case config.WindowGLFW:
		return OpenGLFW(cfg.AppName, cfg.Width, cfg.Height)
	case config.WindowSDL:
		return OpenSDL(cfg.AppName, cfg.Width, cfg.Height)
	default:
		return nil, errors.Errorf("unknown window backend %q", cfg.Window)
	}
}

// New brings up the full stack.
func New(cfg config.Configuration) (*Myr, error) {
	return start(cfg, Bootstrap)
}

// Inspect brings up an instance and enumerates its devices without
// selecting one.
func Inspect(cfg config.Configuration) (*Myr, error) {
	return start(cfg, Probe)
}

type bootstrapFunc func(pompeii.Driver, pompeii.Window, config.Configuration, logger.Logger) (*Stack, error)

func start(cfg config.Configuration, run bootstrapFunc) (*Myr, error) {
	m := Myr{
		log: logger.New(engineName),
	}
	if cfg.EngineName == "" {
		cfg.EngineName = engineName
	}

	var err error
	m.window, err = OpenWindow(cfg)
	if err != nil {
		return nil, err
	}

	m.driver, err = vkdriver.New(m.log.With("layer", "vk"))
	if err != nil {
		m.window.Destroy()
		return nil, err
	}
	m.window.Bind(m.driver)

	m.stack, err = run(m.driver, m.window, cfg, m.log)
	if err != nil {
		m.window.Destroy()
		return nil, err
	}

	return &m, nil
}

// Destroy releases the device, the instance with its surface and debug
// callback, then the window and its library.
func (m *Myr) Destroy() {
	m.stack.Destroy()
	m.window.Destroy()
}

func (m Myr) ShouldClose() bool {
	m.window.Poll()
	return m.window.ShouldClose()
}

func (m Myr) BackendInstance() *pompeii.InstanceContext {
	return m.stack.Instance
}

func (m Myr) BackendGPU() pompeii.PhysicalDevice {
	return m.stack.GPU
}

func (m Myr) BackendDevice() *pompeii.LogicalDevice {
	return m.stack.Device
}

func (m Myr) Inventory() pompeii.Inventory {
	return m.stack.Inventory
}
