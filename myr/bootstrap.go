package myr

import (
	"github.com/pkg/errors"

	"github.com/perlw/soda/config"
	"github.com/perlw/soda/logger"
	"github.com/perlw/soda/pompeii"
)

var (
	appVersion    = pompeii.Version{Major: 1, Minor: 0, Patch: 0}
	engineVersion = pompeii.Version{Major: 0, Minor: 0, Patch: 1}
	apiVersion    = pompeii.Version{Major: 1, Minor: 1, Patch: 0}
)

// Stack holds what the bootstrap built, in acquisition order.
type Stack struct {
	Catalog   *pompeii.Catalog
	Instance  *pompeii.InstanceContext
	Inventory pompeii.Inventory

	GPU    pompeii.PhysicalDevice
	Queues pompeii.QueueSelection
	Device *pompeii.LogicalDevice
}

// Bootstrap runs the whole sequence from capability negotiation to the
// logical device. On failure everything it acquired is released.
func Bootstrap(d pompeii.Driver, w pompeii.Window, cfg config.Configuration, log logger.Logger) (*Stack, error) {
	return bootstrap(d, w, cfg, log, true)
}

// Probe stops after device enumeration.
func Probe(d pompeii.Driver, w pompeii.Window, cfg config.Configuration, log logger.Logger) (*Stack, error) {
	return bootstrap(d, w, cfg, log, false)
}

func bootstrap(d pompeii.Driver, w pompeii.Window, cfg config.Configuration, log logger.Logger, full bool) (*Stack, error) {
	s := &Stack{}

	var err error
	s.Catalog, err = pompeii.FetchCatalog(d)
	if err != nil {
		return nil, errors.Wrap(err, "fetch capabilities")
	}

	var debugExtensions, debugLayers pompeii.PropertySet
	if cfg.Debug {
		debugExtensions = pompeii.NewPropertySet(cfg.DebugExtensions...)
		debugLayers = pompeii.NewPropertySet(cfg.DebugLayers...)
	}
	var windowExtensions pompeii.PropertySet
	if w != nil {
		windowExtensions = w.RequiredExtensions()
	}

	extensions, err := pompeii.NegotiateExtensions(s.Catalog,
		pompeii.NewPropertySet(cfg.Extensions...),
		windowExtensions,
		debugExtensions,
	)
	if err != nil {
		return nil, errors.Wrap(err, "negotiate instance extensions")
	}
	layers, err := pompeii.NegotiateLayers(s.Catalog,
		pompeii.NewPropertySet(cfg.Layers...),
		debugLayers,
	)
	if err != nil {
		return nil, errors.Wrap(err, "negotiate layers")
	}

	s.Instance, err = pompeii.CreateInstance(d, pompeii.InstanceOptions{
		Application: pompeii.ApplicationInfo{
			Name:          cfg.AppName,
			Version:       appVersion,
			EngineName:    cfg.EngineName,
			EngineVersion: engineVersion,
			APIVersion:    apiVersion,
		},
		Extensions: extensions.Dedup(),
		Layers:     layers.Dedup(),
		Debug:      cfg.Debug,
		Window:     w,
		Log:        log,
	})
	if err != nil {
		return nil, err
	}
	for _, warning := range s.Instance.Warnings() {
		log.Warn("%v", warning)
	}

	s.Inventory, err = pompeii.Enumerate(d, s.Instance)
	if err != nil {
		s.Destroy()
		return nil, err
	}
	for t, gpu := range s.Inventory {
		log.Trace("# GPU %d\n%s", t, gpu.Debug())
	}
	if !full {
		return s, nil
	}

	surface, _ := s.Instance.Surface()
	opts := pompeii.SelectOptions{
		RequiredExtensions: pompeii.NewPropertySet(cfg.DeviceExtensions...),
		Filter: func(g pompeii.PhysicalDevice) bool {
			return g.Match(uint32(cfg.Width), uint32(cfg.Height))
		},
		Log: log,
	}
	if cfg.PreferDiscrete {
		opts.Score = pompeii.PreferDiscrete
	}
	s.GPU, s.Queues, err = pompeii.Select(d, s.Inventory, surface, opts)
	if err != nil {
		s.Destroy()
		return nil, err
	}
	log.Log("Picked: %s graphics=%s present=%s", s.GPU.Name(), s.Queues.Graphics, s.Queues.Present)

	s.Device, err = pompeii.Build(d, s.GPU, s.Queues, pompeii.BuildOptions{
		Extensions: pompeii.NewPropertySet(cfg.DeviceExtensions...),
		Log:        log,
	})
	if err != nil {
		s.Destroy()
		return nil, err
	}

	return s, nil
}

// Destroy releases the device, then the instance with its surface and
// debug callback. It is safe on a partially built stack.
func (s *Stack) Destroy() {
	if s == nil {
		return
	}
	s.Device.Destroy()
	s.Instance.Destroy()
}
