package pompeii

import (
	"strconv"

	"github.com/perlw/soda/logger"
)

// FamilyIndex is a queue family index or NoFamily.
type FamilyIndex int

// NoFamily marks an unresolved role. 0 is a valid family index.
const NoFamily FamilyIndex = -1

func (f FamilyIndex) Valid() bool {
	return f >= 0
}

func (f FamilyIndex) String() string {
	if !f.Valid() {
		return "NONE"
	}
	return strconv.Itoa(int(f))
}

// QueueSelection holds the family chosen for each queue role.
type QueueSelection struct {
	Graphics FamilyIndex
	Present  FamilyIndex
}

// Complete reports whether both roles resolved.
func (s QueueSelection) Complete() bool {
	return s.Graphics.Valid() && s.Present.Valid()
}

// Shared reports whether both roles resolved to the same family.
func (s QueueSelection) Shared() bool {
	return s.Complete() && s.Graphics == s.Present
}

// Families returns the distinct resolved families, graphics first.
func (s QueueSelection) Families() []uint32 {
	var families []uint32
	for _, f := range []FamilyIndex{s.Graphics, s.Present} {
		if !f.Valid() {
			continue
		}
		dup := false
		for _, seen := range families {
			if seen == uint32(f) {
				dup = true
				break
			}
		}
		if !dup {
			families = append(families, uint32(f))
		}
	}
	return families
}

// SelectOptions extend the default first-fit selection. The zero value
// selects exactly like first-fit.
type SelectOptions struct {
	// RequiredExtensions makes devices lacking any of them ineligible.
	RequiredExtensions PropertySet
	// Filter, when set, must accept a device for it to be eligible.
	Filter func(PhysicalDevice) bool
	// Score, when set, picks the highest scoring eligible device instead
	// of the first one. Ties go to the earliest in enumeration order.
	Score func(PhysicalDevice) int

	Log logger.Logger
}

// ResolveQueues scans g's queue families in index order. The first family
// with graphics support becomes the graphics family and the first family
// that can present to surface becomes the present family, each set once.
func ResolveQueues(d Driver, g PhysicalDevice, surface SurfaceHandle, log logger.Logger) QueueSelection {
	sel := QueueSelection{Graphics: NoFamily, Present: NoFamily}

	for _, family := range g.QueueFamilies {
		if !sel.Graphics.Valid() && family.Graphics() {
			sel.Graphics = FamilyIndex(family.Index)
		}

		if !sel.Present.Valid() && surface != 0 {
			supported, err := d.SurfaceSupport(g.Handle, uint32(family.Index), surface)
			if err != nil {
				log.Trace("%s family %d: surface support query failed: %v", g.Name(), family.Index, err)
			} else if supported {
				sel.Present = FamilyIndex(family.Index)
			}
		}

		if sel.Complete() {
			break
		}
	}
	return sel
}

// Select returns the first eligible device of inventory and its queue
// selection. A device is eligible when both a graphics and a present family
// resolve. The inventory is only read.
func Select(d Driver, inventory Inventory, surface SurfaceHandle, opts SelectOptions) (PhysicalDevice, QueueSelection, error) {
	var (
		best      PhysicalDevice
		bestSel   QueueSelection
		bestScore int
		found     bool
	)

	for _, g := range inventory {
		if !eligible(g, opts) {
			opts.Log.Trace("skipping %s: filtered out", g.Name())
			continue
		}

		sel := ResolveQueues(d, g, surface, opts.Log)
		if !sel.Complete() {
			opts.Log.Trace("skipping %s: graphics=%s present=%s", g.Name(), sel.Graphics, sel.Present)
			continue
		}

		if opts.Score == nil {
			return g, sel, nil
		}
		score := opts.Score(g)
		if !found || score > bestScore {
			best, bestSel, bestScore, found = g, sel, score, true
		}
	}

	if !found {
		return PhysicalDevice{}, QueueSelection{Graphics: NoFamily, Present: NoFamily},
			newError(NoSuitableDevice, nil, "none of %d devices has graphics and present queues", len(inventory))
	}
	return best, bestSel, nil
}

func eligible(g PhysicalDevice, opts SelectOptions) bool {
	for _, name := range opts.RequiredExtensions.names {
		if !g.Supports(Extensions, name) {
			return false
		}
	}
	if opts.Filter != nil && !opts.Filter(g) {
		return false
	}
	return true
}

// PreferDiscrete is a Score favoring discrete, then integrated GPUs.
func PreferDiscrete(g PhysicalDevice) int {
	switch g.Properties.Type {
	case DeviceTypeDiscrete:
		return 3
	case DeviceTypeIntegrated:
		return 2
	case DeviceTypeVirtual:
		return 1
	default:
		return 0
	}
}
