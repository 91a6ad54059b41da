package inspect

import (
	"github.com/launchdarkly/go-jsonstream/v3/jwriter"

	"github.com/perlw/soda/pompeii"
)

// JSON renders the inventory as an array of device objects.
func JSON(inventory pompeii.Inventory) []byte {
	w := jwriter.NewWriter()
	arr := w.Array()
	for t, g := range inventory {
		obj := arr.Object()
		writeDevice(&obj, t, g)
		obj.End()
	}
	arr.End()
	return w.Bytes()
}

func writeDevice(json *jwriter.ObjectState, index int, g pompeii.PhysicalDevice) {
	props := g.Properties
	json.Name("index").Int(index)
	json.Name("name").String(props.Name)
	json.Name("type").String(props.Type.String())
	json.Name("vendorID").Int(int(props.VendorID))
	json.Name("deviceID").Int(int(props.DeviceID))
	json.Name("apiVersion").String(props.APIVersion.String())
	json.Name("driverVersion").String(props.DriverVersion.String())
	json.Name("memory").Int(int(props.MemorySize))

	limits := json.Name("limits").Object()
	limits.Name("maxImageDimension2D").Int(int(props.Limits.MaxImageDimension2D))
	limits.Name("maxViewports").Int(int(props.Limits.MaxViewports))
	dims := limits.Name("maxViewportDimensions").Array()
	dims.Int(int(props.Limits.MaxViewportDimensions[0]))
	dims.Int(int(props.Limits.MaxViewportDimensions[1]))
	dims.End()
	limits.End()

	features := json.Name("features").Array()
	for _, name := range g.Features.Names() {
		features.String(name)
	}
	features.End()

	families := json.Name("queueFamilies").Array()
	for _, q := range g.QueueFamilies {
		family := families.Object()
		family.Name("index").Int(q.Index)
		family.Name("flags").String(q.Flags.String())
		family.Name("queueCount").Int(int(q.QueueCount))
		family.End()
	}
	families.End()

	extensions := json.Name("extensions").Array()
	for _, name := range g.Extensions {
		extensions.String(name)
	}
	extensions.End()
}
