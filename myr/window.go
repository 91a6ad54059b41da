package myr

import (
	"github.com/pkg/errors"
	"github.com/vulkan-go/glfw/v3.3/glfw"
	vk "github.com/vulkan-go/vulkan"

	"github.com/perlw/soda/pompeii"
	"github.com/perlw/soda/pompeii/vkdriver"
)

// Window is a windowing backend hosting the presentation surface. It owns
// the windowing library as well, so Destroy also shuts the library down.
type Window interface {
	pompeii.Window

	// Bind hands the window the driver it creates surfaces through.
	Bind(driver nativeDriver)

	Poll()
	ShouldClose() bool
	Destroy()
}

type nativeDriver interface {
	NativeInstance(instance pompeii.InstanceHandle) (vk.Instance, bool)
	AdoptSurface(surface vk.Surface) pompeii.SurfaceHandle
}

var _ nativeDriver = (*vkdriver.Driver)(nil)

// initLoader brings up GLFW, which the vulkan bindings resolve their entry
// points through. It has to run before vkdriver.New whatever the backend.
func initLoader() error {
	if err := glfw.Init(); err != nil {
		return errors.Wrap(err, "could not initialize glfw")
	}
	if !glfw.VulkanSupported() {
		glfw.Terminate()
		return errors.New("glfw: vulkan is not supported")
	}
	return nil
}

func nativeInstance(driver nativeDriver, instance pompeii.InstanceHandle) (vk.Instance, error) {
	if driver == nil {
		return nil, errors.New("window is not bound to a driver")
	}
	native, ok := driver.NativeInstance(instance)
	if !ok {
		return nil, errors.Errorf("unknown instance %d", instance)
	}
	return native, nil
}

// required converts a library's extension list into a property set.
func required(names []string) pompeii.PropertySet {
	out := make([]string, 0, len(names))
	for _, name := range names {
		out = append(out, vkdriver.TrimName(name))
	}
	return pompeii.NewPropertySet(out...)
}
