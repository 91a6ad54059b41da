package myr

import (
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/vulkan-go/glfw/v3.3/glfw"
	vk "github.com/vulkan-go/vulkan"

	"github.com/perlw/soda/pompeii"
)

type sdlWindow struct {
	window *sdl.Window
	driver nativeDriver
	closed bool
}

// OpenSDL opens a Vulkan capable SDL window. GLFW is still initialized,
// without a window, since the driver loads entry points through it; SDL
// loads the same system library for its own surface calls.
func OpenSDL(title string, width, height int) (Window, error) {
	if err := initLoader(); err != nil {
		return nil, err
	}
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		glfw.Terminate()
		return nil, errors.Wrap(err, "could not initialize sdl")
	}
	if err := sdl.VulkanLoadLibrary(""); err != nil {
		sdl.Quit()
		glfw.Terminate()
		return nil, errors.Wrap(err, "could not load vulkan library")
	}

	window, err := sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(width),
		int32(height),
		sdl.WINDOW_VULKAN)
	if err != nil {
		sdl.VulkanUnloadLibrary()
		sdl.Quit()
		glfw.Terminate()
		return nil, errors.Wrap(err, "could not create window")
	}
	return &sdlWindow{window: window}, nil
}

func (w *sdlWindow) Bind(driver nativeDriver) {
	w.driver = driver
}

func (w *sdlWindow) RequiredExtensions() pompeii.PropertySet {
	return required(w.window.VulkanGetInstanceExtensions())
}

func (w *sdlWindow) CreateSurface(instance pompeii.InstanceHandle) (pompeii.SurfaceHandle, error) {
	native, err := nativeInstance(w.driver, instance)
	if err != nil {
		return 0, err
	}

	// SDL hands back a pointer to the VkSurfaceKHR it wrote.
	ptr, err := w.window.VulkanCreateSurface(native)
	if err != nil {
		return 0, errors.Wrap(err, "create window surface")
	}
	return w.driver.AdoptSurface(*(*vk.Surface)(ptr)), nil
}

func (w *sdlWindow) Poll() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if _, ok := event.(*sdl.QuitEvent); ok {
			w.closed = true
		}
	}
}

func (w *sdlWindow) ShouldClose() bool {
	return w.closed
}

func (w *sdlWindow) Destroy() {
	_ = w.window.Destroy()
	sdl.VulkanUnloadLibrary()
	sdl.Quit()
	glfw.Terminate()
}
