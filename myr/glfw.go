package myr

import (
	"github.com/pkg/errors"
	"github.com/vulkan-go/glfw/v3.3/glfw"
	vk "github.com/vulkan-go/vulkan"

	"github.com/perlw/soda/pompeii"
)

type glfwWindow struct {
	window *glfw.Window
	driver nativeDriver
}

// OpenGLFW initializes GLFW and opens a fixed size window without a
// client API.
func OpenGLFW(title string, width, height int) (Window, error) {
	if err := initLoader(); err != nil {
		return nil, err
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, errors.Wrap(err, "could not create window")
	}
	return &glfwWindow{window: window}, nil
}

func (w *glfwWindow) Bind(driver nativeDriver) {
	w.driver = driver
}

func (w *glfwWindow) RequiredExtensions() pompeii.PropertySet {
	return required(vk.GetRequiredInstanceExtensions())
}

func (w *glfwWindow) CreateSurface(instance pompeii.InstanceHandle) (pompeii.SurfaceHandle, error) {
	native, err := nativeInstance(w.driver, instance)
	if err != nil {
		return 0, err
	}

	var surface vk.Surface
	if result := vk.CreateWindowSurface(native, w.window.GLFWWindow(), nil, &surface); result != vk.Success {
		return 0, errors.Wrap(vk.Error(result), "create window surface")
	}
	return w.driver.AdoptSurface(surface), nil
}

func (w *glfwWindow) Poll() {
	glfw.PollEvents()
}

func (w *glfwWindow) ShouldClose() bool {
	return w.window.ShouldClose()
}

func (w *glfwWindow) Destroy() {
	w.window.Destroy()
	glfw.Terminate()
}
