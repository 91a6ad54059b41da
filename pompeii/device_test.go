package pompeii_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/perlw/soda/pompeii"
	"github.com/perlw/soda/pompeii/mocks"
)

func selected(t *testing.T, d *fakeDriver) (pompeii.PhysicalDevice, pompeii.QueueSelection) {
	t.Helper()
	g, sel, err := pompeii.Select(d, inventoryOf(t, d), fakeSurface, pompeii.SelectOptions{})
	require.NoError(t, err)
	d.calls = nil
	return g, sel
}

func TestBuildSharedFamily(t *testing.T) {
	d := &fakeDriver{gpus: []fakeGPU{gpuNamed("gpu", family(pompeii.QueueGraphics, true))}}
	g, sel := selected(t, d)

	ld, err := pompeii.Build(d, g, sel, pompeii.BuildOptions{})
	require.NoError(t, err)
	defer ld.Destroy()

	require.Equal(t, fakeDevice, ld.Handle())
	require.Equal(t, []pompeii.QueueRequest{{Family: 0, Priorities: []float32{1.0}}}, ld.Requests())
	require.Equal(t, ld.Queue(pompeii.GraphicsQueue), ld.Queue(pompeii.PresentQueue))
	require.NotZero(t, ld.Queue(pompeii.GraphicsQueue))
	require.Equal(t, g, ld.Physical())
	require.Equal(t, sel, ld.Selection())

	require.NotNil(t, d.deviceInfo)
	require.Equal(t, ld.Requests(), d.deviceInfo.Queues)
	require.Equal(t, pompeii.FeatureFlags(0), d.deviceInfo.Features)
	require.True(t, d.deviceInfo.Extensions.Empty())
}

func TestBuildDistinctFamilies(t *testing.T) {
	d := &fakeDriver{gpus: []fakeGPU{gpuNamed("gpu",
		family(pompeii.QueueGraphics, false),
		family(pompeii.QueueTransfer, true),
	)}}
	g, sel := selected(t, d)

	ld, err := pompeii.Build(d, g, sel, pompeii.BuildOptions{})
	require.NoError(t, err)
	defer ld.Destroy()

	require.Equal(t, []pompeii.QueueRequest{
		{Family: 0, Priorities: []float32{1.0}},
		{Family: 1, Priorities: []float32{1.0}},
	}, ld.Requests())
	require.NotEqual(t, ld.Queue(pompeii.GraphicsQueue), ld.Queue(pompeii.PresentQueue))
	require.Equal(t, pompeii.QueueHandle(1000), ld.Queue(pompeii.GraphicsQueue))
	require.Equal(t, pompeii.QueueHandle(1010), ld.Queue(pompeii.PresentQueue))
}

func TestBuildIncompleteSelection(t *testing.T) {
	d := &fakeDriver{}

	_, err := pompeii.Build(d, pompeii.PhysicalDevice{}, pompeii.QueueSelection{Graphics: 0, Present: pompeii.NoFamily}, pompeii.BuildOptions{})
	require.Equal(t, pompeii.LogicalDeviceCreationFailed, pompeii.KindOf(err))
	require.Empty(t, d.calls)
}

func TestBuildDeviceExtensions(t *testing.T) {
	d := &fakeDriver{gpus: []fakeGPU{gpuNamed("gpu", family(pompeii.QueueGraphics, true))}}
	g, sel := selected(t, d)

	ld, err := pompeii.Build(d, g, sel, pompeii.BuildOptions{
		Extensions: pompeii.NewPropertySet("VK_KHR_swapchain"),
	})
	require.NoError(t, err)
	defer ld.Destroy()
	require.Equal(t, []string{"VK_KHR_swapchain"}, d.deviceInfo.Extensions.Names())
	require.Equal(t, []string{"VK_KHR_swapchain"}, ld.Extensions().Names())
}

func TestBuildUnsupportedDeviceExtension(t *testing.T) {
	d := &fakeDriver{gpus: []fakeGPU{gpuNamed("gpu", family(pompeii.QueueGraphics, true))}}
	g, sel := selected(t, d)

	_, err := pompeii.Build(d, g, sel, pompeii.BuildOptions{
		Extensions: pompeii.NewPropertySet("VK_KHR_swapchain", "VK_NV_mesh_shader"),
	})
	var e *pompeii.Error
	require.True(t, errors.As(err, &e))
	require.Equal(t, pompeii.CapabilityUnavailable, e.Kind)
	require.Equal(t, "VK_NV_mesh_shader", e.Name)
	require.Empty(t, d.calls)
}

func TestBuildDriverFailure(t *testing.T) {
	d := &fakeDriver{gpus: []fakeGPU{gpuNamed("gpu", family(pompeii.QueueGraphics, true))}}
	g, sel := selected(t, d)
	d.deviceErr = errDriver

	ld, err := pompeii.Build(d, g, sel, pompeii.BuildOptions{})
	require.Nil(t, ld)
	require.True(t, errors.Is(err, pompeii.LogicalDeviceCreationFailed))
	require.True(t, errors.Is(err, errDriver))
}

func TestBuildNullDevice(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := mocks.NewMockDriver(ctrl)
	d.EXPECT().CreateDevice(pompeii.PhysicalDeviceHandle(5), gomock.Any()).Return(pompeii.DeviceHandle(0), nil)

	g := pompeii.PhysicalDevice{Handle: 5}
	_, err := pompeii.Build(d, g, pompeii.QueueSelection{Graphics: 0, Present: 0}, pompeii.BuildOptions{})
	require.Equal(t, pompeii.LogicalDeviceCreationFailed, pompeii.KindOf(err))
}

func TestLogicalDeviceDestroy(t *testing.T) {
	d := &fakeDriver{gpus: []fakeGPU{gpuNamed("gpu", family(pompeii.QueueGraphics, true))}}
	g, sel := selected(t, d)

	ld, err := pompeii.Build(d, g, sel, pompeii.BuildOptions{})
	require.NoError(t, err)

	ld.Destroy()
	ld.Destroy()
	require.True(t, ld.Destroyed())
	require.Equal(t, []string{"CreateDevice 100", "DeviceWaitIdle 4", "DestroyDevice 4"}, d.calls)
}

func TestLogicalDeviceDestroyAfterWaitFailure(t *testing.T) {
	log, hook := testLogger()
	d := &fakeDriver{gpus: []fakeGPU{gpuNamed("gpu", family(pompeii.QueueGraphics, true))}}
	g, sel := selected(t, d)

	ld, err := pompeii.Build(d, g, sel, pompeii.BuildOptions{Log: log})
	require.NoError(t, err)

	d.waitErr = errDriver
	ld.Destroy()
	require.Contains(t, d.calls, "DestroyDevice 4")
	require.Contains(t, hook.LastEntry().Message, "device wait idle")
}

func TestQueueRoleString(t *testing.T) {
	require.Equal(t, "graphics", pompeii.GraphicsQueue.String())
	require.Equal(t, "present", pompeii.PresentQueue.String())
}
