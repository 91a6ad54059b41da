package pompeii_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/perlw/soda/logger"
	"github.com/perlw/soda/pompeii"
)

func inventoryOf(t *testing.T, d *fakeDriver) pompeii.Inventory {
	t.Helper()
	inventory, err := pompeii.Enumerate(d, liveInstance(t, d))
	require.NoError(t, err)
	d.calls = nil
	return inventory
}

func TestSelectSplitFamilies(t *testing.T) {
	d := &fakeDriver{gpus: []fakeGPU{gpuNamed("gpu",
		family(pompeii.QueueTransfer, false),
		family(pompeii.QueueGraphics, false),
		family(pompeii.QueueGraphics|pompeii.QueuePresent, true),
	)}}
	inventory := inventoryOf(t, d)

	g, sel, err := pompeii.Select(d, inventory, fakeSurface, pompeii.SelectOptions{})
	require.NoError(t, err)
	require.Equal(t, "gpu", g.Name())
	require.Equal(t, pompeii.FamilyIndex(1), sel.Graphics)
	require.Equal(t, pompeii.FamilyIndex(2), sel.Present)
	require.False(t, sel.Shared())
	require.Equal(t, []uint32{1, 2}, sel.Families())
}

func TestSelectSharedFamilyStopsScanning(t *testing.T) {
	d := &fakeDriver{gpus: []fakeGPU{gpuNamed("gpu",
		family(pompeii.QueueGraphics, true),
		family(pompeii.QueueGraphics, true),
	)}}
	inventory := inventoryOf(t, d)

	_, sel, err := pompeii.Select(d, inventory, fakeSurface, pompeii.SelectOptions{})
	require.NoError(t, err)
	require.Equal(t, pompeii.QueueSelection{Graphics: 0, Present: 0}, sel)
	require.True(t, sel.Shared())
	require.Equal(t, []uint32{0}, sel.Families())
	require.Equal(t, []string{"SurfaceSupport 100/0"}, d.calls)
}

func TestSelectRolesAreSetOnce(t *testing.T) {
	d := &fakeDriver{gpus: []fakeGPU{gpuNamed("gpu",
		family(pompeii.QueueCompute, true),
		family(pompeii.QueueGraphics, true),
		family(pompeii.QueueGraphics, true),
	)}}
	inventory := inventoryOf(t, d)

	_, sel, err := pompeii.Select(d, inventory, fakeSurface, pompeii.SelectOptions{})
	require.NoError(t, err)
	require.Equal(t, pompeii.FamilyIndex(1), sel.Graphics)
	require.Equal(t, pompeii.FamilyIndex(0), sel.Present)
	require.Equal(t, []uint32{1, 0}, sel.Families())
	require.Equal(t, []string{"SurfaceSupport 100/0"}, d.calls)
}

func TestSelectFirstFit(t *testing.T) {
	d := &fakeDriver{gpus: []fakeGPU{
		gpuNamed("no present", family(pompeii.QueueGraphics, false)),
		gpuNamed("first", family(pompeii.QueueGraphics, true)),
		gpuNamed("second", family(pompeii.QueueGraphics, true)),
	}}
	inventory := inventoryOf(t, d)

	g, _, err := pompeii.Select(d, inventory, fakeSurface, pompeii.SelectOptions{})
	require.NoError(t, err)
	require.Equal(t, "first", g.Name())
	require.Equal(t, gpuHandle(1), g.Handle)
	require.NotContains(t, d.calls, "SurfaceSupport 102/0")
}

func TestSelectNoSuitableDevice(t *testing.T) {
	d := &fakeDriver{gpus: []fakeGPU{
		gpuNamed("compute only", family(pompeii.QueueCompute, true)),
		gpuNamed("no present", family(pompeii.QueueGraphics, false), family(pompeii.QueueTransfer, false)),
	}}
	inventory := inventoryOf(t, d)
	before := append(pompeii.Inventory(nil), inventory...)

	g, sel, err := pompeii.Select(d, inventory, fakeSurface, pompeii.SelectOptions{})
	require.True(t, errors.Is(err, pompeii.NoSuitableDevice))
	require.Equal(t, pompeii.PhysicalDevice{}, g)
	require.Equal(t, pompeii.NoFamily, sel.Graphics)
	require.Equal(t, pompeii.NoFamily, sel.Present)
	require.False(t, sel.Complete())
	require.Equal(t, before, inventory)
}

func TestSelectWithoutSurface(t *testing.T) {
	d := &fakeDriver{gpus: []fakeGPU{gpuNamed("gpu", family(pompeii.QueueGraphics, true))}}
	inventory := inventoryOf(t, d)

	_, _, err := pompeii.Select(d, inventory, 0, pompeii.SelectOptions{})
	require.Equal(t, pompeii.NoSuitableDevice, pompeii.KindOf(err))
	require.Empty(t, d.calls)
}

func TestSelectSurfaceQueryErrorIsUnsupported(t *testing.T) {
	broken := family(pompeii.QueueGraphics, true)
	broken.presentErr = errDriver
	d := &fakeDriver{gpus: []fakeGPU{gpuNamed("gpu", broken, family(pompeii.QueueTransfer, true))}}
	inventory := inventoryOf(t, d)

	_, sel, err := pompeii.Select(d, inventory, fakeSurface, pompeii.SelectOptions{})
	require.NoError(t, err)
	require.Equal(t, pompeii.QueueSelection{Graphics: 0, Present: 1}, sel)
}

func TestSelectRequiredExtensions(t *testing.T) {
	plain := gpuNamed("plain", family(pompeii.QueueGraphics, true))
	rich := gpuNamed("rich", family(pompeii.QueueGraphics, true))
	rich.extensions = append(rich.extensions, "VK_KHR_ray_query")
	d := &fakeDriver{gpus: []fakeGPU{plain, rich}}
	inventory := inventoryOf(t, d)

	g, _, err := pompeii.Select(d, inventory, fakeSurface, pompeii.SelectOptions{
		RequiredExtensions: pompeii.NewPropertySet("VK_KHR_swapchain", "VK_KHR_ray_query"),
	})
	require.NoError(t, err)
	require.Equal(t, "rich", g.Name())
}

func TestSelectFilter(t *testing.T) {
	small := gpuNamed("small", family(pompeii.QueueGraphics, true))
	small.props.Limits.MaxViewportDimensions = [2]uint32{1024, 768}
	d := &fakeDriver{gpus: []fakeGPU{small, gpuNamed("large", family(pompeii.QueueGraphics, true))}}
	inventory := inventoryOf(t, d)

	g, _, err := pompeii.Select(d, inventory, fakeSurface, pompeii.SelectOptions{
		Filter: func(g pompeii.PhysicalDevice) bool { return g.Match(1920, 1080) },
	})
	require.NoError(t, err)
	require.Equal(t, "large", g.Name())
}

func TestSelectScore(t *testing.T) {
	integrated := gpuNamed("integrated", family(pompeii.QueueGraphics, true))
	discrete := gpuNamed("discrete", family(pompeii.QueueTransfer, false), family(pompeii.QueueGraphics, true))
	discrete.props.Type = pompeii.DeviceTypeDiscrete
	later := gpuNamed("later discrete", family(pompeii.QueueGraphics, true))
	later.props.Type = pompeii.DeviceTypeDiscrete
	d := &fakeDriver{gpus: []fakeGPU{integrated, discrete, later}}
	inventory := inventoryOf(t, d)

	g, sel, err := pompeii.Select(d, inventory, fakeSurface, pompeii.SelectOptions{
		Score: pompeii.PreferDiscrete,
		Log:   logger.Discard(),
	})
	require.NoError(t, err)
	require.Equal(t, "discrete", g.Name())
	require.Equal(t, pompeii.QueueSelection{Graphics: 1, Present: 1}, sel)
}

func TestPreferDiscrete(t *testing.T) {
	score := func(kind pompeii.DeviceType) int {
		return pompeii.PreferDiscrete(pompeii.PhysicalDevice{Properties: pompeii.DeviceProperties{Type: kind}})
	}
	require.Greater(t, score(pompeii.DeviceTypeDiscrete), score(pompeii.DeviceTypeIntegrated))
	require.Greater(t, score(pompeii.DeviceTypeIntegrated), score(pompeii.DeviceTypeVirtual))
	require.Greater(t, score(pompeii.DeviceTypeVirtual), score(pompeii.DeviceTypeCPU))
	require.Equal(t, score(pompeii.DeviceTypeOther), score(pompeii.DeviceTypeCPU))
}

func TestFamilyIndexString(t *testing.T) {
	require.Equal(t, "NONE", pompeii.NoFamily.String())
	require.Equal(t, "0", pompeii.FamilyIndex(0).String())
	require.True(t, pompeii.FamilyIndex(0).Valid())
	require.Empty(t, pompeii.QueueSelection{Graphics: pompeii.NoFamily, Present: pompeii.NoFamily}.Families())
}
