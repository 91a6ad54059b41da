package vkdriver

import (
	"unsafe"

	"github.com/pkg/errors"
	vk "github.com/vulkan-go/vulkan"

	"github.com/perlw/soda/pompeii"
)

// DebugHook returns the debug report installer. It is only available on
// instances created with VK_EXT_debug_report enabled.
func (d *Driver) DebugHook(h pompeii.InstanceHandle) (pompeii.DebugInstaller, bool) {
	if !d.debugReport[h] {
		return nil, false
	}
	return debugReport{d}, true
}

type debugReport struct {
	d *Driver
}

func (r debugReport) Install(h pompeii.InstanceHandle, callback pompeii.DebugCallback) (pompeii.DebugHandle, error) {
	instance, ok := r.d.instances.get(uint64(h))
	if !ok {
		return 0, errors.Errorf("unknown instance %d", h)
	}

	debugCreateInfo := vk.DebugReportCallbackCreateInfo{
		SType: vk.StructureTypeDebugReportCallbackCreateInfo,
		Flags: vk.DebugReportFlags(vk.DebugReportErrorBit | vk.DebugReportWarningBit | vk.DebugReportPerformanceWarningBit),
		PfnCallback: func(flags vk.DebugReportFlags, objectType vk.DebugReportObjectType,
			object uint64, location uint, messageCode int32, pLayerPrefix string,
			pMessage string, pUserData unsafe.Pointer) vk.Bool32 {
			if callback(pompeii.DebugMessage{
				Severity: severity(flags),
				Layer:    pLayerPrefix,
				Code:     messageCode,
				Text:     pMessage,
			}) {
				return vk.Bool32(vk.True)
			}
			return vk.Bool32(vk.False)
		},
	}

	var dbg vk.DebugReportCallback
	if result := vk.CreateDebugReportCallback(instance, &debugCreateInfo, nil, &dbg); result != vk.Success {
		return 0, errors.Wrap(vk.Error(result), "creating debug report")
	}
	return pompeii.DebugHandle(r.d.callbacks.put(dbg)), nil
}

func (r debugReport) Uninstall(h pompeii.InstanceHandle, hook pompeii.DebugHandle) {
	instance, ok := r.d.instances.get(uint64(h))
	if !ok {
		return
	}
	dbg, ok := r.d.callbacks.get(uint64(hook))
	if !ok {
		return
	}
	vk.DestroyDebugReportCallback(instance, dbg, nil)
	r.d.callbacks.drop(uint64(hook))
}

func severity(flags vk.DebugReportFlags) pompeii.DebugSeverity {
	var s pompeii.DebugSeverity
	if flags&vk.DebugReportFlags(vk.DebugReportErrorBit) != 0 {
		s |= pompeii.SeverityError
	}
	if flags&vk.DebugReportFlags(vk.DebugReportWarningBit) != 0 {
		s |= pompeii.SeverityWarning
	}
	if flags&vk.DebugReportFlags(vk.DebugReportPerformanceWarningBit) != 0 {
		s |= pompeii.SeverityPerformance
	}
	if flags&vk.DebugReportFlags(vk.DebugReportInformationBit) != 0 {
		s |= pompeii.SeverityInfo
	}
	if flags&vk.DebugReportFlags(vk.DebugReportDebugBit) != 0 {
		s |= pompeii.SeverityDebug
	}
	return s
}
