package pompeii

// Window is the windowing collaborator. It states which instance
// extensions it needs before the instance exists, and creates a
// presentable surface once it does.
type Window interface {
	RequiredExtensions() PropertySet
	CreateSurface(instance InstanceHandle) (SurfaceHandle, error)
}
