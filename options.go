package optics

// KernelOption configures a [RenderKernel] call.
// Use functional options to customize the iris shape.
//
// Example:
//
//	// Cooke-style 11-blade iris at 2x squeeze:
//	k := optics.RenderKernel(512,
//	    optics.WithBlades(11),
//	    optics.WithSqueeze(2.0),
//	    optics.WithRotation(15),
//	)
type KernelOption func(*kernelOptions)

// kernelOptions holds optional configuration for kernel rendering.
type kernelOptions struct {
	blades      int
	squeeze     float64
	rotationDeg float64
	workers     int
}

// defaultKernelOptions returns the default kernel options.
func defaultKernelOptions() kernelOptions {
	return kernelOptions{
		blades:      11,
		squeeze:     1.0,
		rotationDeg: 0,
		workers:     0, // GOMAXPROCS
	}
}

// WithBlades sets the iris blade count. Meaningful values are >= 3;
// lower values do not describe a polygon and are rejected by the preset
// loader, not here.
func WithBlades(blades int) KernelOption {
	return func(o *kernelOptions) {
		o.blades = blades
	}
}

// WithSqueeze sets the anamorphic squeeze baked into the kernel
// (1.0 = spherical, 2.0 = 2x horizontal stretch of the bokeh shape).
func WithSqueeze(squeeze float64) KernelOption {
	return func(o *kernelOptions) {
		o.squeeze = squeeze
	}
}

// WithRotation sets the iris blade rotation offset in degrees.
func WithRotation(rotationDeg float64) KernelOption {
	return func(o *kernelOptions) {
		o.rotationDeg = rotationDeg
	}
}

// WithWorkers sets the number of render workers.
// Zero or negative means GOMAXPROCS.
func WithWorkers(workers int) KernelOption {
	return func(o *kernelOptions) {
		o.workers = workers
	}
}
