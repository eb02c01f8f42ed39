package core

import "errors"

var (
	// ErrConfiguration reports an invalid construction parameter such as a
	// worker count or update rate below one.
	ErrConfiguration = errors.New("invalid configuration")

	// ErrBoundsViolation reports a cell access outside the grid. It always
	// indicates a partitioning defect and is raised with panic.
	ErrBoundsViolation = errors.New("cell access out of bounds")

	// ErrCoordination reports a broken hand-off between the engine and the
	// worker pool, e.g. a job submitted after shutdown.
	ErrCoordination = errors.New("worker coordination failure")

	// ErrBufferSize reports a pixel buffer whose length is not width*height*4.
	ErrBufferSize = errors.New("pixel buffer has wrong size")
)
