package sim

import "errors"

var (
	// ErrIncompatibleCollider is returned when an overlap test meets anything but a box.
	ErrIncompatibleCollider = errors.New("sim: incompatible collider")

	// ErrInvalidOption is returned by Visual.Configure for an unsupported option name.
	ErrInvalidOption = errors.New("sim: invalid visual option")

	// ErrAlreadyDrawn is returned when drawing a visual that is already on the canvas.
	ErrAlreadyDrawn = errors.New("sim: visual already drawn")

	// ErrNotDrawn is returned when moving, rotating or undrawing a visual that was never drawn.
	ErrNotDrawn = errors.New("sim: visual not drawn")
)
