package convo

import "errors"

var (
	// ErrEmptyMatrix reports a kernel matrix with no rows or no columns.
	ErrEmptyMatrix = errors.New("convo: kernel matrix is empty")

	// ErrRaggedMatrix reports a kernel matrix whose rows have unequal
	// lengths.
	ErrRaggedMatrix = errors.New("convo: kernel matrix rows have unequal lengths")

	// ErrAnchorUndetermined reports that no centered anchor exists because
	// at least one kernel dimension is even.
	ErrAnchorUndetermined = errors.New("convo: no centered anchor exists for even-sized kernel")

	// ErrAnchorOutOfRange reports an anchor position outside the kernel
	// matrix.
	ErrAnchorOutOfRange = errors.New("convo: anchor outside kernel matrix")

	// ErrIndexOutOfRange reports a cell position outside the kernel matrix.
	ErrIndexOutOfRange = errors.New("convo: position outside kernel matrix")
)
