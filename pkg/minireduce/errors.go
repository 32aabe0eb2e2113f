package minireduce

import "errors"

// Sentinel errors for pipeline configuration and input conditions
var (
	ErrInvalidMappers  = errors.New("number of mappers must be > 0")
	ErrInvalidReducers = errors.New("number of reducers must be > 0")
	ErrInvalidWorkers  = errors.New("number of workers must be >= 0")
	ErrEmptyInput      = errors.New("input is empty")
	ErrNoPartitions    = errors.New("no partitions to map")

	// Phase errors wrap the underlying Map/Reduce/Merge failure
	ErrMapPhase    = errors.New("error during map phase")
	ErrReducePhase = errors.New("error during reduce phase")
	ErrMergePhase  = errors.New("error during merge phase")
)
