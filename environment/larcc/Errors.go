package larcc

import "errors"

// TaskError implements errors unique to the reaching task.
type TaskError struct {
	Op  string
	Err error
}

// Error satisfies the error interface
func (e *TaskError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

var errSamplingTimeout = errors.New("goal sampling exceeded attempt limit")

var errResetTimeout = errors.New("reset exceeded attempt limit")

var errInvalidPoseShape = errors.New("pose must have exactly 7 elements")

// IsSamplingTimeout returns whether or not an error reports that goal
// sampling could not find an acceptable orientation within the
// configured attempt limit.
func IsSamplingTimeout(err error) bool {
	if taskErr, ok := err.(*TaskError); ok {
		err = taskErr.Err
	}
	return err == errSamplingTimeout
}

// IsResetTimeout returns whether or not an error reports that a
// validity-checked reset could not find an acceptable starting
// configuration within the configured attempt limit.
func IsResetTimeout(err error) bool {
	if taskErr, ok := err.(*TaskError); ok {
		err = taskErr.Err
	}
	return err == errResetTimeout
}

// IsInvalidPoseShape returns whether or not an error reports that a
// pose did not have exactly 7 elements (3 position + 4 quaternion).
func IsInvalidPoseShape(err error) bool {
	if taskErr, ok := err.(*TaskError); ok {
		err = taskErr.Err
	}
	return err == errInvalidPoseShape
}
