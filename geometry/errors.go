package geometry

import "errors"

var (
	// ErrDegenerateLine indicates a Line was constructed with a=b=0.
	ErrDegenerateLine = errors.New("geometry: degenerate line, (a,b) = (0,0)")
	// ErrVerticalLine indicates YAt was asked for the y-value of a vertical line.
	ErrVerticalLine = errors.New("geometry: line is vertical, y is undefined")
	// ErrEmptyPointSet indicates MinEnclosingCircle was given zero points.
	ErrEmptyPointSet = errors.New("geometry: point set is empty")
	// ErrEmptyHalfPlaneSet indicates half-plane intersection was given zero half-planes.
	ErrEmptyHalfPlaneSet = errors.New("geometry: half-plane set is empty")
)
