package geometry_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/arlov/algokit/geometry"
)

// CircleSuite exercises circle intersection classification and Welzl's
// minimum enclosing circle.
type CircleSuite struct {
	suite.Suite
}

func (s *CircleSuite) TestCoincidentCircles() {
	c := geometry.NewCircle(geometry.NewPoint(0, 0), 5)
	d := geometry.NewCircle(geometry.NewPoint(0, 0), 5)
	rel, _ := c.Intersect(d)
	require.Equal(s.T(), geometry.CircleCoincident, rel)
}

func (s *CircleSuite) TestDisjointCircles() {
	c := geometry.NewCircle(geometry.NewPoint(0, 0), 1)
	d := geometry.NewCircle(geometry.NewPoint(10, 0), 1)
	rel, _ := c.Intersect(d)
	require.Equal(s.T(), geometry.CircleDisjoint, rel)
}

func (s *CircleSuite) TestTangentCircles() {
	c := geometry.NewCircle(geometry.NewPoint(0, 0), 2)
	d := geometry.NewCircle(geometry.NewPoint(4, 0), 2)
	rel, pts := c.Intersect(d)
	require.Equal(s.T(), geometry.CircleTangent, rel)
	require.InDelta(s.T(), 2.0, pts[0].X, 1e-6)
	require.InDelta(s.T(), pts[0].X, pts[1].X, 1e-9)
}

func (s *CircleSuite) TestMinEnclosingCircle() {
	pts := []geometry.Point[int]{
		geometry.NewPoint(0, 2),
		geometry.NewPoint(0, 0),
		geometry.NewPoint(2, 0),
	}
	c, err := geometry.MinEnclosingCircle(pts)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 1.0, c.Center.X, 1e-6)
	require.InDelta(s.T(), 1.0, c.Center.Y, 1e-6)
	require.InDelta(s.T(), math.Sqrt2, c.Radius, 1e-6)
}

func (s *CircleSuite) TestMinEnclosingCircleEmpty() {
	_, err := geometry.MinEnclosingCircle([]geometry.Point[int]{})
	require.ErrorIs(s.T(), err, geometry.ErrEmptyPointSet)
}

func TestCircleSuite(t *testing.T) { suite.Run(t, new(CircleSuite)) }

// PolygonSuite exercises area computation and clipping.
type PolygonSuite struct {
	suite.Suite
}

func (s *PolygonSuite) TestSquareArea() {
	sq := geometry.NewPolygon([]geometry.Point[int]{
		geometry.NewPoint(0, 0),
		geometry.NewPoint(4, 0),
		geometry.NewPoint(4, 4),
		geometry.NewPoint(0, 4),
	})
	require.InDelta(s.T(), 16.0, sq.Area(), 1e-9)
}

func (s *PolygonSuite) TestClipHalfPlane() {
	sq := geometry.NewPolygon([]geometry.Point[int]{
		geometry.NewPoint(0, 0),
		geometry.NewPoint(4, 0),
		geometry.NewPoint(4, 4),
		geometry.NewPoint(0, 4),
	})
	line, err := geometry.NewLine(1, 0, -2) // x = 2
	require.NoError(s.T(), err)
	hp := geometry.NewHalfPlane(line, geometry.Negative, true) // keep x <= 2
	clipped := sq.Clip(hp)
	require.InDelta(s.T(), 8.0, clipped.Area(), 1e-9)
}

func TestPolygonSuite(t *testing.T) { suite.Run(t, new(PolygonSuite)) }

// LineSuite exercises intersection classification and y-value lookup.
type LineSuite struct {
	suite.Suite
}

func (s *LineSuite) TestIntersectUnique() {
	l1, _ := geometry.NewLine(1, -1, 0)  // y = x
	l2, _ := geometry.NewLine(1, 1, -2)  // y = 2 - x
	rel, p := l1.Intersect(l2)
	require.Equal(s.T(), geometry.LinePoint, rel)
	require.InDelta(s.T(), 1.0, p.X, 1e-9)
	require.InDelta(s.T(), 1.0, p.Y, 1e-9)
}

func (s *LineSuite) TestVerticalYAt() {
	l, _ := geometry.NewLine(1, 0, -3) // x = 3
	require.True(s.T(), l.Vertical())
	_, err := l.YAt(3)
	require.ErrorIs(s.T(), err, geometry.ErrVerticalLine)
}

func TestLineSuite(t *testing.T) { suite.Run(t, new(LineSuite)) }
