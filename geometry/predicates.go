package geometry

import (
	"math"

	"github.com/golang/geo/r3"
)

// Sign is the outcome of an orientation test.
type Sign int

const (
	Negative Sign = -1
	Zero     Sign = 0
	Positive Sign = 1
)

func (s Sign) String() string {
	switch s {
	case Negative:
		return "negative"
	case Positive:
		return "positive"
	default:
		return "zero"
	}
}

// orientErrBound is Shewchuk's static bound (7 + 56ε)ε for the orientation
// determinant of differences, ε = 2^-53.
var orientErrBound = (7.0 + 56.0*epsilon) * epsilon

const epsilon = 1.0 / (1 << 53)

// Orient3D returns the sign of (b-a)×(c-a)·(d-a): Positive when d lies on the
// side of plane abc that the counterclockwise normal of abc points to.
func Orient3D(a, b, c, d r3.Vector) Sign {
	u, v, w := b.Sub(a), c.Sub(a), d.Sub(a)
	det := u.Cross(v).Dot(w)

	perm := math.Abs(u.X)*(math.Abs(v.Y)*math.Abs(w.Z)+math.Abs(v.Z)*math.Abs(w.Y)) +
		math.Abs(u.Y)*(math.Abs(v.X)*math.Abs(w.Z)+math.Abs(v.Z)*math.Abs(w.X)) +
		math.Abs(u.Z)*(math.Abs(v.X)*math.Abs(w.Y)+math.Abs(v.Y)*math.Abs(w.X))
	bound := orientErrBound * perm
	if det > bound {
		return Positive
	}
	if det < -bound {
		return Negative
	}

	return exactOrient3D(a, b, c, d)
}

// exactOrient3D evaluates the same determinant without rounding.
func exactOrient3D(a, b, c, d r3.Vector) Sign {
	xa := r3.PreciseVectorFromVector(a)
	u := r3.PreciseVectorFromVector(b).Sub(xa)
	v := r3.PreciseVectorFromVector(c).Sub(xa)
	w := r3.PreciseVectorFromVector(d).Sub(xa)

	return Sign(u.Cross(v).Dot(w).Sign())
}

// SignedVolume returns the signed volume of tetrahedron abcd, positive when
// Orient3D(a,b,c,d) is Positive. Rounded; use Orient3D for decisions.
func SignedVolume(a, b, c, d r3.Vector) float64 {
	return b.Sub(a).Cross(c.Sub(a)).Dot(d.Sub(a)) / 6
}

// Coplanar reports whether the four points lie exactly on one plane.
func Coplanar(a, b, c, d r3.Vector) bool {
	return Orient3D(a, b, c, d) == Zero
}
