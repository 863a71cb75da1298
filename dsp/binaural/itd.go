package binaural

import "math"

const (
	// SpeedOfSound is the speed of sound in air in m/s.
	SpeedOfSound = 331.5
	// HeadCircumference is the mean human head circumference in meters.
	HeadCircumference = 0.42
	// HeadRadius is the radius of a spherical head with HeadCircumference.
	HeadRadius = HeadCircumference / (2 * math.Pi)
	// ITDFactor is the maximum interaural delay in seconds, reached at ±90°.
	ITDFactor = 3 * HeadRadius / SpeedOfSound
)

// ComputeITD returns the interaural time difference in seconds for a source
// at the given azimuth (radians, 0 = straight ahead, positive = right).
//
// The model is only physically meaningful for |azimuth| <= π/2. Larger
// angles are accepted and fold back through the sine, so a source behind
// the listener produces the same delay as its mirror image in front.
func ComputeITD(azimuthRadians float64) float64 {
	return ITDFactor * math.Sin(azimuthRadians)
}
