package fir

// lowPassDiv5Coeffs is the 32-tap symmetric low-pass used by the 3000 kHz
// divide-by-5 decimation stage of an FM broadcast receiver chain. Near-unity
// passband gain at DC, linear phase.
var lowPassDiv5Coeffs = []float64{
	-148.0111722921044760e-6,
	-491.4094674801370390e-6,
	-718.1672338107945280e-6,
	-16.29626735281832590e-6,
	0.002298277364638320,
	0.005503663598096803,
	0.006642206314553497,
	0.001682126832507245,
	-0.010915505153393089,
	-0.026184852212141906,
	-0.031860772610841082,
	-0.013379826345781939,
	0.036756501345089856,
	0.110944368884442118,
	0.186198352921351312,
	0.233742325091577025,
	0.233742325091577025,
	0.186198352921351312,
	0.110944368884442118,
	0.036756501345089856,
	-0.013379826345781939,
	-0.031860772610841082,
	-0.026184852212141906,
	-0.010915505153393089,
	0.001682126832507245,
	0.006642206314553497,
	0.005503663598096803,
	0.002298277364638320,
	-16.29626735281832590e-6,
	-718.1672338107945280e-6,
	-491.4094674801370390e-6,
	-148.0111722921044760e-6,
}

// LowPassDiv5 returns the 3000 kHz divide-by-5 decimation low-pass taps.
// Each call returns an independent copy.
func LowPassDiv5() Taps {
	t, _ := NewTaps(lowPassDiv5Coeffs)
	return t
}
