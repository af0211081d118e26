package flasher

// Feature is a capability of this module that callers may query
// before relying on it.
type Feature int

const (
	FeatureZeroThickness Feature = iota
	// FeatureThicknessAccommodating is spiral layout and per-ring spacing
	// pattern generation.
	FeatureThicknessAccommodating
	// FeatureIsometrySolver adjusts ring distances so deployed and stowed
	// fold-line lengths agree.
	FeatureIsometrySolver
	FeatureJacobian
	FeatureMeshView3D
	FeatureDeployedStowedView
	featureEnd
)

var featureNames = [...]string{
	FeatureZeroThickness:          "zero-thickness",
	FeatureThicknessAccommodating: "thickness-accommodating",
	FeatureIsometrySolver:         "isometry-solver",
	FeatureJacobian:               "jacobian",
	FeatureMeshView3D:             "mesh-view-3d",
	FeatureDeployedStowedView:     "deployed-stowed-view",
}

func (f Feature) String() string {
	if f < 0 || f >= featureEnd {
		return "unknown-feature"
	}
	return featureNames[f]
}

// Supported reports whether feature f is implemented.
func Supported(f Feature) bool {
	switch f {
	case FeatureZeroThickness:
		return true
	}
	return false
}

// Features returns every known feature, supported or not.
func Features() []Feature {
	fs := make([]Feature, featureEnd)
	for i := range fs {
		fs[i] = Feature(i)
	}
	return fs
}
