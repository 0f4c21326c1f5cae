package scene

import (
	"github.com/Faultbox/affinity/pkg/math"
)

// FrameMatrixSet is the model, view and projection of one object for one frame.
type FrameMatrixSet struct {
	Model      math.Mat4
	View       math.Mat4
	Projection math.Mat4
}

// ModelView returns View * Model.
func (s FrameMatrixSet) ModelView() math.Mat4 {
	return s.View.Mul(s.Model)
}

// MVP returns Projection * (View * Model).
func (s FrameMatrixSet) MVP() math.Mat4 {
	return s.Projection.Mul(s.ModelView())
}

// Normal returns the 3x3 normal matrix, transpose(inverse(ModelView)).
func (s FrameMatrixSet) Normal() math.Mat3 {
	return s.ModelView().Inverse().Transposed().Mat3()
}

// FlatSet holds the matrices of a FrameMatrixSet as row-major arrays.
type FlatSet struct {
	Model      [16]float32
	View       [16]float32
	Projection [16]float32
}

// Flat returns the three matrices as row-major arrays.
func (s FrameMatrixSet) Flat() FlatSet {
	return FlatSet{
		Model:      s.Model.Flat(),
		View:       s.View.Flat(),
		Projection: s.Projection.Flat(),
	}
}

// Uniforms is the derived per-object data a lit shader consumes.
type Uniforms struct {
	MVP       [16]float32
	ModelView [16]float32
	Normal    [9]float32
}

// Uniforms derives the upload-ready matrices.
func (s FrameMatrixSet) Uniforms() Uniforms {
	mv := s.ModelView()
	return Uniforms{
		MVP:       s.Projection.Mul(mv).Flat(),
		ModelView: mv.Flat(),
		Normal:    mv.Inverse().Transposed().Mat3().Flat(),
	}
}
