// Package model assembles conditioned U-Nets for audio source separation.
//
// A model takes a spectrogram and a condition vector (for example, a one-hot vector selecting the
// instrument to extract). The spectrogram goes through an encoder of strided convolutions and a
// decoder of transposed convolutions with skip connections, producing a single-channel mask that
// is multiplied with the spectrogram. A control network maps the condition vector to two flat
// vectors, gamma and beta, which are sliced up and used to modulate each encoder layer with FiLM
// (feature-wise linear modulation).
//
// Everything about the structure follows from the Hyperparameters:
//
//	hp := model.Defaults()
//	hp.FilmType = model.FilmComplex
//
//	m, err := model.Assemble(hp)
//	if err != nil {
//		return err
//	}
//
// The layer policy is available without building anything, through EncoderPlan, DecoderPlan,
// ConditioningLength and SliceBounds.
package model
