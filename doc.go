// Package cunet provides the computation graph used to describe conditioned U-Net source
// separation models. The graph only records structure -- the typed operations, their shapes and
// their parameters -- the numerical work is left to whatever executes it.
//
// Creating Networks
//
// The center of everything is the Network, initialized by:
//
//		net := new(cunet.Network)
//
// Networks consist of graphs of Nodes, each of which is either an input or the result of an
// Operator applied to Nodes that already exist. All Operators can be found in the subpackage
// "operators". The standard procedure for adding Nodes to the Network is:
//
//		in, err := net.AddInput("spectrogram", 512, 128, 1)
//		if err != nil {
//			return err
//		}
//
//		conv, err := net.Add("conv", operators.Conv2D(16).Kernel(5, 5).Stride(2, 2), in)
//		if err != nil {
//			return err
//		}
//
// Every Node has a Shape, which is given by its Operator when the Node is added. If the inputs do
// not fit the Operator, Add returns an error (usually wrapping a ShapeMismatchError) and the
// Network is left unchanged.
//
// Finalizing
//
// The Network is finished by providing its outputs and a training Objective:
//
//		cost, _ := cunet.NewCostFunction("mean_absolute_error")
//		opt, _ := cunet.NewOptimizer("adam")
//		obj := cunet.Objective{
//			Cost:        cost,
//			Opt:         opt,
//			HyperParams: map[string]cunet.HyperParameter{"learning-rate": hyperparams.Constant(1e-3)},
//		}
//
//		if err := net.Finalize(obj, out); err != nil {
//			return err
//		}
//
// CostFunctions and Optimizers are looked up by name; the names become available when the
// subpackages "costfuncs" and "optimizers" are imported. Finalize requires every Node to affect
// the outputs.
//
// After finalization, the Network can be inspected by an external training driver: Summary
// describes its structure, ParamCount counts its parameters and NewWeights allocates a fresh set
// of parameter values using each parameter's Initializer (see the subpackage "initializers").
package cunet
