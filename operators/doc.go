// Package operators provides the typed operations that make up the Nodes of a cunet.Network.
//
// Operators only describe the shape contract of each operation and the parameters it needs: a
// convolution knows the shape of its output and of its kernel, but not how to compute it. All
// Operators are created by functions that return a value that can be customized with chained
// methods:
//
//	conv := operators.Conv2D(16).Kernel(5, 5).Stride(2, 2).Padding(operators.Same)
//
// Operators that are given inputs that do not fit their contract return a
// cunet.ShapeMismatchError from OutputShape.
package operators
