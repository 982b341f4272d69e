// Package ocp implements a small command dispatch built around the Open/Closed Principle.
//
// A Factory maps a Kind to a freshly built Command and a Runner executes any Command
// it is given. Supporting a new kind of work means adding a Command variant and a
// Factory case; the Runner never changes. Cross-cutting behaviour such as logging or
// tracing is layered on with WrapFunc decorators, see the wrapper subpackage.
package ocp
