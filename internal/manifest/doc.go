// Package manifest loads declarative scene definitions from HCL files.
//
// A scene names the root builder to recall and the context values that
// parametrize it:
//
//	scene "welcome" {
//	  root = "greeting"
//	  context {
//	    name = "Flutter"
//	  }
//	}
//
// Context attributes are HCL expressions evaluated at load time; their
// cty values are converted to native Go values so that the composition
// core captures ordinary runtime types for its type-checked reads.
package manifest
