package lisp

import "io"

// Config is a function that configures a root environment or its runtime.
type Config func(env *LEnv) *LVal

// WithReader returns a Config that makes environments use r to parse source
// streams.  There is no default Reader for an environment.
func WithReader(r Reader) Config {
	return func(env *LEnv) *LVal {
		env.Runtime.Reader = r
		return Nil()
	}
}

// WithStderr returns a Config that makes environments write debugging output
// to w instead of the default, os.Stderr.
func WithStderr(w io.Writer) Config {
	return func(env *LEnv) *LVal {
		env.Runtime.Stderr = w
		return Nil()
	}
}

// WithDynamicScope returns a Config that makes lambda bodies evaluate with the
// lambda's frame pushed onto the caller's environment chain, so a body may see
// bindings of its callers.  By default a lambda body only sees its own frame
// and the global frame.
func WithDynamicScope() Config {
	return func(env *LEnv) *LVal {
		env.Runtime.DynamicScope = true
		return Nil()
	}
}

// WithBuiltins returns a Config that binds additional builtin functions in
// the global frame.
func WithBuiltins(funs ...LBuiltinDef) Config {
	return func(env *LEnv) *LVal {
		if len(funs) == 0 {
			return Nil()
		}
		env.AddBuiltins(funs...)
		return Nil()
	}
}
