package lisp

import (
	"fmt"
	"io"
	"os"
	"sort"
)

// Scope is one frame of an LEnv, a mapping from symbol names to their values.
type Scope map[string]*LVal

// Copy returns a new Scope containing the bindings of s.
func (s Scope) Copy() Scope {
	cp := make(Scope, len(s))
	for k, v := range s {
		cp[k] = v
	}
	return cp
}

// Runtime contains the state an LEnv shares with every environment derived
// from it during evaluation.
type Runtime struct {
	Stack  *CallStack
	Stderr io.Writer
	Reader Reader

	// DynamicScope makes lambda bodies evaluate in the caller's environment
	// chain instead of the chain where the lambda was defined.
	DynamicScope bool
}

func (rt *Runtime) getStderr() io.Writer {
	if rt.Stderr == nil {
		return os.Stderr
	}
	return rt.Stderr
}

// LEnv is a lisp environment, a chain of Scope frames.  Frames[0] is the
// global frame and the last element of Frames is the innermost frame.
type LEnv struct {
	Frames  []Scope
	Runtime *Runtime
}

// NewEnv returns an LEnv containing an empty global frame and no builtins.
func NewEnv() *LEnv {
	return &LEnv{
		Frames: []Scope{make(Scope)},
		Runtime: &Runtime{
			Stack: &CallStack{},
		},
	}
}

// NewGlobalEnv returns an LEnv whose global frame contains the default
// builtins, configured by config.  NewGlobalEnv panics if a Config fails.
func NewGlobalEnv(config ...Config) *LEnv {
	env := NewEnv()
	lerr := InitializeUserEnv(env, config...)
	if lerr.Type == LError {
		panic(fmt.Sprintf("invalid environment configuration: %v", lerr))
	}
	return env
}

// InitializeUserEnv adds the default builtins to env and applies config to
// it.  If a Config returns an error InitializeUserEnv stops and returns it.
func InitializeUserEnv(env *LEnv, config ...Config) *LVal {
	env.AddBuiltins()
	for _, fn := range config {
		lerr := fn(env)
		if lerr.Type == LError {
			return lerr
		}
	}
	return Nil()
}

// Depth returns the number of frames in env.
func (env *LEnv) Depth() int {
	return len(env.Frames)
}

// Push makes scope the innermost frame of env.  If scope is nil an empty
// frame is pushed.
func (env *LEnv) Push(scope Scope) {
	if scope == nil {
		scope = make(Scope)
	}
	env.Frames = append(env.Frames, scope)
}

// Pop removes the innermost frame of env and returns it.  Pop returns nil if
// env has no frames.
func (env *LEnv) Pop() Scope {
	if len(env.Frames) == 0 {
		return nil
	}
	top := env.Frames[len(env.Frames)-1]
	env.Frames[len(env.Frames)-1] = nil
	env.Frames = env.Frames[:len(env.Frames)-1]
	return top
}

// Lookup returns the value bound to name in the innermost frame that binds
// it.
func (env *LEnv) Lookup(name string) (*LVal, bool) {
	for i := len(env.Frames) - 1; i >= 0; i-- {
		v, ok := env.Frames[i][name]
		if ok {
			return v, true
		}
	}
	return nil, false
}

// Get takes an LSymbol k and returns the LVal it is bound to in env.
func (env *LEnv) Get(k *LVal) *LVal {
	if k.Type != LSymbol {
		return env.Errorf(ErrnoWrongType, "not a symbol: %v", k.Type)
	}
	v, ok := env.Lookup(k.Str)
	if !ok {
		return env.Errorf(ErrnoUnboundSymbol, "%s", k.Str)
	}
	return v
}

// Put binds name to v in the innermost frame of env.
func (env *LEnv) Put(name string, v *LVal) {
	if v == nil {
		panic("nil value")
	}
	if len(env.Frames) == 0 {
		env.Push(nil)
	}
	env.Frames[len(env.Frames)-1][name] = v
}

// PutGlobal binds name to v in the global frame of env.
func (env *LEnv) PutGlobal(name string, v *LVal) {
	if v == nil {
		panic("nil value")
	}
	if len(env.Frames) == 0 {
		env.Push(nil)
	}
	env.Frames[0][name] = v
}

// Global returns the global frame of env.
func (env *LEnv) Global() Scope {
	if len(env.Frames) == 0 {
		return nil
	}
	return env.Frames[0]
}

// Copy returns a structural copy of env.  Every frame is copied, but the
// Runtime is shared.
func (env *LEnv) Copy() *LEnv {
	if env == nil {
		return nil
	}
	cp := &LEnv{
		Frames:  make([]Scope, len(env.Frames)),
		Runtime: env.Runtime,
	}
	for i, scope := range env.Frames {
		cp.Frames[i] = scope.Copy()
	}
	return cp
}

// Bindings returns a copy of the bindings in the innermost frame of env.
func (env *LEnv) Bindings() map[string]*LVal {
	if len(env.Frames) == 0 {
		return map[string]*LVal{}
	}
	return env.Frames[len(env.Frames)-1].Copy()
}

// Names returns the sorted names bound in the innermost frame of env.
func (env *LEnv) Names() []string {
	bindings := env.Bindings()
	names := make([]string, 0, len(bindings))
	for k := range bindings {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// closure returns a Scope holding every non-global binding visible from env,
// with inner bindings shadowing outer ones.
func (env *LEnv) closure() Scope {
	scope := make(Scope)
	for i := 1; i < len(env.Frames); i++ {
		for k, v := range env.Frames[i] {
			scope[k] = v
		}
	}
	return scope
}

// lexical returns an LEnv whose chain is the global frame of env followed by
// scope.
func (env *LEnv) lexical(scope Scope) *LEnv {
	return &LEnv{
		Frames:  []Scope{env.Global(), scope},
		Runtime: env.Runtime,
	}
}

// AddBuiltins binds the given funs to their names in the global frame of
// env.  When called with no arguments AddBuiltins adds the DefaultBuiltins to
// env.
func (env *LEnv) AddBuiltins(funs ...LBuiltinDef) {
	if len(funs) == 0 {
		funs = DefaultBuiltins()
	}
	for _, f := range funs {
		env.PutGlobal(f.Name(), Fun(f.Name(), f.Formals(), f.Eval))
	}
}

// Error returns an LError value for errno in the context of the function
// currently being called.
func (env *LEnv) Error(errno Errno) *LVal {
	return env.withContext(Error(errno))
}

// Errorf returns an LError value for errno with a formatted detail message
// in the context of the function currently being called.
func (env *LEnv) Errorf(errno Errno, format string, v ...interface{}) *LVal {
	return env.withContext(Errorf(errno, format, v...))
}

func (env *LEnv) withContext(lerr *LVal) *LVal {
	stack := env.Runtime.Stack
	if top := stack.Top(); top != nil {
		lerr.Str = top.Name + ": " + lerr.Str
	}
	lerr.Stack = stack.Copy()
	return lerr
}
