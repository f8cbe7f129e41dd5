package lisp

// Eval evaluates v in the context (scope) of env and returns the resulting
// LVal.  Symbols evaluate to the value they are bound to and S-expressions
// are applied.  All other values evaluate to themselves.  Eval does not
// modify v.
func (env *LEnv) Eval(v *LVal) *LVal {
	switch v.Type {
	case LSymbol:
		return env.Get(v)
	case LSExpr:
		return env.EvalSExpr(v)
	default:
		return v
	}
}

// EvalSExpr evaluates s and returns the resulting LVal.  The cells of s are
// evaluated in order and the first error encountered is returned without
// evaluating the remaining cells.
func (env *LEnv) EvalSExpr(s *LVal) *LVal {
	if s.Type != LSExpr {
		return env.Errorf(ErrnoWrongType, "not an s-expression: %v", s.Type)
	}
	cells := make([]*LVal, 0, len(s.Cells))
	for _, c := range s.Cells {
		v := env.Eval(c)
		if v.Type == LError {
			return v
		}
		cells = append(cells, v)
	}
	switch len(cells) {
	case 0:
		return Nil()
	case 1:
		// A function that takes no arguments is saturated already, so it is
		// applied rather than returned.
		if cells[0].IsNiladic() {
			return env.Call(cells[0], QExpr(nil))
		}
		return cells[0]
	}
	f := cells[0]
	if !f.IsCallable() {
		return env.Errorf(ErrnoBadOp, "%v", f)
	}
	return env.Call(f, QExpr(cells[1:]))
}

// Call invokes function fun with the list args.  Builtins receive args
// directly.  Lambdas bind args to their formals, evaluating the body once
// every formal is bound and otherwise returning a new lambda which expects
// the remaining formals.
func (env *LEnv) Call(fun *LVal, args *LVal) *LVal {
	switch fun.Type {
	case LFun:
		env.Runtime.Stack.Push(fun.Str, args.Len())
		defer env.Runtime.Stack.Pop()
		return fun.Builtin(env, args)
	case LLambda:
		env.Runtime.Stack.Push(anonFunName, args.Len())
		defer env.Runtime.Stack.Pop()
		return env.callLambda(fun, args)
	default:
		return env.Errorf(ErrnoBadOp, "%v", fun)
	}
}

func (env *LEnv) callLambda(fun *LVal, args *LVal) *LVal {
	// Arguments are bound in a copy, the caller's lambda may be called again.
	fun = fun.Copy()
	if fun.Env == nil {
		fun.Env = make(Scope)
	}
	formals := fun.Formals.Cells
	nformal := len(formals)
	for i, v := range args.Cells {
		if len(formals) == 0 {
			return env.Errorf(ErrnoIncorrectParamCount,
				"expected %d, got %d", nformal, args.Len())
		}
		argSym := formals[0]
		if argSym.Str == VarArgSymbol {
			if len(formals) != 2 {
				return env.Errorf(ErrnoIncorrectParamCount,
					"symbol %s must be followed by exactly one symbol", VarArgSymbol)
			}
			rest := make([]*LVal, len(args.Cells)-i)
			copy(rest, args.Cells[i:])
			fun.Env[formals[1].Str] = QExpr(rest)
			formals = nil
			break
		}
		fun.Env[argSym.Str] = v
		formals = formals[1:]
	}
	if len(formals) != 0 {
		if formals[0].Str != VarArgSymbol {
			fun.Formals = QExpr(formals)
			return fun
		}
		if len(formals) != 2 {
			return env.Errorf(ErrnoIncorrectParamCount,
				"symbol %s must be followed by exactly one symbol", VarArgSymbol)
		}
		// The variadic formal was reached without any arguments left to
		// collect.
		fun.Env[formals[1].Str] = QExpr(nil)
	}
	fun.Formals = QExpr(nil)
	return env.evalBody(fun)
}

// evalBody evaluates the body of the saturated lambda fun.
func (env *LEnv) evalBody(fun *LVal) *LVal {
	if fun.Body == nil {
		return Nil()
	}
	body := SExpr(fun.Body.Cells)
	if env.Runtime.DynamicScope {
		env.Push(fun.Env)
		defer env.Pop()
		return env.EvalSExpr(body)
	}
	return env.lexical(fun.Env).EvalSExpr(body)
}
