package lisp

// LBuiltinDef is a built-in function
type LBuiltinDef interface {
	Name() string
	Formals() *LVal
	Eval(env *LEnv, args *LVal) *LVal
}

type langBuiltin struct {
	name    string
	formals *LVal
	fun     LBuiltin
}

func (fun *langBuiltin) Name() string {
	return fun.name
}

func (fun *langBuiltin) Formals() *LVal {
	return fun.formals
}

func (fun *langBuiltin) Eval(env *LEnv, args *LVal) *LVal {
	return fun.fun(env, args)
}

var userBuiltins []*langBuiltin
var langBuiltins = []*langBuiltin{
	{"+", Formals("x", VarArgSymbol, "rest"), builtinAdd},
	{"-", Formals("x", VarArgSymbol, "rest"), builtinSub},
	{"*", Formals("x", VarArgSymbol, "rest"), builtinMul},
	{"/", Formals("x", VarArgSymbol, "rest"), builtinDiv},
	{"list", Formals(VarArgSymbol, "args"), builtinList},
	{"head", Formals("lis"), builtinHead},
	{"tail", Formals("lis"), builtinTail},
	{"join", Formals("lis", VarArgSymbol, "rest"), builtinJoin},
	{"eval", Formals("expr"), builtinEval},
	{LambdaSymbol, Formals("formals", "body"), builtinLambda},
	{"def", Formals("syms", VarArgSymbol, "vals"), builtinDef},
	{"=", Formals("syms", VarArgSymbol, "vals"), builtinPut},
	{"die", Formals(), builtinDie},
	{"exit", Formals(), builtinDie},
}

// RegisterDefaultBuiltin adds the given function to the list returned by
// DefaultBuiltins.
func RegisterDefaultBuiltin(name string, formals *LVal, fn LBuiltin) {
	userBuiltins = append(userBuiltins, &langBuiltin{name, formals.Copy(), fn})
}

// NewBuiltin returns an LBuiltinDef for fn which can be passed to
// LEnv.AddBuiltins or WithBuiltins.
func NewBuiltin(name string, formals *LVal, fn LBuiltin) LBuiltinDef {
	return &langBuiltin{name, formals, fn}
}

// DefaultBuiltins returns the default set of LBuiltinDefs added to LEnv
// objects when LEnv.AddBuiltins is called without arguments.
func DefaultBuiltins() []LBuiltinDef {
	ops := make([]LBuiltinDef, len(langBuiltins)+len(userBuiltins))
	for i := range langBuiltins {
		ops[i] = langBuiltins[i]
	}
	offset := len(langBuiltins)
	for i := range userBuiltins {
		ops[offset+i] = userBuiltins[i]
	}
	return ops
}

func builtinAdd(env *LEnv, args *LVal) *LVal {
	return builtinOp(env, "+", args)
}

func builtinSub(env *LEnv, args *LVal) *LVal {
	return builtinOp(env, "-", args)
}

func builtinMul(env *LEnv, args *LVal) *LVal {
	return builtinOp(env, "*", args)
}

func builtinDiv(env *LEnv, args *LVal) *LVal {
	return builtinOp(env, "/", args)
}

// builtinOp folds the numeric operands in args from the left using the
// arithmetic operator op.
func builtinOp(env *LEnv, op string, args *LVal) *LVal {
	if args.Len() == 0 {
		return env.Errorf(ErrnoIncorrectParamCount, "expected at least 1, got 0")
	}
	for _, c := range args.Cells {
		if c.Type != LNumber {
			return env.Errorf(ErrnoBadNum, "%v", c.Type)
		}
	}
	x := args.Cells[0].Num
	if args.Len() == 1 {
		if op == "-" {
			return Number(-x)
		}
		return Number(x)
	}
	for _, c := range args.Cells[1:] {
		y := c.Num
		switch op {
		case "+":
			x += y
		case "-":
			x -= y
		case "*":
			x *= y
		case "/":
			if y == 0 {
				return env.Error(ErrnoDivByZero)
			}
			x /= y
		}
	}
	return Number(x)
}

func builtinList(env *LEnv, args *LVal) *LVal {
	return QExpr(args.Cells)
}

func builtinHead(env *LEnv, args *LVal) *LVal {
	if args.Len() != 1 {
		return env.Errorf(ErrnoIncorrectParamCount, "expected 1, got %d", args.Len())
	}
	lis := args.Cells[0]
	if lis.Type != LQExpr {
		return env.Errorf(ErrnoWrongType, "argument is not a list: %v", lis.Type)
	}
	if lis.Len() == 0 {
		return env.Error(ErrnoEmptyList)
	}
	return QExpr([]*LVal{lis.Cells[0]})
}

func builtinTail(env *LEnv, args *LVal) *LVal {
	if args.Len() != 1 {
		return env.Errorf(ErrnoIncorrectParamCount, "expected 1, got %d", args.Len())
	}
	lis := args.Cells[0]
	if lis.Type != LQExpr {
		return env.Errorf(ErrnoWrongType, "argument is not a list: %v", lis.Type)
	}
	if lis.Len() == 0 {
		return env.Error(ErrnoEmptyList)
	}
	rest := make([]*LVal, lis.Len()-1)
	copy(rest, lis.Cells[1:])
	return QExpr(rest)
}

func builtinJoin(env *LEnv, args *LVal) *LVal {
	if args.Len() < 2 {
		return env.Errorf(ErrnoIncorrectParamCount, "expected at least 2, got %d", args.Len())
	}
	var n int
	for _, c := range args.Cells {
		if c.Type != LQExpr {
			return env.Errorf(ErrnoWrongType, "argument is not a list: %v", c.Type)
		}
		n += c.Len()
	}
	cells := make([]*LVal, 0, n)
	for _, c := range args.Cells {
		cells = append(cells, c.Cells...)
	}
	return QExpr(cells)
}

func builtinEval(env *LEnv, args *LVal) *LVal {
	if args.Len() != 1 {
		return env.Errorf(ErrnoIncorrectParamCount, "expected 1, got %d", args.Len())
	}
	v := args.Cells[0]
	if v.Type == LQExpr {
		return env.Eval(SExpr(v.Cells))
	}
	return env.Eval(v)
}

func builtinLambda(env *LEnv, args *LVal) *LVal {
	if args.Len() != 2 {
		return env.Errorf(ErrnoIncorrectParamCount, "expected 2, got %d", args.Len())
	}
	formals, body := args.Cells[0], args.Cells[1]
	if formals.Type != LQExpr {
		return env.Errorf(ErrnoWrongType, "first argument is not a list: %v", formals.Type)
	}
	for _, sym := range formals.Cells {
		if sym.Type != LSymbol {
			return env.Errorf(ErrnoWrongType, "first argument contains a non-symbol: %v", sym.Type)
		}
	}
	if body.Type != LQExpr {
		return env.Errorf(ErrnoWrongType, "second argument is not a list: %v", body.Type)
	}
	for i, sym := range formals.Cells {
		if sym.Str != VarArgSymbol {
			continue
		}
		if i != formals.Len()-2 || formals.Cells[i+1].Str == VarArgSymbol {
			return env.Errorf(ErrnoIncorrectParamCount,
				"symbol %s must be followed by exactly one symbol", VarArgSymbol)
		}
	}
	return Lambda(QExpr(formals.Cells), QExpr(body.Cells), env.closure())
}

func builtinDef(env *LEnv, args *LVal) *LVal {
	return builtinVar(env, args, env.PutGlobal)
}

func builtinPut(env *LEnv, args *LVal) *LVal {
	return builtinVar(env, args, env.Put)
}

// builtinVar binds symbols to values using put.  Every argument is checked
// before any binding is made so a failed call leaves env unchanged.
func builtinVar(env *LEnv, args *LVal, put func(string, *LVal)) *LVal {
	if args.Len() < 2 {
		return env.Errorf(ErrnoIncorrectParamCount, "expected at least 2, got %d", args.Len())
	}
	syms := args.Cells[0]
	if syms.Type != LQExpr {
		return env.Errorf(ErrnoWrongType, "first argument is not a list: %v", syms.Type)
	}
	for _, sym := range syms.Cells {
		if sym.Type != LSymbol {
			return env.Errorf(ErrnoWrongType, "first argument contains a non-symbol: %v", sym.Type)
		}
		if sym.Str == VarArgSymbol {
			return env.Errorf(ErrnoWrongType, "symbol %s cannot be bound", VarArgSymbol)
		}
	}
	vals := args.Cells[1:]
	if len(vals) != syms.Len() {
		return env.Errorf(ErrnoIncorrectParamCount,
			"%d symbols given %d values", syms.Len(), len(vals))
	}
	for i, sym := range syms.Cells {
		put(sym.Str, vals[i])
	}
	return Nil()
}

func builtinDie(env *LEnv, args *LVal) *LVal {
	if args.Len() != 0 {
		return env.Errorf(ErrnoIncorrectParamCount, "expected 0, got %d", args.Len())
	}
	return env.Error(ErrnoInterrupt)
}
