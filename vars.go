package dbuscodegen

// A Var names one C variable that generated code either expects the
// caller to supply (an input) or declares for its own use (a local).
type Var struct {
	// Type is the C type of the variable, already carrying any
	// pointer/const qualification the generator has applied.
	Type string
	// Name is the variable's identifier.
	Name string
}

// Vars collects the variables a generated block of code requires,
// split into the two ordered sequences [Generate] promises: Inputs,
// which the caller must have in scope before the emitted code runs,
// and Locals, which the emitted code declares for itself. Both
// sequences are append-only during generation: once a variable is
// added it keeps its position, so two generations over the same
// signature always produce the same ordering.
type Vars struct {
	Inputs []Var
	Locals []Var
}

func (v *Vars) addInput(typ, name string) Var {
	vr := Var{typ, name}
	v.Inputs = append(v.Inputs, vr)
	return vr
}

func (v *Vars) addLocal(typ, name string) Var {
	vr := Var{typ, name}
	v.Locals = append(v.Locals, vr)
	return vr
}
