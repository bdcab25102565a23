package phie

import (
	"github.com/golang/glog"
	"github.com/zephyrtronium/contains"
)

// Opt is a bitmask of optional engine behaviors, set via Emu.SetOpt.
type Opt int

const (
	// LogSnapshots logs, at glog.V(1), each slot as its resolution starts,
	// together with the basket it belongs to, mirroring jnes's per-tick
	// trace logging.
	LogSnapshots Opt = 1 << iota
	// StopWhenTooManyCycles fails dataization once an internal tick
	// budget is exceeded, guarding against runaway non-terminating
	// programs instead of hanging forever.
	StopWhenTooManyCycles
	// StopWhenStuck reports a genuine resolution cycle (a slot demanded
	// while it is still being resolved) as "stuck". Such a cycle fails
	// dataization whether or not this option is set; only the error
	// message differs.
	StopWhenStuck
)

// maxTicks bounds how many slot resolutions StopWhenTooManyCycles allows
// before giving up on a program that never converges.
const maxTicks = 1 << 20

// Emu is the dataization engine: a fixed object table plus a growable
// arena of baskets (activation records), one per object instantiation.
type Emu struct {
	Objects Program
	Baskets []*Basket
	Opts    Opt
	// MaxTicks overrides maxTicks for StopWhenTooManyCycles. Zero means
	// use the default.
	MaxTicks int

	ticks int
}

// NewEmu returns an engine for prog, with basket 0 pre-allocated as the
// self-parented root basket for object 0.
func NewEmu(prog Program) *Emu {
	root := NewBasket(0)
	root.Psi = 0
	return &Emu{Objects: prog, Baskets: []*Basket{root}}
}

// SetOpt enables the given option(s).
func (e *Emu) SetOpt(o Opt) { e.Opts |= o }

// Dataize resolves the root object's 𝜑 slot to a concrete Data value.
func (e *Emu) Dataize() (Data, error) {
	return e.dataizeSlot(0, Phi)
}

// dataizeSlot resolves basket bk's slot loc to a Data value, memoizing
// the result in bk's Kids map. A ξ-anchored object reference reuses bk
// itself (trampolining, via the for loop below, instead of recursing) so
// that the iterative loops the surface syntax expresses as tail self-
// reference do not grow the Go call stack.
func (e *Emu) dataizeSlot(bk Bk, loc Loc) (Data, error) {
	for {
		e.ticks++
		limit := e.MaxTicks
		if limit == 0 {
			limit = maxTicks
		}
		if e.Opts&StopWhenTooManyCycles != 0 && e.ticks > limit {
			return 0, errf(EmuFailure, nil, "too many cycles resolving %s at basket %d", loc, bk)
		}

		b := e.Baskets[bk]
		if kid, ok := b.Kids[loc]; ok {
			switch kid.Kind {
			case Dtzd:
				return kid.Data, nil
			case Rqtd:
				if e.Opts&StopWhenStuck != 0 {
					return 0, errf(EmuFailure, nil, "stuck resolving %s at basket %d", loc, bk)
				}
				return 0, errf(EmuFailure, nil, "cycle resolving %s at basket %d", loc, bk)
			}
		}
		b.Kids[loc] = Kid{Kind: Rqtd}
		if e.Opts&LogSnapshots != 0 {
			glog.V(1).Infof("resolving %s at %s", loc, b)
		}

		obj := e.Objects[b.Ob]
		if obj == nil {
			return 0, errf(EmuFailure, nil, "no object ν%d", b.Ob)
		}

		if loc == Delta {
			if !obj.HasDelta {
				return 0, errf(EmuFailure, nil, "object ν%d has no Δ", b.Ob)
			}
			b.Kids[loc] = Kid{Kind: Dtzd, Data: obj.Delta}
			return obj.Delta, nil
		}

		if loc == Phi && obj.HasLambda {
			val, err := e.invokeAtom(bk, obj)
			if err != nil {
				return 0, err
			}
			b.Kids[loc] = Kid{Kind: Dtzd, Data: val}
			return val, nil
		}

		attr, ok := obj.Attrs[loc]
		if !ok {
			if loc == Phi && obj.HasDelta {
				b.Kids[loc] = Kid{Kind: Dtzd, Data: obj.Delta}
				return obj.Delta, nil
			}
			return 0, errf(EmuFailure, nil, "empty slot %s on ν%d", loc, b.Ob)
		}

		if len(attr.Target) == 1 && attr.Target[0].Kind == LocObj {
			child := Ob(attr.Target[0].N)
			if attr.Xi {
				b.Ob = child
				b.Kids = make(map[Loc]Kid)
				continue
			}
			newBk := Bk(len(e.Baskets))
			e.Baskets = append(e.Baskets, StartBasket(child, bk))
			val, err := e.dataizeSlot(newBk, Phi)
			if err != nil {
				return 0, err
			}
			b.Kids[loc] = Kid{Kind: Dtzd, Data: val}
			return val, nil
		}

		val, err := e.resolveChain(bk, attr.Target)
		if err != nil {
			return 0, err
		}
		b.Kids[loc] = Kid{Kind: Dtzd, Data: val}
		return val, nil
	}
}

// resolveChain walks a multi-step fixed locator (Φ/ρ/𝜋/σ hops) starting
// at bk, then dataizes the terminal same-basket slot it lands on. seen
// guards against a hop chain that cycles back on itself.
func (e *Emu) resolveChain(bk Bk, target Locator) (Data, error) {
	cur := bk
	seen := contains.Set{}
	seen.Add(cur)
	for i, step := range target {
		last := i == len(target)-1
		switch step.Kind {
		case LocRoot:
			cur = 0
		case LocRho, LocPi, LocSigma:
			cur = e.Baskets[cur].Psi
		default:
			if !last {
				return 0, errf(EmuFailure, nil, "locator continues past terminal step in %q", target.String())
			}
			return e.dataizeSlot(cur, step)
		}
		if !seen.Add(cur) {
			return 0, errf(EmuFailure, nil, "cycle chasing locator %q", target.String())
		}
	}
	return 0, errf(EmuFailure, nil, "empty locator")
}

// invokeAtom gathers the dataized operands (ρ first if present, then 𝛼0,
// 𝛼1, ... in order) for an atomic object and invokes its λ atom.
//
// bool-if is special-cased to evaluate only the branch it takes: 𝛼0 and
// 𝛼1 are arbitrary expressions (in the Fibonacci program, one of them is
// the recursive call), so eagerly dataizing both would diverge on any
// program that actually recurses.
func (e *Emu) invokeAtom(bk Bk, obj *Object) (Data, error) {
	if obj.Lambda == "bool-if" {
		cond, err := e.dataizeSlot(bk, Rho)
		if err != nil {
			return 0, err
		}
		if cond != falseData {
			return e.dataizeSlot(bk, Attr(0))
		}
		return e.dataizeSlot(bk, Attr(1))
	}

	atom, err := lookupAtom(obj.Lambda)
	if err != nil {
		return 0, err
	}
	var args []Data
	if _, ok := obj.Attrs[Rho]; ok {
		v, err := e.dataizeSlot(bk, Rho)
		if err != nil {
			return 0, err
		}
		args = append(args, v)
	}
	for i := 0; ; i++ {
		if _, ok := obj.Attrs[Attr(i)]; !ok {
			break
		}
		v, err := e.dataizeSlot(bk, Attr(i))
		if err != nil {
			return 0, err
		}
		args = append(args, v)
	}
	return atom(args)
}
