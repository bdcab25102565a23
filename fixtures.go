package phie

import "fmt"

// fibonacciTemplate is the canonical Fibonacci program from
// original_source/src/bin/fibonacci.rs, verbatim but for the Δ value of
// ν1, which Fibonacci substitutes with its argument.
const fibonacciTemplate = `
ν0(𝜋) ↦ ⟦ 𝜑 ↦ ν2(𝜋) ⟧
ν1(𝜋) ↦ ⟦ Δ ↦ %s ⟧
ν2(𝜋) ↦ ⟦ 𝜑 ↦ ν3(ξ), 𝛼0 ↦ ν1(𝜋) ⟧
ν3(𝜋) ↦ ⟦ 𝜑 ↦ ν13(𝜋) ⟧
ν5(𝜋) ↦ ⟦ Δ ↦ 0x0002 ⟧
ν6(𝜋) ↦ ⟦ λ ↦ int-sub, ρ ↦ 𝜋.𝜋.𝛼0, 𝛼0 ↦ ν5(𝜋) ⟧
ν7(𝜋) ↦ ⟦ Δ ↦ 0x0001 ⟧
ν8(𝜋) ↦ ⟦ λ ↦ int-sub, ρ ↦ 𝜋.𝜋.𝛼0, 𝛼0 ↦ ν7(𝜋) ⟧
ν9(𝜋) ↦ ⟦ 𝜑 ↦ ν3(ξ), 𝛼0 ↦ ν8(𝜋) ⟧
ν10(𝜋) ↦ ⟦ 𝜑 ↦ ν3(ξ), 𝛼0 ↦ ν6(𝜋) ⟧
ν11(𝜋) ↦ ⟦ λ ↦ int-add, ρ ↦ ν9(𝜋), 𝛼0 ↦ ν10(𝜋) ⟧
ν12(𝜋) ↦ ⟦ λ ↦ int-less, ρ ↦ 𝜋.𝛼0, 𝛼0 ↦ ν5(𝜋) ⟧
ν13(𝜋) ↦ ⟦ λ ↦ bool-if, ρ ↦ ν12(𝜋), 𝛼0 ↦ ν7(𝜋), 𝛼1 ↦ ν11(𝜋) ⟧
`

// Fibonacci dataizes the canonical recursive Fibonacci program for x,
// with the same three engine options original_source sets on it.
func Fibonacci(x Data) (Data, error) {
	prog, err := ParseProgram(fmt.Sprintf(fibonacciTemplate, x.String()))
	if err != nil {
		return 0, err
	}
	emu := NewEmu(prog)
	emu.SetOpt(LogSnapshots)
	emu.SetOpt(StopWhenTooManyCycles)
	emu.SetOpt(StopWhenStuck)
	return emu.Dataize()
}
