// SPDX-License-Identifier: EPL-2.0

package carrier_test

import (
	"fmt"

	"github.com/ik5/ampliphase/carrier"
)

// Example_tune shows how a carrier frequency is fitted to the output rate.
func Example_tune() {
	exact, _ := carrier.Tune(100_000_000, 1_000_000)
	fmt.Printf("period %d samples, exact %v\n", exact.Period.Len(), exact.Exact())

	off, _ := carrier.Tune(100_000_001, 1_000_000)
	fmt.Printf("period %d samples, exact %v, achieved %.2f Hz\n", off.Period.Len(), off.Exact(), off.Achieved)
	// Output:
	// period 100 samples, exact true
	// period 100 samples, exact false, achieved 1000000.01 Hz
}

// Example_inject writes one input sample's worth of a shifted carrier.
func Example_inject() {
	p, _ := carrier.NewPeriod(4)
	c := carrier.New(p)

	var ph carrier.Phase
	dst := make([]byte, 12)
	c.Inject(dst, 1, 0, &ph)

	fmt.Printf("% x\n", dst)
	fmt.Println("next offset:", ph.Offset)
	// Output:
	// ff ff ff 00 00 00 00 ff ff ff ff 00
	// next offset: 4
}

// Example_clock spreads 100 MHz output over a 48 kHz input.
func Example_clock() {
	clock, _ := carrier.NewClock(100_000_000, 48_000)
	for range 6 {
		fmt.Print(clock.Next(), " ")
	}
	fmt.Println()
	// Output:
	// 2083 2083 2084 2083 2083 2084
}
