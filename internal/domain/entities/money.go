package entities

import "fmt"

// Cents is a fixed-point money amount in minor currency units.
//
// Every amount in the service is carried as Cents; no component does money
// arithmetic on floats. The service is single-currency.

type Cents int64

const Currency = "usd"

// MinChargeCents is the processor's minimum chargeable amount ($0.50).
const MinChargeCents Cents = 50

// Sub subtracts d from c, flooring at zero.
func (c Cents) Sub(d Cents) Cents {
	if d >= c {
		return 0
	}
	return c - d
}

// Min returns the smaller of c and d.
func (c Cents) Min(d Cents) Cents {
	if d < c {
		return d
	}
	return c
}

// Dollars renders the amount as a display string, e.g. "$12.50".
func (c Cents) Dollars() string {
	return fmt.Sprintf("$%.2f", float64(c)/100)
}
