package paycalc_test

import (
	"fmt"

	"github.com/bft-labs/paycalc"
)

// ExampleCalculate shows the Senior uplift on the commission.
func ExampleCalculate() {
	res, err := paycalc.Calculate(paycalc.FormInput{
		Name:    "Ana",
		Base:    "1000",
		Sales:   "4000",
		Percent: "5",
		Tier:    paycalc.Senior,
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(paycalc.NewRow(res).Cells())

	// Output: [Ana Senior 1000.00 4000.00 5.00 0.00 1204.00]
}

// ExampleCalculate_validation shows the message of a rejected form.
func ExampleCalculate_validation() {
	_, err := paycalc.Calculate(paycalc.FormInput{Name: "Ana", Base: "-1"})
	fmt.Println(err)

	// Output: Valores inválidos: no pueden ser negativos.
}

// ExampleCalculate_bonus shows a bonus applied once sales reach the goal.
func ExampleCalculate_bonus() {
	res, _ := paycalc.Calculate(paycalc.FormInput{
		Name:         "Eva",
		Base:         "500",
		Sales:        "3500",
		Percent:      "10",
		BonusEnabled: true,
		Threshold:    "3000",
		Bonus:        "100",
	})
	fmt.Printf("%.2f %.2f %.2f\n", res.Commission, res.AppliedBonus, res.Total)

	// Output: 350.00 100.00 950.00
}
