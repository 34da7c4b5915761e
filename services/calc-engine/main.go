// calc-engine runs a single intrinsic-value calculation from the command
// line: -mode check validates the payload only, -mode calculate runs the
// full DCF and prints the result JSON.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"intrinsic_value/pkg/core/valuation"
)

func main() {
	mode := flag.String("mode", "calculate", "Mode: check or calculate")
	dataStr := flag.String("data", "", "JSON data payload")
	flag.Parse()

	if *dataStr == "" {
		fmt.Println("Error: No data provided")
		os.Exit(1)
	}

	var input valuation.ValuationInput
	if err := json.Unmarshal([]byte(*dataStr), &input); err != nil {
		fmt.Printf("Error unmarshaling data: %v\n", err)
		os.Exit(1)
	}

	switch *mode {
	case "check":
		runCheck(&input)
	case "calculate":
		runCalculate(&input)
	default:
		fmt.Printf("Unknown mode: %s\n", *mode)
		os.Exit(1)
	}
}

func runCheck(input *valuation.ValuationInput) {
	if _, err := valuation.Validate(input); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Success: input is valid")
}

func runCalculate(input *valuation.ValuationInput) {
	result, err := valuation.Calculate(input)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	out, err := json.Marshal(result)
	if err != nil {
		fmt.Printf("Error marshaling result: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}
