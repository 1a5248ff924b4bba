package quiz

type CalculationError struct {
	Message string
}

func (e *CalculationError) Error() string {
	return "calculation error: " + e.Message
}

// EvalFlat сворачивает выражение слева направо, без приоритета операций.
// Деление целочисленное, с отбрасыванием остатка.
func EvalFlat(operands []int, operators []string) (int, error) {
	if len(operands) == 0 || len(operators) != len(operands)-1 {
		return 0, &CalculationError{"invalid expression"}
	}

	acc := operands[0]
	for i, op := range operators {
		b := operands[i+1]

		switch op {
		case "+":
			acc = acc + b
		case "-":
			acc = acc - b
		case "*":
			acc = acc * b
		case "/":
			if b == 0 {
				return 0, &CalculationError{"division by zero"}
			}
			acc = acc / b
		default:
			return 0, &CalculationError{"unknown operation " + op}
		}
	}

	return acc, nil
}
