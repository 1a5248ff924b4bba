package quiz

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// QuestionCount - количество вопросов в дневном наборе.
const QuestionCount = 6

var chainOperators = []string{"+", "*", "/"}

type Equation struct {
	Text   string
	Answer int
}

type Generator struct {
	randSource *rand.Rand
}

func NewGenerator() *Generator {
	return &Generator{
		randSource: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// GenerateSet собирает шесть уравнений дневного набора.
// Диапазоны полуоткрытые: [min, max).
func (g *Generator) GenerateSet() []Equation {
	set := make([]Equation, 0, QuestionCount)

	set = append(set, g.binary(100, 9999, "+"))
	set = append(set, g.binary(100, 9999, "-"))
	set = append(set, g.binary(11, 99, "*"))
	set = append(set, g.binary(11, 99, "/"))
	set = append(set, g.binary(11, 99, "*"))
	set = append(set, g.chain(3, 29, 4))

	return set
}

func (g *Generator) intn(min, max int) int {
	return g.randSource.Intn(max-min) + min
}

func (g *Generator) binary(min, max int, op string) Equation {
	a := g.intn(min, max)
	b := g.intn(min, max)

	answer, _ := EvalFlat([]int{a, b}, []string{op})

	return Equation{
		Text:   fmt.Sprintf("%d %s %d =", a, op, b),
		Answer: answer,
	}
}

// chain - цепочка из count операндов со случайными операторами,
// считается тем же левым свёртыванием, что и при проверке ответов.
func (g *Generator) chain(min, max, count int) Equation {
	operands := make([]int, count)
	operators := make([]string, count-1)
	parts := make([]string, 0, count*2-1)

	for i := range operands {
		operands[i] = g.intn(min, max)
		parts = append(parts, strconv.Itoa(operands[i]))

		if i < len(operators) {
			operators[i] = chainOperators[g.randSource.Intn(len(chainOperators))]
			parts = append(parts, operators[i])
		}
	}

	answer, _ := EvalFlat(operands, operators)

	return Equation{
		Text:   strings.Join(parts, " ") + " =",
		Answer: answer,
	}
}
