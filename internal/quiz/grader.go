package quiz

import (
	"strconv"
	"strings"
)

type AnswerStatus string

const (
	StatusCorrect   AnswerStatus = "correct"
	StatusIncorrect AnswerStatus = "incorrect"
	StatusInvalid   AnswerStatus = "invalid"
)

type Feedback struct {
	Index    int
	Status   AnswerStatus
	Expected int
	Given    string
}

type GradeResult struct {
	Feedback []Feedback
	Missing  []int
	Score    int
}

// Grade сверяет ответы с ожидаемыми значениями по позициям.
// Пропущенный ответ попадает в Missing и не оценивается,
// нечисловой получает статус invalid; проверка не прерывается.
func Grade(expected []int, answers []string) GradeResult {
	var res GradeResult

	for i, want := range expected {
		given := ""
		if i < len(answers) {
			given = strings.TrimSpace(answers[i])
		}

		if given == "" {
			res.Missing = append(res.Missing, i)
			continue
		}

		value, err := strconv.Atoi(given)
		if err != nil {
			res.Feedback = append(res.Feedback, Feedback{
				Index:    i,
				Status:   StatusInvalid,
				Expected: want,
				Given:    given,
			})
			continue
		}

		fb := Feedback{Index: i, Expected: want, Given: given}
		if value == want {
			fb.Status = StatusCorrect
			res.Score++
		} else {
			fb.Status = StatusIncorrect
		}
		res.Feedback = append(res.Feedback, fb)
	}

	return res
}
