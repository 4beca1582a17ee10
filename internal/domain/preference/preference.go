package preference

import "errors"

var (
	ErrUnknownQuestion = errors.New("unknown preference question")
	ErrInvalidOption   = errors.New("option index out of range")
)

// Question is one step of the study-preference survey. The list is fixed
// and ordered; answers are keyed by question index.
type Question struct {
	Index   int
	Text    string
	Options []string
}

var questions = []Question{
	{0, "Where in the classroom do you prefer to study?", []string{"Front", "Middle", "Back"}},
	{1, "How important is natural lighting to you", []string{"Very Important", "Somewhat important", "Not Important"}},
	{2, "Do you prefer to work in a group or solo", []string{"Group", "Solo"}},
	{3, "What size of the classroom do you prefer", []string{"Massive", "Medium", "Small"}},
	{4, "How important is noise control in the classroom", []string{"I need quiet", "Low is ok", "Loud is fine"}},
}

func Questions() []Question {
	return questions
}

func QuestionCount() int {
	return len(questions)
}

// Answer is a validated (question, option) pair.
type Answer struct {
	questionIndex int
	optionIndex   int
}

func NewAnswer(questionIndex, optionIndex int) (Answer, error) {
	if questionIndex < 0 || questionIndex >= len(questions) {
		return Answer{}, ErrUnknownQuestion
	}
	if optionIndex < 0 || optionIndex >= len(questions[questionIndex].Options) {
		return Answer{}, ErrInvalidOption
	}
	return Answer{questionIndex: questionIndex, optionIndex: optionIndex}, nil
}

func ReconstructAnswer(questionIndex, optionIndex int) Answer {
	return Answer{questionIndex: questionIndex, optionIndex: optionIndex}
}

func (a Answer) QuestionIndex() int { return a.questionIndex }
func (a Answer) OptionIndex() int   { return a.optionIndex }

func (a Answer) Option() string {
	return questions[a.questionIndex].Options[a.optionIndex]
}

// NextIndex returns the survey step that follows this answer. An index past
// the end means the survey is complete.
func (a Answer) NextIndex() int {
	return a.questionIndex + 1
}
