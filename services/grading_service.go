package services

import "log"

// Submission is one claimed answer to one question.
type Submission struct {
	QuestionID   string `json:"question_id"`
	ChosenOption string `json:"chosen_option"`
}

// Result is the graded outcome for one submission.
type Result struct {
	QuestionID   string `json:"question_id"`
	ChosenOption string `json:"chosen_option"`
	Correct      bool   `json:"correct"`
}

// GradingService checks submitted answers against stored questions.
type GradingService struct {
	questions *QuestionService
	log       *log.Logger
}

func NewGradingService(questions *QuestionService, logger *log.Logger) *GradingService {
	return &GradingService{questions: questions, log: logger}
}

// Grade validates the batch shape up front, then grades items in input
// order. The first submission referencing an unknown question aborts the
// whole batch with a not-found error; a user-visible quiz must never return
// partial scores. Correctness is exact string equality against the stored
// correct option, with no case folding and no label/text cross-matching.
func (s *GradingService) Grade(submissions []Submission) ([]Result, error) {
	if len(submissions) == 0 {
		return nil, &MalformedSubmissionError{Msg: "Invalid submission format"}
	}
	for _, sub := range submissions {
		if sub.QuestionID == "" || sub.ChosenOption == "" {
			return nil, &MalformedSubmissionError{Msg: "Each submission must include the question_id and chosen_option"}
		}
	}

	results := make([]Result, 0, len(submissions))
	for _, sub := range submissions {
		question, err := s.questions.Get(sub.QuestionID)
		if err != nil {
			return nil, err
		}
		results = append(results, Result{
			QuestionID:   sub.QuestionID,
			ChosenOption: sub.ChosenOption,
			Correct:      question.CorrectOption == sub.ChosenOption,
		})
	}
	return results, nil
}
