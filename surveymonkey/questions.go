package surveymonkey

import (
	"context"
	"encoding/json"
	"fmt"
)

// QuestionRequest is the payload for creating or modifying a question. The
// family-specific sections are supplied as raw JSON in the shape the API
// documents for each question family.
type QuestionRequest struct {
	Headings       []Heading       `json:"headings,omitempty"`
	Family         string          `json:"family,omitempty"`
	Subtype        string          `json:"subtype,omitempty"`
	Position       int             `json:"position,omitempty"`
	Sorting        json.RawMessage `json:"sorting,omitempty"`
	Required       json.RawMessage `json:"required,omitempty"`
	Validation     json.RawMessage `json:"validation,omitempty"`
	ForcedRanking  *bool           `json:"forced_ranking,omitempty"`
	QuizOptions    json.RawMessage `json:"quiz_options,omitempty"`
	Answers        json.RawMessage `json:"answers,omitempty"`
	DisplayOptions json.RawMessage `json:"display_options,omitempty"`
}

// ListQuestions returns the questions on a survey page.
func (c *Client) ListQuestions(ctx context.Context, surveyID, pageID string) (*QuestionList, error) {
	var list QuestionList
	endpoint := fmt.Sprintf("/surveys/%s/pages/%s/questions", surveyID, pageID)
	if err := c.get(ctx, endpoint, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// CreateQuestion creates a new question on a survey page.
func (c *Client) CreateQuestion(ctx context.Context, surveyID, pageID string, req *QuestionRequest) (*Question, error) {
	var question Question
	endpoint := fmt.Sprintf("/surveys/%s/pages/%s/questions", surveyID, pageID)
	if err := c.post(ctx, endpoint, req, &question); err != nil {
		return nil, err
	}
	return &question, nil
}

// GetQuestion returns a question.
func (c *Client) GetQuestion(ctx context.Context, surveyID, pageID, questionID string) (*Question, error) {
	var question Question
	endpoint := fmt.Sprintf("/surveys/%s/pages/%s/questions/%s", surveyID, pageID, questionID)
	if err := c.get(ctx, endpoint, nil, &question); err != nil {
		return nil, err
	}
	return &question, nil
}

// ModifyQuestion modifies a question.
func (c *Client) ModifyQuestion(ctx context.Context, surveyID, pageID, questionID string, req *QuestionRequest) (*Question, error) {
	var question Question
	endpoint := fmt.Sprintf("/surveys/%s/pages/%s/questions/%s", surveyID, pageID, questionID)
	if err := c.patch(ctx, endpoint, req, &question); err != nil {
		return nil, err
	}
	return &question, nil
}

// DeleteQuestion deletes a question.
func (c *Client) DeleteQuestion(ctx context.Context, surveyID, pageID, questionID string) error {
	return c.delete(ctx, fmt.Sprintf("/surveys/%s/pages/%s/questions/%s", surveyID, pageID, questionID))
}

// ListQuestionBank returns the questions available in the question bank.
func (c *Client) ListQuestionBank(ctx context.Context) (*QuestionBankList, error) {
	var list QuestionBankList
	if err := c.get(ctx, "/question_bank/questions", nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}
