package surveymonkey

import "encoding/json"

// Links holds the paging links SurveyMonkey attaches to list responses.
type Links struct {
	Self  string `json:"self,omitempty"`
	Next  string `json:"next,omitempty"`
	Prev  string `json:"prev,omitempty"`
	First string `json:"first,omitempty"`
	Last  string `json:"last,omitempty"`
}

// User represents the authenticated user's account.
type User struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Email         string `json:"email"`
	AccountType   string `json:"account_type,omitempty"`
	Language      string `json:"language,omitempty"`
	DateCreated   string `json:"date_created,omitempty"`
	DateLastLogin string `json:"date_last_login,omitempty"`
	Href          string `json:"href,omitempty"`
}

// Workgroup represents a workgroup a user belongs to.
type Workgroup struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsVisible   bool   `json:"is_visible,omitempty"`
	Href        string `json:"href,omitempty"`
}

// WorkgroupList is a paged list of workgroups.
type WorkgroupList struct {
	Data    []Workgroup `json:"data"`
	Page    int         `json:"page"`
	PerPage int         `json:"per_page"`
	Total   int         `json:"total"`
	Links   Links       `json:"links,omitempty"`
}

// SharedResourceList is a paged list of resources shared with a user. The
// resource payloads vary by type and are passed through unparsed.
type SharedResourceList struct {
	Data    []json.RawMessage `json:"data"`
	Page    int               `json:"page"`
	PerPage int               `json:"per_page"`
	Total   int               `json:"total"`
	Links   Links             `json:"links,omitempty"`
}

// Group represents a team the user account belongs to.
type Group struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MemberCount int    `json:"member_count,omitempty"`
	MaxInvites  int    `json:"max_invites,omitempty"`
	DateCreated string `json:"date_created,omitempty"`
	Href        string `json:"href,omitempty"`
}

// GroupList is a paged list of groups.
type GroupList struct {
	Data    []Group `json:"data"`
	Page    int     `json:"page"`
	PerPage int     `json:"per_page"`
	Total   int     `json:"total"`
	Links   Links   `json:"links,omitempty"`
}

// Member represents a member of a group.
type Member struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Type     string `json:"type,omitempty"`
	Status   string `json:"status,omitempty"`
	Href     string `json:"href,omitempty"`
}

// MemberList is a paged list of group members.
type MemberList struct {
	Data    []Member `json:"data"`
	Page    int      `json:"page"`
	PerPage int      `json:"per_page"`
	Total   int      `json:"total"`
	Links   Links    `json:"links,omitempty"`
}

// Survey represents a survey's summary details.
type Survey struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Nickname      string          `json:"nickname,omitempty"`
	Language      string          `json:"language,omitempty"`
	FolderID      string          `json:"folder_id,omitempty"`
	Category      string          `json:"category,omitempty"`
	QuestionCount int             `json:"question_count,omitempty"`
	PageCount     int             `json:"page_count,omitempty"`
	ResponseCount int             `json:"response_count,omitempty"`
	DateCreated   string          `json:"date_created,omitempty"`
	DateModified  string          `json:"date_modified,omitempty"`
	Footer        *bool           `json:"footer,omitempty"`
	Preview       string          `json:"preview,omitempty"`
	EditURL       string          `json:"edit_url,omitempty"`
	CollectURL    string          `json:"collect_url,omitempty"`
	AnalyzeURL    string          `json:"analyze_url,omitempty"`
	SummaryURL    string          `json:"summary_url,omitempty"`
	Href          string          `json:"href,omitempty"`
	ButtonsText   *ButtonsText    `json:"buttons_text,omitempty"`
	CustomVars    json.RawMessage `json:"custom_variables,omitempty"`

	// Pages is populated only by the expanded details endpoint.
	Pages []Page `json:"pages,omitempty"`
}

// ButtonsText holds the survey button labels.
type ButtonsText struct {
	NextButton string `json:"next_button,omitempty"`
	PrevButton string `json:"prev_button,omitempty"`
	ExitButton string `json:"exit_button,omitempty"`
	DoneButton string `json:"done_button,omitempty"`
}

// SurveyList is a paged list of surveys.
type SurveyList struct {
	Data    []Survey `json:"data"`
	Page    int      `json:"page"`
	PerPage int      `json:"per_page"`
	Total   int      `json:"total"`
	Links   Links    `json:"links,omitempty"`
}

// CreateSurveyRequest is the payload for creating a survey. Set FromTemplateID
// or FromSurveyID to copy an existing template or survey; leave both empty for
// a blank survey.
type CreateSurveyRequest struct {
	Title          string            `json:"title,omitempty"`
	Nickname       string            `json:"nickname,omitempty"`
	Language       string            `json:"language,omitempty"`
	FromTemplateID string            `json:"from_template_id,omitempty"`
	FromSurveyID   string            `json:"from_survey_id,omitempty"`
	FolderID       string            `json:"folder_id,omitempty"`
	Footer         *bool             `json:"footer,omitempty"`
	ButtonsText    *ButtonsText      `json:"buttons_text,omitempty"`
	CustomVars     map[string]string `json:"custom_variables,omitempty"`
	QuizOptions    json.RawMessage   `json:"quiz_options,omitempty"`
}

// ModifySurveyRequest is the payload for modifying a survey's title, nickname
// or language.
type ModifySurveyRequest struct {
	Title       string          `json:"title,omitempty"`
	Nickname    string          `json:"nickname,omitempty"`
	Language    string          `json:"language,omitempty"`
	FolderID    string          `json:"folder_id,omitempty"`
	Footer      *bool           `json:"footer,omitempty"`
	ButtonsText *ButtonsText    `json:"buttons_text,omitempty"`
	CustomVars  json.RawMessage `json:"custom_variables,omitempty"`
}

// Category represents a survey category usable to filter templates.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CategoryList is a paged list of survey categories.
type CategoryList struct {
	Data    []Category `json:"data"`
	Page    int        `json:"page"`
	PerPage int        `json:"per_page"`
	Total   int        `json:"total"`
	Links   Links      `json:"links,omitempty"`
}

// Template represents a survey template.
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
	Available   bool   `json:"available,omitempty"`
	PageCount   int    `json:"num_pages,omitempty"`
	Preview     string `json:"preview_link,omitempty"`
}

// TemplateList is a paged list of survey templates.
type TemplateList struct {
	Data    []Template `json:"data"`
	Page    int        `json:"page"`
	PerPage int        `json:"per_page"`
	Total   int        `json:"total"`
	Links   Links      `json:"links,omitempty"`
}

// Language represents a language surveys can be translated into.
type Language struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Native string `json:"native,omitempty"`
	Code   string `json:"code,omitempty"`
}

// LanguageList is a paged list of survey languages.
type LanguageList struct {
	Data    []Language `json:"data"`
	Page    int        `json:"page"`
	PerPage int        `json:"per_page"`
	Total   int        `json:"total"`
	Links   Links      `json:"links,omitempty"`
}

// TranslationList holds the existing translations of a survey. Translation
// payloads vary by language structure and are passed through unparsed.
type TranslationList struct {
	Data    []json.RawMessage `json:"data"`
	Page    int               `json:"page"`
	PerPage int               `json:"per_page"`
	Total   int               `json:"total"`
	Links   Links             `json:"links,omitempty"`
}

// Folder represents a survey folder.
type Folder struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	NumSurveys int    `json:"num_surveys,omitempty"`
	Href       string `json:"href,omitempty"`
}

// FolderList is a paged list of survey folders.
type FolderList struct {
	Data    []Folder `json:"data"`
	Page    int      `json:"page"`
	PerPage int      `json:"per_page"`
	Total   int      `json:"total"`
	Links   Links    `json:"links,omitempty"`
}

// CreateFolderRequest is the payload for creating a survey folder.
type CreateFolderRequest struct {
	Title string `json:"title,omitempty"`
}

// Page represents a survey page.
type Page struct {
	ID            string `json:"id"`
	Title         string `json:"title,omitempty"`
	Description   string `json:"description,omitempty"`
	Position      int    `json:"position,omitempty"`
	QuestionCount int    `json:"question_count,omitempty"`
	Href          string `json:"href,omitempty"`

	// Questions is populated only by the expanded details endpoint.
	Questions []Question `json:"questions,omitempty"`
}

// PageList is a paged list of survey pages.
type PageList struct {
	Data    []Page `json:"data"`
	Page    int    `json:"page"`
	PerPage int    `json:"per_page"`
	Total   int    `json:"total"`
	Links   Links  `json:"links,omitempty"`
}

// PageRequest is the payload for creating or modifying a page.
type PageRequest struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Position    int    `json:"position,omitempty"`
}

// Heading is a question heading.
type Heading struct {
	Heading          string          `json:"heading"`
	Description      string          `json:"description,omitempty"`
	Image            json.RawMessage `json:"image,omitempty"`
	RandomAssignment json.RawMessage `json:"random_assignment,omitempty"`
}

// Question represents a question on a survey page. The family-specific
// sections (answers, validation, display options) vary too much across
// question types to model; they are passed through unparsed.
type Question struct {
	ID             string          `json:"id"`
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
	Href           string          `json:"href,omitempty"`
}

// QuestionList is a paged list of questions.
type QuestionList struct {
	Data    []Question `json:"data"`
	Page    int        `json:"page"`
	PerPage int        `json:"per_page"`
	Total   int        `json:"total"`
	Links   Links      `json:"links,omitempty"`
}

// QuestionBankList is a paged list of question bank entries. Entries carry
// locale-specific rendering data and are passed through unparsed.
type QuestionBankList struct {
	Data    []json.RawMessage `json:"data"`
	Page    int               `json:"page"`
	PerPage int               `json:"per_page"`
	Total   int               `json:"total"`
	Links   Links             `json:"links,omitempty"`
}

// Answer holds a respondent's answers to one question.
type Answer struct {
	ID      string          `json:"id"`
	Answers json.RawMessage `json:"answers,omitempty"`
}

// ResponsePage groups a respondent's answers by survey page.
type ResponsePage struct {
	ID        string   `json:"id"`
	Questions []Answer `json:"questions,omitempty"`
}

// Response represents a survey response. Expanded responses (from the bulk and
// details endpoints) include the per-page answers.
type Response struct {
	ID             string          `json:"id"`
	RecipientID    string          `json:"recipient_id,omitempty"`
	CollectorID    string          `json:"collector_id,omitempty"`
	SurveyID       string          `json:"survey_id,omitempty"`
	CollectionMode string          `json:"collection_mode,omitempty"`
	ResponseStatus string          `json:"response_status,omitempty"`
	CustomValue    string          `json:"custom_value,omitempty"`
	TotalTime      int             `json:"total_time,omitempty"`
	IPAddress      string          `json:"ip_address,omitempty"`
	DateCreated    string          `json:"date_created,omitempty"`
	DateModified   string          `json:"date_modified,omitempty"`
	CustomVars     json.RawMessage `json:"custom_variables,omitempty"`
	Pages          []ResponsePage  `json:"pages,omitempty"`
	Href           string          `json:"href,omitempty"`
}

// ResponseList is a paged list of responses.
type ResponseList struct {
	Data    []Response `json:"data"`
	Page    int        `json:"page"`
	PerPage int        `json:"per_page"`
	Total   int        `json:"total"`
	Links   Links      `json:"links,omitempty"`
}

// Webhook represents a webhook subscription.
type Webhook struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	EventType       string   `json:"event_type"`
	ObjectType      string   `json:"object_type,omitempty"`
	ObjectIDs       []string `json:"object_ids,omitempty"`
	SubscriptionURL string   `json:"subscription_url,omitempty"`
	Href            string   `json:"href,omitempty"`
}

// WebhookList is a paged list of webhooks.
type WebhookList struct {
	Data    []Webhook `json:"data"`
	Page    int       `json:"page"`
	PerPage int       `json:"per_page"`
	Total   int       `json:"total"`
	Links   Links     `json:"links,omitempty"`
}

// CreateWebhookRequest is the payload for subscribing to an event.
type CreateWebhookRequest struct {
	Name            string   `json:"name"`
	EventType       string   `json:"event_type"`
	ObjectType      string   `json:"object_type"`
	ObjectIDs       []string `json:"object_ids"`
	SubscriptionURL string   `json:"subscription_url"`
}
