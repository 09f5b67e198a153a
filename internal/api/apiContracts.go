package api

import "time"

type JobExternalStatus string

const (
	JobStatusError JobExternalStatus = "Error"

	SkillVersion = "2.0"
)

// requests---------------------

// SkillRequest is the part of the Kakao skill payload the server reads.
type SkillRequest struct {
	UserRequest UserRequest    `json:"userRequest"`
	Bot         map[string]any `json:"bot,omitempty"`
	Action      map[string]any `json:"action,omitempty"`
}

type UserRequest struct {
	Utterance string         `json:"utterance" example:"리모컨 배터리 교체"`
	User      map[string]any `json:"user,omitempty"`
}

// responses--------------------

type SkillResponse struct {
	Version  string        `json:"version" example:"2.0"`
	Template SkillTemplate `json:"template"`
}

type SkillTemplate struct {
	Outputs      []Output     `json:"outputs"`
	QuickReplies []QuickReply `json:"quickReplies,omitempty"`
}

// Output holds exactly one of its components.
type Output struct {
	SimpleText *SimpleText `json:"simpleText,omitempty"`
	BasicCard  *BasicCard  `json:"basicCard,omitempty"`
	ListCard   *ListCard   `json:"listCard,omitempty"`
	Carousel   *Carousel   `json:"carousel,omitempty"`
}

type SimpleText struct {
	Text string `json:"text"`
}

type Thumbnail struct {
	ImageUrl string `json:"imageUrl"`
}

type Button struct {
	Action      string `json:"action"`
	Label       string `json:"label"`
	WebLinkUrl  string `json:"webLinkUrl,omitempty"`
	MessageText string `json:"messageText,omitempty"`
}

type BasicCard struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Thumbnail   *Thumbnail `json:"thumbnail,omitempty"`
	Buttons     []Button   `json:"buttons,omitempty"`
}

type ListCardHeader struct {
	Title string `json:"title"`
}

type ListItem struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ImageUrl    string `json:"imageUrl,omitempty"`
	Action      string `json:"action,omitempty"`
	MessageText string `json:"messageText,omitempty"`
}

type ListCard struct {
	Header  ListCardHeader `json:"header"`
	Items   []ListItem     `json:"items"`
	Buttons []Button       `json:"buttons,omitempty"`
}

type Carousel struct {
	Type  string      `json:"type"`
	Items []BasicCard `json:"items"`
}

type QuickReply struct {
	Label       string `json:"label"`
	Action      string `json:"action"`
	MessageText string `json:"messageText"`
}

// jobs-------------------------

type InitJobResponse struct {
	Id        string `json:"id"`
	StatusURL string `json:"status_url"`
}

type JobResponse struct {
	Id        string            `json:"id" example:"7f1c0b1e-4c2a-4d55-a1c4-5b1f0f1b9a10"`
	Result    Result            `json:"result"`
	Error     *JobOutgoingError `json:"error,omitempty"`
	StartTime time.Time         `json:"start_time"`
	EndTime   time.Time         `json:"end_time,omitempty"`
}

type JobOutgoingError struct {
	Code    int    `json:"code" example:"404"`
	Message string `json:"message" example:"Job not found"`
	Retry   bool   `json:"can_retry" example:"false"`
}

type Result struct {
	Status      string          `json:"status"`
	Step        string          `json:"step,omitempty"`
	ReloadStats *ReloadResponse `json:"reload,omitempty"`
}

type ReloadResponse struct {
	Documents   int            `json:"documents"`
	Failed      int            `json:"failed"`
	PerCategory map[string]int `json:"per_category,omitempty"`
	Generation  uint64         `json:"generation"`
	ElapsedMs   int64          `json:"elapsed_ms"`
}

// documents--------------------

type DocumentResponse struct {
	Title        string  `json:"title"`
	Category     string  `json:"category"`
	WebPath      string  `json:"webPath"`
	Summary      string  `json:"summary"`
	ThumbnailURL *string `json:"thumbnailUrl"`
	Link         string  `json:"link"`
	Score        float64 `json:"score,omitempty"`
}

type DocumentListResponse struct {
	Query     string             `json:"query,omitempty"`
	Category  string             `json:"category,omitempty"`
	Count     int                `json:"count"`
	Documents []DocumentResponse `json:"documents"`
}

type MarkdownResponse struct {
	Document DocumentResponse `json:"document"`
	Markdown string           `json:"markdown"`
}

type HealthResponse struct {
	Status string `json:"status" example:"alive"`
}

type IndexStatsResponse struct {
	Ready       bool           `json:"ready"`
	Generation  uint64         `json:"generation"`
	Documents   int            `json:"documents"`
	Failed      int            `json:"failed"`
	PerCategory map[string]int `json:"per_category"`
	BuiltAt     *time.Time     `json:"built_at,omitempty"`

	FullTextDocuments uint64 `json:"fulltext_documents"`
}
