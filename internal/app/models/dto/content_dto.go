package dto

// ReactionSummary carries the viewer-relative reaction fields of an
// assembled view. Detail views and profile cards embed it; plain listings
// leave it nil so the fields are omitted entirely.
type ReactionSummary struct {
	LikeCount      int64 `json:"likeCount" example:"3"`
	ViewerHasLiked bool  `json:"viewerHasLiked" example:"true"`
}

// ReviewRequest represents an admin moderation decision.
type ReviewRequest struct {
	Status string `json:"status" binding:"required,oneof=APPROVED REJECTED"`
}

// --- Blogs ---

// CreateBlogRequest represents the data needed to publish a blog.
type CreateBlogRequest struct {
	Title   string   `json:"title" binding:"required,min=3,max=255"`
	Content string   `json:"content" binding:"required,min=10"`
	Tags    []string `json:"tags" binding:"omitempty,max=20"`
}

// UpdateBlogRequest represents the editable blog fields.
type UpdateBlogRequest struct {
	Title   string   `json:"title" binding:"omitempty,min=3,max=255"`
	Content string   `json:"content" binding:"omitempty,min=10"`
	Tags    []string `json:"tags" binding:"omitempty,max=20"`
}

// BlogResponse represents an assembled blog view.
type BlogResponse struct {
	ID        string       `json:"id"`
	Title     string       `json:"title"`
	Content   string       `json:"content"`
	Tags      []string     `json:"tags,omitempty"`
	Status    string       `json:"status" example:"APPROVED"`
	Author    *UserSummary `json:"author,omitempty"`
	Reviewer  *UserSummary `json:"reviewer,omitempty"`
	CreatedAt string       `json:"createdAt"`

	*ReactionSummary
}

// BlogListResponse is a paginated blog listing.
type BlogListResponse struct {
	Blogs      []BlogResponse `json:"blogs"`
	Pagination PaginationInfo `json:"pagination"`
}

// --- Projects ---

// CreateProjectRequest represents the data needed to publish a project.
type CreateProjectRequest struct {
	Title        string   `json:"title" binding:"required,min=3,max=255"`
	Description  string   `json:"description" binding:"required,min=10"`
	SourceLink   string   `json:"sourceLink" binding:"required,url"`
	DeployedLink string   `json:"deployedLink" binding:"omitempty,url"`
	Tags         []string `json:"tags" binding:"omitempty,max=20"`
	TechStack    []string `json:"techStack" binding:"omitempty,max=20"`
}

// UpdateProjectRequest represents the editable project fields.
type UpdateProjectRequest struct {
	Title        string   `json:"title" binding:"omitempty,min=3,max=255"`
	Description  string   `json:"description" binding:"omitempty,min=10"`
	SourceLink   string   `json:"sourceLink" binding:"omitempty,url"`
	DeployedLink string   `json:"deployedLink" binding:"omitempty,url"`
	Tags         []string `json:"tags" binding:"omitempty,max=20"`
	TechStack    []string `json:"techStack" binding:"omitempty,max=20"`
}

// ProjectResponse represents an assembled project view.
type ProjectResponse struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	SourceLink   string       `json:"sourceLink"`
	DeployedLink string       `json:"deployedLink,omitempty"`
	Tags         []string     `json:"tags,omitempty"`
	TechStack    []string     `json:"techStack,omitempty"`
	Status       string       `json:"status"`
	Author       *UserSummary `json:"author,omitempty"`
	Reviewer     *UserSummary `json:"reviewer,omitempty"`
	CreatedAt    string       `json:"createdAt"`

	*ReactionSummary
}

// ProjectListResponse is a paginated project listing.
type ProjectListResponse struct {
	Projects   []ProjectResponse `json:"projects"`
	Pagination PaginationInfo    `json:"pagination"`
}

// --- Events ---

// CreateEventRequest represents the data needed to publish an event.
// The image, if any, arrives as a multipart file alongside these fields.
type CreateEventRequest struct {
	Title           string   `form:"title" binding:"required,min=3,max=255"`
	Description     string   `form:"description" binding:"required,min=10"`
	Date            string   `form:"date" binding:"required"` // RFC 3339
	DurationMinutes int      `form:"durationMinutes" binding:"omitempty,gt=0"`
	Venue           string   `form:"venue" binding:"required,min=2,max=255"`
	EventType       string   `form:"eventType" binding:"required,oneof=QUIZ DSA HACKATHON TECHFEST OTHERS"`
	Tags            []string `form:"tags" binding:"omitempty,max=20"`
}

// UpdateEventRequest represents the editable event fields.
type UpdateEventRequest struct {
	Title           string   `form:"title" binding:"omitempty,min=3,max=255"`
	Description     string   `form:"description" binding:"omitempty,min=10"`
	Date            string   `form:"date"`
	DurationMinutes int      `form:"durationMinutes" binding:"omitempty,gt=0"`
	Venue           string   `form:"venue" binding:"omitempty,min=2,max=255"`
	EventType       string   `form:"eventType" binding:"omitempty,oneof=QUIZ DSA HACKATHON TECHFEST OTHERS"`
	Tags            []string `form:"tags" binding:"omitempty,max=20"`
}

// SetWinnerRequest declares an event winner.
type SetWinnerRequest struct {
	WinnerID string `json:"winnerId" binding:"required,uuid"`
}

// EventResponse represents an assembled event view.
type EventResponse struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	ImageURL        string       `json:"imageUrl,omitempty"`
	Date            string       `json:"date"`
	DurationMinutes int          `json:"durationMinutes,omitempty"`
	Venue           string       `json:"venue"`
	EventType       string       `json:"eventType"`
	Tags            []string     `json:"tags,omitempty"`
	Status          string       `json:"status"`
	Author          *UserSummary `json:"author,omitempty"`
	Reviewer        *UserSummary `json:"reviewer,omitempty"`
	Winner          *UserSummary `json:"winner,omitempty"`
	CreatedAt       string       `json:"createdAt"`

	*ReactionSummary
}

// EventDetailResponse is the full event view: participants plus the approved
// comment thread, each comment enriched one level down.
type EventDetailResponse struct {
	EventResponse
	Participants []UserSummary     `json:"participants"`
	Comments     []CommentResponse `json:"comments"`
}

// EventListResponse is a paginated event listing.
type EventListResponse struct {
	Events     []EventResponse `json:"events"`
	Pagination PaginationInfo  `json:"pagination"`
}

// --- Comments ---

// CreateCommentRequest carries the body of a new comment; the target comes
// from the route.
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=2000"`
}

// CommentResponse represents an assembled comment view.
type CommentResponse struct {
	ID        string       `json:"id"`
	Content   string       `json:"content"`
	Status    string       `json:"status"`
	Author    *UserSummary `json:"author,omitempty"`
	CreatedAt string       `json:"createdAt"`

	*ReactionSummary
}

// CommentAdminResponse is the moderation-queue view of a comment.
type CommentAdminResponse struct {
	CommentResponse
	Reviewer    *UserSummary `json:"reviewer,omitempty"`
	TargetKind  string       `json:"targetKind" example:"EVENT"`
	TargetID    string       `json:"targetId"`
	TargetTitle string       `json:"targetTitle,omitempty"`
}

// CommentListResponse is a paginated comment listing.
type CommentListResponse struct {
	Comments   []CommentAdminResponse `json:"comments"`
	Pagination PaginationInfo         `json:"pagination"`
}

// --- Likes ---

// LikeResponse confirms a created like.
type LikeResponse struct {
	ID         string `json:"id"`
	TargetKind string `json:"targetKind"`
	TargetID   string `json:"targetId"`
	CreatedAt  string `json:"createdAt"`
}
